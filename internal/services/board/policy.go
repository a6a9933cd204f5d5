package board

import "fmt"

// OrphanPolicy decides what CreateItem does when no group matches the groupId
type OrphanPolicy int

const (
	// OrphanAllow returns the new item without storing it anywhere
	OrphanAllow OrphanPolicy = iota
	// OrphanReject fails with ErrGroupNotFound (or ErrMissingGroupID)
	OrphanReject
)

// String returns the config spelling of the policy
func (p OrphanPolicy) String() string {
	switch p {
	case OrphanReject:
		return "reject"
	default:
		return "allow"
	}
}

// ParseOrphanPolicy parses "allow" or "reject". Empty means allow.
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch s {
	case "", "allow":
		return OrphanAllow, nil
	case "reject":
		return OrphanReject, nil
	default:
		return OrphanAllow, fmt.Errorf("invalid orphan policy %q: must be allow or reject", s)
	}
}
