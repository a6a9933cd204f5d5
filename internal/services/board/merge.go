package board

import (
	"fmt"
	"slices"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Keys a patch can never write into the payload. Identity and timestamps are
// forced by the store; groups and groupId are structural and handled apart.
var (
	boardReservedKeys = []string{models.KeyID, models.KeyCreatedAt, models.KeyUpdatedAt, models.KeyGroups}
	itemReservedKeys  = []string{models.KeyID, models.KeyCreatedAt, models.KeyUpdatedAt, models.KeyGroupID}
)

// mergeFields layers patch over base and returns a new payload.
// Reserved keys are skipped and a nil patch value removes the key. Patch
// values are stored in JSON shape so the store never shares them with the
// caller.
func mergeFields(base, patch models.Fields, reserved []string) (models.Fields, error) {
	out := base.Clone()
	for k, v := range patch {
		if slices.Contains(reserved, k) {
			continue
		}
		if v == nil {
			delete(out, k)
			continue
		}
		nv, err := models.NormalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidField, k, err)
		}
		if out == nil {
			out = make(models.Fields, len(patch))
		}
		out[k] = nv
	}
	return out, nil
}

// mergeBoard applies patch to existing and returns the merged board. Order:
// existing fields, then patch fields, then forced system fields.
// A "groups" key in the patch replaces the group sequence.
func mergeBoard(existing *models.Board, patch models.Fields, now time.Time) (*models.Board, error) {
	fields, err := mergeFields(existing.Fields, patch, boardReservedKeys)
	if err != nil {
		return nil, err
	}

	merged := &models.Board{
		ID:        existing.ID,
		Groups:    existing.Groups,
		CreatedAt: existing.CreatedAt,
		Fields:    fields,
	}

	if v, ok := patch[models.KeyGroups]; ok {
		groups, err := models.GroupsFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("failed to merge groups: %w", err)
		}
		merged.Groups = groups
	}

	merged.UpdatedAt = now
	return merged, nil
}

// mergeItem applies patch to existing and returns the merged item. The
// groupId key is ignored here; moving between groups is done by the store.
func mergeItem(existing *models.Item, patch models.Fields, now time.Time) (*models.Item, error) {
	fields, err := mergeFields(existing.Fields, patch, itemReservedKeys)
	if err != nil {
		return nil, err
	}

	return &models.Item{
		ID:        existing.ID,
		GroupID:   existing.GroupID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
		Fields:    fields,
	}, nil
}
