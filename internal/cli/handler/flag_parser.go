// Package handler provides flag parsing utilities
package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Field flag names
const (
	FlagTitle       = "title"
	FlagDescription = "description"
	FlagSet         = "set"
	FlagData        = "data"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// AddFieldFlags registers the flags that build a payload patch
func AddFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagTitle, "", "Title")
	cmd.Flags().String(FlagDescription, "", "Description (markdown)")
	cmd.Flags().StringArray(FlagSet, nil, "Set a field as key=value; value is parsed as JSON when valid (repeatable)")
	cmd.Flags().String(FlagData, "", "Fields as a JSON object")
}

// ExactID is a cobra Args validator for commands taking a single positive id
func ExactID(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cli.UsageError(fmt.Errorf("expected exactly one %s id, got %d arguments", name, len(args)))
		}
		_, err := ParseID(args[0], name)
		return err
	}
}

// ParseID parses a positive integer id argument
func ParseID(arg string, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, cli.UsageError(fmt.Errorf("invalid %s id %q: must be an integer", name, arg))
	}
	if id <= 0 {
		return 0, cli.UsageError(fmt.Errorf("%s id must be greater than 0", name))
	}
	return id, nil
}

// ParseInt extracts a required int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, cli.UsageError(fmt.Errorf("--%s must be greater than 0", flagName))
	}
	return value, nil
}

// ParseFields builds a payload patch from --data, then --set pairs, then
// --title and --description. Later sources win.
func (p *FlagParser) ParseFields() (models.Fields, error) {
	flags := p.cmd.Flags()
	fields := models.Fields{}

	if data, _ := flags.GetString(FlagData); strings.TrimSpace(data) != "" {
		decoded, err := models.DecodeFields([]byte(data))
		if err != nil {
			return nil, cli.DataError(fmt.Errorf("invalid --data: %w", err))
		}
		for k, v := range decoded {
			fields[k] = v
		}
	}

	pairs, _ := flags.GetStringArray(FlagSet)
	for _, pair := range pairs {
		key, value, err := ParseSetPair(pair)
		if err != nil {
			return nil, cli.DataError(err)
		}
		fields[key] = value
	}

	if flags.Changed(FlagTitle) {
		title, _ := flags.GetString(FlagTitle)
		fields[models.KeyTitle] = title
	}
	if flags.Changed(FlagDescription) {
		description, _ := flags.GetString(FlagDescription)
		fields[models.KeyDescription] = description
	}

	return fields, nil
}

// ParseSetPair splits key=value. The value is decoded as JSON when it is
// valid JSON and kept as a plain string otherwise, so "null" removes a field.
func ParseSetPair(pair string) (string, any, error) {
	key, raw, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, errors.New("invalid --set " + strconv.Quote(pair) + ": expected key=value")
	}

	if value, err := models.DecodeValue([]byte(raw)); err == nil {
		return key, value, nil
	}
	return key, raw, nil
}
