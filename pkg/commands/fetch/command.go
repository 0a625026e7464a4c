// Package fetch provides the CLI commands that fetch a proposal from Tally and write its
// calldata and description artifacts.
package fetch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/config"
	"github.com/smartcontractkit/tally-calldata/pkg/commands/text"
	"github.com/smartcontractkit/tally-calldata/pkg/logger"
	"github.com/smartcontractkit/tally-calldata/tally"
)

var (
	fetchShort = "Fetch proposal calldata from Tally"

	fetchLong = text.LongDesc(`
		Commands for fetching a governance proposal from the Tally API.

		Each command sends a single request, extracts the proposal's executable calls and writes
		them as JSON next to the proposal description, ready for a calldata check test.
	`)
)

// Config holds the configuration for fetch commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Settings holds the Tally API settings. Required; validated per command when it runs.
	Settings *config.Config

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}
	if c.Settings == nil {
		missing = append(missing, "Settings")
	}

	if len(missing) > 0 {
		return errors.New("fetch.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates a new fetch command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: fetchShort,
		Long:  fetchLong,
		Args:  cobra.ArbitraryArgs,
		RunE:  runMissingVariant,
	}

	cmd.AddCommand(newDraftCmd(cfg))
	cmd.AddCommand(newLiveCmd(cfg))
	cmd.AddCommand(newPlainCmd(cfg))

	return cmd, nil
}

// ErrMissingVariant is returned when fetch is invoked without a proposal variant.
var ErrMissingVariant = errors.New("a proposal variant is required: draft, live or plain")

// runMissingVariant runs when no variant subcommand matched, so the invocation fails instead of
// exiting 0 after printing help.
func runMissingVariant(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrMissingVariant
	}

	v, err := tally.ParseVariant(args[0])
	if err != nil {
		return fmt.Errorf("%w for %q: expected draft, live or plain", err, cmd.CommandPath())
	}

	return fmt.Errorf("unknown proposal variant %q for %q: did you mean %q?", args[0], cmd.CommandPath(), v.String())
}
