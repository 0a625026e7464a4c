// Package commands provides the CLI command packages of tally-calldata.
//
// Commands are built through the factory, which shares the logger and settings:
//
//	cmds := commands.New(lggr, settings)
//	fetchCmd, err := cmds.Fetch()
//	if err != nil {
//	    return err
//	}
//	root.AddCommand(fetchCmd)
//
// Tests that need to replace the Tally client use the fetch package directly with fetch.Deps.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/config"
	"github.com/smartcontractkit/tally-calldata/pkg/commands/fetch"
	"github.com/smartcontractkit/tally-calldata/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
type Commands struct {
	lggr     logger.Logger
	settings *config.Config
}

// New creates a new Commands factory with the given logger and settings.
func New(lggr logger.Logger, settings *config.Config) *Commands {
	return &Commands{lggr: lggr, settings: settings}
}

// Fetch creates the fetch command group.
func (c *Commands) Fetch() (*cobra.Command, error) {
	return fetch.NewCommand(fetch.Config{
		Logger:   c.lggr,
		Settings: c.settings,
	})
}
