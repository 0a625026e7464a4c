// Command tally-calldata fetches governance proposals from the Tally API and writes their
// executable calls and description for calldata check tests.
//
// Configuration is read from the file named by TALLY_CONFIG (default tally.yaml) when it exists,
// with environment variables taking precedence. TALLY_API_KEY is required.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/config"
	"github.com/smartcontractkit/tally-calldata/pkg/commands"
	"github.com/smartcontractkit/tally-calldata/pkg/logger"
)

const defaultConfigPath = "tally.yaml"

var errMissingCommand = errors.New("a command is required")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	configPath := os.Getenv("TALLY_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lggr, err := logger.NewWithLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = lggr.Sync() }()

	root, err := newRootCmd(lggr, settings)
	if err != nil {
		return err
	}
	root.SetArgs(args)

	return root.Execute()
}

func newRootCmd(lggr logger.Logger, settings *config.Config) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "tally-calldata",
		Short:         "Fetch governance proposal calldata from Tally",
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errMissingCommand
		},
	}

	fetchCmd, err := commands.New(lggr, settings).Fetch()
	if err != nil {
		return nil, err
	}
	root.AddCommand(fetchCmd)

	return root, nil
}
