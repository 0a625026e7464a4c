package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/proposal"
	"github.com/smartcontractkit/tally-calldata/tally"
)

type fetchArgs struct {
	variant tally.Variant
	input   string
	outDir  string
	naming  proposal.NamingPolicy
}

// runFetch resolves the identifier, fetches and normalizes the proposal, writes the artifacts and
// prints a summary. Nothing is written unless the fetch and normalization succeed.
func runFetch(cmd *cobra.Command, cfg Config, a fetchArgs) error {
	deps := cfg.deps()

	// Arguments were accepted; failures from here on are not usage errors.
	cmd.SilenceUsage = true

	if err := cfg.Settings.Validate(a.variant); err != nil {
		return err
	}

	id, err := tally.ResolveIdentifier(a.input)
	if err != nil {
		return err
	}

	source, err := deps.SourceFactory(cfg.Settings, cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create proposal source: %w", err)
	}

	res, err := proposal.NewFetcher(source, cfg.Logger.Named(a.variant.String())).Fetch(cmd.Context(), a.variant, id)
	if err != nil {
		return err
	}
	if a.variant.RequiresGovernor() {
		res.Governor = resolveGovernor(cfg)
	}

	art, err := deps.Persist(a.outDir, res, a.naming)
	if err != nil {
		return fmt.Errorf("failed to write %s proposal %s: %w", a.variant, id, err)
	}

	cfg.Logger.Infow("Wrote proposal artifacts",
		"id", res.Record.ProposalID,
		"calldata", art.CalldataPath,
		"description", art.DescriptionPath,
	)

	proposal.WriteSummary(cmd.OutOrStdout(), res, art)

	return nil
}

// resolveGovernor names the chain of the configured governor. An unknown chain is reported but
// does not fail the fetch.
func resolveGovernor(cfg Config) *proposal.Governor {
	gov := &proposal.Governor{ID: cfg.Settings.Tally.GovernorID}

	chain, err := cfg.Settings.Tally.GovernorChainName()
	if err != nil {
		cfg.Logger.Warnw("Governor chain is not a known EVM chain", "governor", gov.ID, "err", err)

		return gov
	}
	cfg.Logger.Infow("Using governor", "governor", gov.ID, "chain", chain)
	gov.Chain = chain

	return gov
}
