package fetch

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/pkg/commands/flags"
	"github.com/smartcontractkit/tally-calldata/pkg/commands/text"
	"github.com/smartcontractkit/tally-calldata/proposal"
	"github.com/smartcontractkit/tally-calldata/tally"
)

var (
	draftShort = "Fetch a draft proposal"

	draftLong = text.LongDesc(`
		Fetches a draft proposal by its Tally draft id and writes proposalCalldata.json and
		proposalDescription.md into the output directory, creating it if needed.

		The calldata record is marked with "type": "draft". Use --legacy-names to write
		draftCalldata.json instead.
	`)

	draftExample = text.Examples(`
		# Fetch a draft from its Tally URL
		tally-calldata fetch draft https://www.tally.xyz/gov/ens/draft/2786603872288769996 src/ens/proposals/ep-6-32

		# Fetch a draft by id
		tally-calldata fetch draft 2786603872288769996 src/ens/proposals/ep-6-32
	`)
)

// newDraftCmd creates the "draft" subcommand.
func newDraftCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "draft <DRAFT_URL_OR_ID> <OUTPUT_DIR>",
		Short:   draftShort,
		Long:    draftLong,
		Example: draftExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			naming := proposal.NamingStandard
			if flags.MustBool(cmd.Flags().GetBool("legacy-names")) {
				naming = proposal.NamingLegacy
			}

			return runFetch(cmd, cfg, fetchArgs{
				variant: tally.VariantDraft,
				input:   args[0],
				outDir:  args[1],
				naming:  naming,
			})
		},
	}

	flags.LegacyNames(cmd, false)

	return cmd
}
