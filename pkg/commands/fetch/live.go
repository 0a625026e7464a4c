package fetch

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/pkg/commands/text"
	"github.com/smartcontractkit/tally-calldata/proposal"
	"github.com/smartcontractkit/tally-calldata/tally"
)

var (
	liveShort = "Fetch an on-chain proposal"

	liveLong = text.LongDesc(`
		Fetches a proposal submitted on-chain by its onchain id, addressed through the configured
		governor (TALLY_GOVERNOR_ID). Writes proposalCalldata.json, including the proposal block
		and voting window, and proposalDescription.md into the output directory.

		The description returned by Tally may differ from the on-chain one in whitespace or
		encoding. Compare it against the ProposalCreated event when a test cannot find the proposal.
	`)

	liveExample = text.Examples(`
		# Fetch a live proposal from its Tally URL
		tally-calldata fetch live https://www.tally.xyz/gov/ens/proposal/107313977323541760723614084561841045035159333942448750767795024713131429640046 src/ens/proposals/ep-6-32

		# Fetch a live proposal by onchain id
		tally-calldata fetch live 107313977323541760723614084561841045035159333942448750767795024713131429640046 src/ens/proposals/ep-6-32
	`)
)

// newLiveCmd creates the "live" subcommand.
func newLiveCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:     "live <TALLY_URL_OR_ONCHAIN_ID> <OUTPUT_DIR>",
		Short:   liveShort,
		Long:    liveLong,
		Example: liveExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, cfg, fetchArgs{
				variant: tally.VariantLive,
				input:   args[0],
				outDir:  args[1],
				naming:  proposal.NamingStandard,
			})
		},
	}
}
