package fetch

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tally-calldata/pkg/commands/flags"
	"github.com/smartcontractkit/tally-calldata/pkg/commands/text"
	"github.com/smartcontractkit/tally-calldata/proposal"
	"github.com/smartcontractkit/tally-calldata/tally"
)

var (
	plainShort = "Fetch only the executable calls of a proposal"

	plainLong = text.LongDesc(`
		Fetches the executable calls of a proposal by its Tally id and writes them to
		draftCalldata.json in the output directory (the current directory by default).
		No description is fetched or written.
	`)

	plainExample = text.Examples(`
		tally-calldata fetch plain 2636017379351463232
		tally-calldata fetch plain 2636017379351463232 out --legacy-names=false
	`)
)

// newPlainCmd creates the "plain" subcommand.
func newPlainCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plain <URL_OR_ID> [OUTPUT_DIR]",
		Short:   plainShort,
		Long:    plainLong,
		Example: plainExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := "."
			if len(args) > 1 {
				outDir = args[1]
			}

			naming := proposal.NamingStandard
			if flags.MustBool(cmd.Flags().GetBool("legacy-names")) {
				naming = proposal.NamingLegacy
			}

			return runFetch(cmd, cfg, fetchArgs{
				variant: tally.VariantPlain,
				input:   args[0],
				outDir:  outDir,
				naming:  naming,
			})
		},
	}

	flags.LegacyNames(cmd, true)

	return cmd
}
