// Package flags provides reusable flag helpers for CLI commands.
//
// Only flags shared by several commands belong here; command-specific flags are defined next to
// the command.
package flags

import (
	"github.com/spf13/cobra"
)

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// LegacyNames adds the --legacy-names flag, which switches the calldata artifact to
// draftCalldata.json.
// Retrieve the value with cmd.Flags().GetBool("legacy-names").
func LegacyNames(cmd *cobra.Command, defaultValue bool) {
	cmd.Flags().Bool("legacy-names", defaultValue, "Write draftCalldata.json instead of proposalCalldata.json")
}
