package cli

import (
	"github.com/pdx-tools/pdxlint/internal/reconcile"
	"github.com/spf13/cobra"
)

// varsCmd represents the vars command
var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Validate flags and event targets",
	Long: `Vars cross-references every country, global and state flag and every
event target in the mod:
- flags cleared via clr_*_flag but never set
- flags tested via has_*_flag but never set (missing)
- flags set via set_*_flag but never tested (unused)
- event targets cleared, used or saved with the same three checks

Event targets consumed only from localisation ([target.GetName]) are
counted as used.

Example:
  pdxlint vars --path /path/to/mod
  pdxlint vars --staged --strict
  pdxlint vars -o report.txt --no-color`,
	RunE: runVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)
	addValidatorFlags(varsCmd)
}

func runVars(cmd *cobra.Command, args []string) error {
	return runValidator(
		"VARIABLE AND EVENT TARGET VALIDATION",
		[]string{".txt", ".yml"},
		(*reconcile.Reconciler).RunVars,
	)
}
