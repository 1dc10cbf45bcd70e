package cli

import (
	"github.com/pdx-tools/pdxlint/internal/reconcile"
	"github.com/spf13/cobra"
)

// scriptedLocCmd represents the scriptedloc command
var scriptedLocCmd = &cobra.Command{
	Use:   "scriptedloc",
	Short: "Validate scripted localisation definitions and usage",
	Long: `Scriptedloc cross-references scripted localisation keys:
- keys referenced from interface or localisation files but never defined
  in common/scripted_localisation/
- keys defined there but never referenced anywhere

Example:
  pdxlint scriptedloc --path /path/to/mod
  pdxlint scriptedloc --staged --strict
  pdxlint scriptedloc -o report.txt --no-color`,
	RunE: runScriptedLoc,
}

func init() {
	rootCmd.AddCommand(scriptedLocCmd)
	addValidatorFlags(scriptedLocCmd)
}

func runScriptedLoc(cmd *cobra.Command, args []string) error {
	return runValidator(
		"SCRIPTED LOCALISATION VALIDATION",
		[]string{".txt", ".yml", ".gui"},
		(*reconcile.Reconciler).RunScriptedLoc,
	)
}
