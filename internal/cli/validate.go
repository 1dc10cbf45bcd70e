package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdx-tools/pdxlint/internal/cache"
	"github.com/pdx-tools/pdxlint/internal/corpus"
	"github.com/pdx-tools/pdxlint/internal/model"
	"github.com/pdx-tools/pdxlint/internal/reconcile"
	"github.com/pdx-tools/pdxlint/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags shared by both validator commands.
var (
	scanPath    string
	strict      bool
	outputFile  string
	noColor     bool
	stagedOnly  bool
	scanWorkers int
)

func addValidatorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scanPath, "path", ".", "path to the mod folder")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with error code if issues are found")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "save validation results to file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors in output")
	cmd.Flags().BoolVar(&stagedOnly, "staged", false, "only validate git staged files (for pre-commit hook)")
	cmd.Flags().IntVar(&scanWorkers, "workers", 0, "extraction workers (default: CPU count)")
}

// resolveScanRoot validates --path before any scanning happens. A missing
// or non-directory path is the one fatal user error.
func resolveScanRoot() (string, error) {
	root, err := filepath.Abs(scanPath)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %s", root)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return root, nil
}

// runValidator wires one validation run: config, corpus, sink, engine,
// transcript persistence, strict exit.
func runValidator(title string, stagedExts []string, run func(*reconcile.Reconciler) error) error {
	root, err := resolveScanRoot()
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if scanWorkers > 0 {
		cfg.Scan.Workers = scanWorkers
	}
	if noColor {
		cfg.Output.Color = false
	}

	var staged []string
	if stagedOnly {
		staged = corpus.StagedFiles(root, stagedExts)
		if staged == nil {
			fmt.Fprintln(os.Stderr, "Warning: no staged files found, validating the full tree")
		}
	}

	sel := corpus.NewSelector(root, cfg.Scan.IgnoredDirs, staged)
	reader := corpus.NewReader(cache.NewMemoryCache())
	sink := report.NewSink(os.Stdout, report.NewStyler(cfg.Output.Color))
	rec := reconcile.New(cfg, sel, reader, sink)

	sink.Banner(title)
	sink.Println("Mod path: " + root)
	if staged != nil {
		sink.Info("Mode: Git staged files only")
	}
	if outputFile != "" {
		sink.Println("Output file: " + outputFile)
	}

	if err := run(rec); err != nil {
		return err
	}
	sink.Summary()

	if outputFile != "" {
		if err := sink.Save(outputFile); err != nil {
			// Not fatal: the report already went to the console.
			fmt.Fprintf(os.Stderr, "Error: failed to save output to %s: %v\n", outputFile, err)
		} else if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Results saved to: %s\n", outputFile)
		}
	}

	if strict && sink.Issues() > 0 {
		return ErrIssuesFound
	}
	return nil
}
