package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdx-tools/pdxlint/internal/reconcile"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// setValidatorFlags points the shared flag vars at a corpus and restores
// them when the test ends.
func setValidatorFlags(t *testing.T, path string, strictMode bool) {
	t.Helper()
	origPath, origStrict := scanPath, strict
	origOutput, origNoColor := outputFile, noColor
	origStaged, origWorkers := stagedOnly, scanWorkers
	t.Cleanup(func() {
		scanPath, strict = origPath, origStrict
		outputFile, noColor = origOutput, origNoColor
		stagedOnly, scanWorkers = origStaged, origWorkers
	})
	scanPath = path
	strict = strictMode
	outputFile = ""
	noColor = true
	stagedOnly = false
	scanWorkers = 1
}

// silenceStdout sends the validator transcript to the null device for the
// duration of the test.
func silenceStdout(t *testing.T) {
	t.Helper()
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = devnull
	t.Cleanup(func() {
		os.Stdout = orig
		devnull.Close()
	})
}

func TestRunValidator_StrictExitContract(t *testing.T) {
	defective := map[string]string{
		"events/a.txt": "set_country_flag = orphan_flag\n",
	}
	clean := map[string]string{
		"events/a.txt": "set_country_flag = ok_flag\nhas_country_flag = ok_flag\n",
	}

	tests := []struct {
		name          string
		files         map[string]string
		strict        bool
		wantIssuesErr bool
	}{
		{"strict with defects", defective, true, true},
		{"non-strict with defects", defective, false, false},
		{"strict with clean corpus", clean, true, false},
		{"non-strict with clean corpus", clean, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidatorFlags(t, writeCorpus(t, tt.files), tt.strict)
			silenceStdout(t)

			err := runValidator("VARIABLE AND EVENT TARGET VALIDATION", []string{".txt", ".yml"}, (*reconcile.Reconciler).RunVars)
			if tt.wantIssuesErr {
				if !errors.Is(err, ErrIssuesFound) {
					t.Errorf("expected ErrIssuesFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected a nil error, got %v", err)
			}
		})
	}
}

func TestRunValidator_RejectsBadPath(t *testing.T) {
	setValidatorFlags(t, filepath.Join(t.TempDir(), "does-not-exist"), false)
	silenceStdout(t)

	err := runValidator("VARIABLE AND EVENT TARGET VALIDATION", []string{".txt"}, (*reconcile.Reconciler).RunVars)
	if err == nil {
		t.Error("expected an error for a missing path")
	}
	if errors.Is(err, ErrIssuesFound) {
		t.Error("a path error must not be reported as validation issues")
	}
}
