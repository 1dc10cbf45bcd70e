package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdx-tools/pdxlint/internal/cache"
)

func TestReader_StripsBOM(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfset_country_flag = X"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(cache.NewMemoryCache())
	content := r.ReadFile(path, false)
	if content != "set_country_flag = X" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestReader_FoldLowercases(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	if err := os.WriteFile(path, []byte("Set_Country_Flag = ABC"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(cache.NewMemoryCache())
	if got := r.ReadFile(path, true); got != "set_country_flag = abc" {
		t.Errorf("unexpected folded content: %q", got)
	}
	// Raw variant stays untouched.
	if got := r.ReadFile(path, false); got != "Set_Country_Flag = ABC" {
		t.Errorf("unexpected raw content: %q", got)
	}
}

func TestReader_UnreadableFileWarnsAndReturnsEmpty(t *testing.T) {
	r := NewReader(cache.NewMemoryCache())
	var warnings bytes.Buffer
	r.SetWarningWriter(&warnings)

	content := r.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), false)
	if content != "" {
		t.Errorf("expected empty content, got %q", content)
	}
	if !strings.Contains(warnings.String(), "missing.txt") {
		t.Errorf("expected a warning naming the file, got %q", warnings.String())
	}
}

func TestReader_CachesContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(cache.NewMemoryCache())
	if got := r.ReadFile(path, false); got != "original" {
		t.Fatalf("unexpected content: %q", got)
	}

	// Rewrite on disk; the cached copy must win for the rest of the run.
	if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := r.ReadFile(path, false); got != "original" {
		t.Errorf("expected cached content, got %q", got)
	}
}
