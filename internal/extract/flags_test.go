package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdx-tools/pdxlint/internal/cache"
	"github.com/pdx-tools/pdxlint/internal/corpus"
	"github.com/pdx-tools/pdxlint/internal/model"
)

var ignoredDirs = []string{"gfx", "tools", "resources", "docs", "map"}

func newCorpus(t *testing.T, files map[string]string) (*corpus.Selector, *corpus.Reader) {
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
	return corpus.NewSelector(root, ignoredDirs, nil), corpus.NewReader(cache.NewMemoryCache())
}

func TestFlags_UseExtraction(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/usa.txt": "has_country_flag = usa_at_war\nsome_other = value\n",
	})

	occ, err := Flags(sel, r, model.FlagCountry, model.RoleUse, 1)
	if err != nil {
		t.Fatal(err)
	}
	if occ.Len() != 1 {
		t.Fatalf("expected 1 flag, got %d: %v", occ.Len(), occ.Symbols())
	}
	if occ.Symbols()[0] != "usa_at_war" {
		t.Errorf("unexpected symbol %q", occ.Symbols()[0])
	}
	if occ.File("usa_at_war") != "usa.txt" {
		t.Errorf("unexpected basename %q", occ.File("usa_at_war"))
	}
}

func TestFlags_BracedModifyForm(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/a.txt": "modify_country_flag = {\n\tflag = usa_support\n\tvalue = 1\n}\n",
	})

	occ, err := Flags(sel, r, model.FlagCountry, model.RoleUse, 1)
	if err != nil {
		t.Fatal(err)
	}
	if occ.Len() != 1 || occ.Symbols()[0] != "usa_support" {
		t.Errorf("expected usa_support, got %v", occ.Symbols())
	}
}

func TestFlags_SetExtractionBothForms(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/a.txt": "set_global_flag = simple_one\nset_global_flag = {\n\tflag = timed_one\n\tdays = 30\n}\n",
	})

	occ, err := Flags(sel, r, model.FlagGlobal, model.RoleSet, 1)
	if err != nil {
		t.Fatal(err)
	}
	symbols := occ.Symbols()
	if len(symbols) != 2 {
		t.Fatalf("expected 2 flags, got %v", symbols)
	}
	if symbols[0] != "simple_one" || symbols[1] != "timed_one" {
		t.Errorf("unexpected symbols %v", symbols)
	}
}

func TestFlags_ClearExtraction(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/a.txt": "clr_state_flag = contested\n",
	})

	occ, err := Flags(sel, r, model.FlagState, model.RoleClear, 1)
	if err != nil {
		t.Fatal(err)
	}
	if occ.Len() != 1 || occ.Symbols()[0] != "contested" {
		t.Errorf("expected contested, got %v", occ.Symbols())
	}
}

func TestFlags_UnsupportedKind(t *testing.T) {
	sel, r := newCorpus(t, nil)
	if _, err := Flags(sel, r, model.FlagKind("planet"), model.RoleUse, 1); err == nil {
		t.Error("expected an error for an unsupported flag kind")
	}
}

func TestFlags_FirstFileWins(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/a.txt": "set_country_flag = shared\n",
		"events/b.txt": "set_country_flag = shared\n",
	})

	occ, err := Flags(sel, r, model.FlagCountry, model.RoleSet, 4)
	if err != nil {
		t.Fatal(err)
	}
	if occ.Len() != 1 {
		t.Fatalf("expected 1 distinct flag, got %v", occ.Symbols())
	}
	if occ.File("shared") != "a.txt" {
		t.Errorf("expected first file a.txt, got %q", occ.File("shared"))
	}
}

func TestFlags_TokenStopsAtWhitespace(t *testing.T) {
	sel, r := newCorpus(t, map[string]string{
		"events/a.txt": "has_country_flag = tok value = 2\n",
	})

	occ, err := Flags(sel, r, model.FlagCountry, model.RoleUse, 1)
	if err != nil {
		t.Fatal(err)
	}
	if occ.Symbols()[0] != "tok" {
		t.Errorf("expected token to stop at whitespace, got %q", occ.Symbols()[0])
	}
}

func TestFlags_ParallelMatchesSerial(t *testing.T) {
	files := make(map[string]string)
	files["events/a.txt"] = "set_country_flag = flag_a\n"
	files["events/b.txt"] = "set_country_flag = flag_b\nset_country_flag = flag_a\n"
	files["events/c.txt"] = "set_country_flag = flag_c\n"
	sel, r := newCorpus(t, files)

	serial, err := Flags(sel, r, model.FlagCountry, model.RoleSet, 1)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Flags(sel, r, model.FlagCountry, model.RoleSet, 8)
	if err != nil {
		t.Fatal(err)
	}

	if len(serial.Symbols()) != len(parallel.Symbols()) {
		t.Fatalf("symbol counts differ: %v vs %v", serial.Symbols(), parallel.Symbols())
	}
	for i, s := range serial.Symbols() {
		if parallel.Symbols()[i] != s {
			t.Errorf("symbol %d differs: %q vs %q", i, s, parallel.Symbols()[i])
		}
		if serial.File(s) != parallel.File(s) {
			t.Errorf("basename for %q differs: %q vs %q", s, serial.File(s), parallel.File(s))
		}
	}
}
