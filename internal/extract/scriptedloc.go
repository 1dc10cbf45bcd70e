package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/corpus"
	"github.com/pdx-tools/pdxlint/internal/worker"
)

const (
	// scriptedLocDir is where scripted localisation definitions live,
	// relative to the scan root.
	scriptedLocDir = "common/scripted_localisation"

	// scriptedLocMarker matches both the definition directory and its
	// staged-path form.
	scriptedLocMarker = "scripted_localisation"

	// scriptedLocSkip marks the French translation mirror, which repeats
	// every definition and would shadow real first-owning files.
	scriptedLocSkip = "00_scripted_localisation_FR_loc"

	scriptedGUIDir = "common/scripted_guis"
)

var locNameRe = regexp.MustCompile(`name\s*=\s*([a-zA-Z_0-9]+)`)

// DefinedLocalisations extracts every scripted localisation name defined
// under common/scripted_localisation.
func DefinedLocalisations(sel *corpus.Selector, r *corpus.Reader, workers int) *Occurrences {
	files := sel.FilesUnder(scriptedLocDir, scriptedLocMarker, ".txt")

	results := worker.Map(workers, files, func(path string) fileMatches {
		if strings.Contains(path, scriptedLocSkip) {
			return fileMatches{}
		}
		content := r.ReadFile(path, false)
		if !strings.Contains(content, "defined_text") || !strings.Contains(content, "name =") {
			return fileMatches{}
		}
		var symbols []string
		for _, m := range locNameRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
		return fileMatches{basename: filepath.Base(path), symbols: symbols}
	})
	return merge(results)
}

// UsedLocalisations reports which of the given defined names appear in
// interface files (.gui), localisation files (.yml) or scripted GUI
// scripts. Uses are found by plain substring containment: the candidate
// set is bounded by the define pass, so containment beats running a
// pattern per file. The definition files themselves are excluded.
func UsedLocalisations(sel *corpus.Selector, r *corpus.Reader, defined []string, workers int) *Occurrences {
	var files []string
	if sel.Staged() {
		files = sel.Files(".gui", ".yml")
		files = append(files, sel.FilesUnder(scriptedGUIDir, "scripted_guis", ".txt")...)
	} else {
		files = sel.Files(".gui")
		files = append(files, sel.Files(".yml")...)
		files = append(files, sel.FilesUnder(scriptedGUIDir, "scripted_guis", ".txt")...)
	}

	results := worker.Map(workers, files, func(path string) fileMatches {
		if strings.Contains(path, scriptedLocMarker) {
			return fileMatches{}
		}
		content := r.ReadFile(path, false)
		if content == "" {
			return fileMatches{}
		}
		var symbols []string
		for _, name := range defined {
			if strings.Contains(content, name) {
				symbols = append(symbols, name)
			}
		}
		return fileMatches{basename: filepath.Base(path), symbols: symbols}
	})
	return merge(results)
}
