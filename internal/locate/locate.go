// Package locate resolves a defect back to a concrete file and line.
package locate

import (
	"path/filepath"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/corpus"
)

// Locator re-scans the corpus to turn a (basename, probe string) pair into
// a real path and line number. It always walks the full tree, never a
// staged subset: a staged file can reference symbols whose owners were not
// touched in the commit.
type Locator struct {
	sel    *corpus.Selector
	reader *corpus.Reader
}

// New creates a locator. The selector's staged narrowing, if any, is
// dropped.
func New(sel *corpus.Selector, reader *corpus.Reader) *Locator {
	return &Locator{
		sel:    sel.FullTree(),
		reader: reader,
	}
}

// FindFile returns the first corpus file with the given basename whose
// content contains probe, or "" if none does. fold selects case-insensitive
// matching; set/clear/define probes want exact case, generic containment
// probes want tolerance. Ties between same-named files are broken by
// enumeration order.
func (l *Locator) FindFile(basename, probe string, fold bool, exts ...string) string {
	if fold {
		probe = strings.ToLower(probe)
	}
	for _, path := range l.sel.Files(exts...) {
		if filepath.Base(path) != basename {
			continue
		}
		content := l.reader.ReadFile(path, fold)
		if strings.Contains(content, probe) {
			return path
		}
	}
	return ""
}

// LineNumber returns the 1-indexed line of the first occurrence of probe
// in the file at path, or 0 when the probe is not found.
func (l *Locator) LineNumber(path, probe string, fold bool) int {
	if path == "" {
		return 0
	}
	content := l.reader.ReadFile(path, fold)
	if fold {
		probe = strings.ToLower(probe)
	}
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, probe) {
			return i + 1
		}
	}
	return 0
}

// Rel returns path relative to the scan root, falling back to the path
// itself when it cannot be made relative.
func (l *Locator) Rel(path string) string {
	rel, err := filepath.Rel(l.sel.Root(), path)
	if err != nil {
		return path
	}
	return rel
}
