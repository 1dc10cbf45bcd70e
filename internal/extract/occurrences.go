// Package extract pulls symbol occurrences out of the script corpus.
package extract

import "strings"

// Occurrences is an ordered symbol set with a symbol-to-file map. Symbols
// keep first-encounter order, and the first file attributed to a symbol
// wins: later matches of the same symbol, in the same file or elsewhere, do
// not overwrite it.
type Occurrences struct {
	symbols []string
	files   map[string]string // symbol -> basename of first owning file
}

// NewOccurrences creates an empty occurrence set.
func NewOccurrences() *Occurrences {
	return &Occurrences{
		files: make(map[string]string),
	}
}

// Add records a symbol found in the file with the given basename. Repeat
// additions of the same symbol are ignored.
func (o *Occurrences) Add(symbol, basename string) {
	if _, seen := o.files[symbol]; seen {
		return
	}
	o.symbols = append(o.symbols, symbol)
	o.files[symbol] = basename
}

// Symbols returns the symbols in first-encounter order.
func (o *Occurrences) Symbols() []string {
	return o.symbols
}

// File returns the basename of the first file the symbol was seen in, or
// "" if the symbol is absent.
func (o *Occurrences) File(symbol string) string {
	return o.files[symbol]
}

// Len returns the number of distinct symbols.
func (o *Occurrences) Len() int {
	return len(o.symbols)
}

// LoweredSet returns the symbols lower-cased, for case-folded membership
// tests during reconciliation.
func (o *Occurrences) LoweredSet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.symbols))
	for _, s := range o.symbols {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// fileMatches is the per-file result of a parallel extraction pass.
type fileMatches struct {
	basename string
	symbols  []string
}

// merge folds per-file results into one occurrence set, in input order, so
// first-file-wins stays deterministic regardless of worker scheduling.
func merge(results []fileMatches) *Occurrences {
	occ := NewOccurrences()
	for _, r := range results {
		for _, s := range r.symbols {
			occ.Add(s, r.basename)
		}
	}
	return occ
}
