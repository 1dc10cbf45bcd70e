// Package reconcile computes cross-reference defects by set algebra over
// extracted occurrence sets.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/corpus"
	"github.com/pdx-tools/pdxlint/internal/extract"
	"github.com/pdx-tools/pdxlint/internal/locate"
	"github.com/pdx-tools/pdxlint/internal/model"
	"github.com/pdx-tools/pdxlint/internal/report"
)

// Reconciler runs the defect checks for every symbol universe. One engine
// serves all five universes; each check is a parameter record, not a
// hand-copied pipeline.
type Reconciler struct {
	cfg     *model.Config
	sel     *corpus.Selector
	reader  *corpus.Reader
	loc     *locate.Locator
	sink    *report.Sink
	workers int
}

// New creates a reconciler. sel may be staged-narrowed; the locator probes
// the full tree regardless.
func New(cfg *model.Config, sel *corpus.Selector, reader *corpus.Reader, sink *report.Sink) *Reconciler {
	workers := cfg.Scan.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Reconciler{
		cfg:     cfg,
		sel:     sel,
		reader:  reader,
		loc:     locate.New(sel, reader),
		sink:    sink,
		workers: workers,
	}
}

// check parameterizes one (universe, defect kind) run of the engine.
type check struct {
	title    string // section title
	headline string // lead-in when defects are found
	note     string // optional advisory under the headline
	passText string // message when the check is clean

	// candidates yields the occurrence set that defines what counts as a
	// defect candidate; complement yields the set whose membership clears
	// a candidate.
	candidates func() (*extract.Occurrences, error)
	complement func() (*extract.Occurrences, error)

	// rules is the false-positive suppression list for this check.
	rules []string

	// lowerSymbols reports candidates in lower case, matching how the
	// scripted localisation checks compare and display their symbols.
	lowerSymbols bool

	// suppress, when set, receives the surviving candidates and returns
	// the ones to drop anyway (the loc-function escape hatch).
	suppress func(symbols []string) map[string]bool

	// resolve turns a surviving symbol and its recorded basename into a
	// concrete path (or "") and 1-indexed line (or 0).
	resolve func(symbol, basename string) (string, int)
}

type candidate struct {
	display  string // casing used for filtering, probing and the report
	original string // casing recorded by extraction, keys the basename map
	lowered  string
}

// run executes one check: extract, lower, filter, diff, dedup, suppress,
// locate, report. Defects are emitted in first-encounter order.
func (r *Reconciler) run(c check) error {
	r.sink.Section(c.title)

	cands, err := c.candidates()
	if err != nil {
		return err
	}
	comp, err := c.complement()
	if err != nil {
		return err
	}
	compSet := comp.LoweredSet()

	all := make([]candidate, 0, cands.Len())
	displays := make([]string, 0, cands.Len())
	for _, sym := range cands.Symbols() {
		e := candidate{display: sym, original: sym, lowered: strings.ToLower(sym)}
		if c.lowerSymbols {
			e.display = e.lowered
		}
		all = append(all, e)
		displays = append(displays, e.display)
	}
	kept := make(map[string]struct{})
	for _, s := range extract.RemoveFalsePositives(displays, c.rules) {
		kept[s] = struct{}{}
	}

	var surviving []candidate
	reported := make(map[string]struct{})
	for _, e := range all {
		if _, ok := kept[e.display]; !ok {
			continue
		}
		if _, cleared := compSet[e.lowered]; cleared {
			continue
		}
		if _, dup := reported[e.lowered]; dup {
			continue
		}
		reported[e.lowered] = struct{}{}
		surviving = append(surviving, e)
	}

	if c.suppress != nil && len(surviving) > 0 {
		names := make([]string, len(surviving))
		for i, e := range surviving {
			names[i] = e.display
		}
		drop := c.suppress(names)
		remaining := surviving[:0]
		for _, e := range surviving {
			if !drop[e.display] {
				remaining = append(remaining, e)
			}
		}
		surviving = remaining
	}

	var defects []model.Defect
	for _, e := range surviving {
		basename := cands.File(e.original)
		if basename == "" {
			basename = "unknown"
		}
		d := model.Defect{Symbol: e.display, File: basename}
		if path, line := c.resolve(e.display, basename); path != "" {
			d.File = r.loc.Rel(path)
			d.Line = line
		}
		defects = append(defects, d)
	}

	if len(defects) == 0 {
		r.sink.Pass(c.passText)
		return nil
	}

	r.sink.Headline(c.headline)
	if c.note != "" {
		r.sink.Note(c.note)
	}
	for _, d := range defects {
		r.sink.Defect(d)
	}
	r.sink.IssueCount(len(defects))
	return nil
}

// resolveByProbes builds a resolver that locates the owning file with the
// probe templates in order, then scans the winner for the first template
// that yields a line. Each template takes the symbol as its one verb.
func (r *Reconciler) resolveByProbes(templates []string, fold bool, exts ...string) func(symbol, basename string) (string, int) {
	return func(symbol, basename string) (string, int) {
		var path string
		for _, tmpl := range templates {
			if path = r.loc.FindFile(basename, fmt.Sprintf(tmpl, symbol), fold, exts...); path != "" {
				break
			}
		}
		if path == "" {
			return "", 0
		}
		for _, tmpl := range templates {
			if line := r.loc.LineNumber(path, fmt.Sprintf(tmpl, symbol), fold); line > 0 {
				return path, line
			}
		}
		return path, 0
	}
}
