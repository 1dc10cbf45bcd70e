package reconcile

import (
	"path/filepath"

	"github.com/pdx-tools/pdxlint/internal/extract"
)

// RunScriptedLoc runs the scripted localisation checks: missing (used but
// not defined), then unused (defined but not used).
func (r *Reconciler) RunScriptedLoc() error {
	defined := func() (*extract.Occurrences, error) {
		return extract.DefinedLocalisations(r.sel, r.reader, r.workers), nil
	}
	used := func() (*extract.Occurrences, error) {
		defs := extract.DefinedLocalisations(r.sel, r.reader, r.workers)
		return extract.UsedLocalisations(r.sel, r.reader, defs.Symbols(), r.workers), nil
	}

	checks := []check{
		{
			title:        "Checking missing scripted localisations (used but not defined)...",
			headline:     "Missing scripted localisations were encountered - they are referenced but not defined in common/scripted_localisation/.",
			note:         "Note: Some of these may be regular localisation keys rather than scripted localisation. Verify manually.",
			passText:     "No issues found with missing scripted localisations",
			candidates:   used,
			complement:   defined,
			rules:        r.cfg.Rules.ScriptedLoc,
			lowerSymbols: true,
			resolve: func(symbol, basename string) (string, int) {
				// The symbol itself is the probe: uses are bare containment,
				// so the probe is case-insensitive unlike the flag probes.
				path := r.loc.FindFile(basename, symbol, true, ".txt", ".gui")
				return path, r.loc.LineNumber(path, symbol, true)
			},
		},
		{
			title:        "Checking unused scripted localisations (defined but not used)...",
			headline:     "Unused scripted localisations were encountered - they are defined but not referenced anywhere.",
			passText:     "No issues found with unused scripted localisations",
			candidates:   defined,
			complement:   used,
			rules:        r.cfg.Rules.ScriptedLoc,
			lowerSymbols: true,
			resolve:      r.resolveDefinition,
		},
	}

	for _, c := range checks {
		if err := r.run(c); err != nil {
			return err
		}
	}
	return nil
}

// resolveDefinition finds a scripted localisation definition file by
// basename under common/scripted_localisation and probes it for the
// name = <symbol> line.
func (r *Reconciler) resolveDefinition(symbol, basename string) (string, int) {
	var path string
	for _, candidate := range r.sel.FullTree().FilesUnder("common/scripted_localisation", "scripted_localisation", ".txt") {
		if filepath.Base(candidate) == basename {
			path = candidate
			break
		}
	}
	if path == "" {
		return "", 0
	}
	return path, r.loc.LineNumber(path, "name = "+symbol, true)
}
