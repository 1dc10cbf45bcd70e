package reconcile

import (
	"fmt"

	"github.com/pdx-tools/pdxlint/internal/extract"
	"github.com/pdx-tools/pdxlint/internal/model"
)

// RunVars runs the flag checks for every scope, then the event target
// checks. Per scope the order is cleared, missing, unused.
func (r *Reconciler) RunVars() error {
	for _, kind := range []model.FlagKind{model.FlagCountry, model.FlagGlobal, model.FlagState} {
		for _, c := range r.flagChecks(kind) {
			if err := r.run(c); err != nil {
				return err
			}
		}
	}
	for _, c := range r.targetChecks() {
		if err := r.run(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) flagChecks(kind model.FlagKind) []check {
	k := string(kind)
	flags := func(role model.Role) func() (*extract.Occurrences, error) {
		return func() (*extract.Occurrences, error) {
			return extract.Flags(r.sel, r.reader, kind, role, r.workers)
		}
	}

	return []check{
		{
			title:      fmt.Sprintf("Checking cleared %s flags that are never set...", k),
			headline:   fmt.Sprintf("Cleared %s flags that are never set were encountered. Flags with @ are skipped.", k),
			passText:   fmt.Sprintf("No issues found with cleared %s flags", k),
			candidates: flags(model.RoleClear),
			complement: flags(model.RoleSet),
			rules:      r.cfg.FlagRules(kind, model.CheckCleared),
			resolve:    r.resolveByProbes([]string{"clr_" + k + "_flag = %s"}, false, ".txt"),
		},
		{
			title:      fmt.Sprintf("Checking missing %s flags (used but not set)...", k),
			headline:   fmt.Sprintf("Missing %s flags were encountered - they are not set via 'set_%s_flag'. Flags with @ are skipped.", k, k),
			passText:   fmt.Sprintf("No issues found with missing %s flags", k),
			candidates: flags(model.RoleUse),
			complement: flags(model.RoleSet),
			rules:      r.cfg.FlagRules(kind, model.CheckMissing),
			resolve:    r.resolveByProbes([]string{"has_" + k + "_flag = %s"}, false, ".txt"),
		},
		{
			title:      fmt.Sprintf("Checking unused %s flags (set but not used)...", k),
			headline:   fmt.Sprintf("Unused %s flags were encountered - they are not used via 'has_%s_flag' at least once. Flags with @ are skipped.", k, k),
			passText:   fmt.Sprintf("No issues found with unused %s flags", k),
			candidates: flags(model.RoleSet),
			complement: flags(model.RoleUse),
			rules:      r.cfg.FlagRules(kind, model.CheckUnused),
			resolve:    r.resolveByProbes([]string{"set_" + k + "_flag = %s"}, false, ".txt"),
		},
	}
}
