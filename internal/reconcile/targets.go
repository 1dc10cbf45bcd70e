package reconcile

import (
	"strings"

	"github.com/pdx-tools/pdxlint/internal/extract"
	"github.com/pdx-tools/pdxlint/internal/model"
)

func (r *Reconciler) targetChecks() []check {
	targets := func(role model.Role) func() (*extract.Occurrences, error) {
		return func() (*extract.Occurrences, error) {
			return extract.Targets(r.sel, r.reader, role, r.workers)
		}
	}

	return []check{
		{
			title:      "Checking cleared event targets that are not set...",
			headline:   "Cleared event targets that are not set were encountered.",
			passText:   "No issues found with cleared event targets",
			candidates: targets(model.RoleClear),
			complement: targets(model.RoleSet),
			resolve:    r.resolveByProbes([]string{"clear_global_event_target = %s"}, false, ".txt"),
		},
		{
			title:      "Checking missing event targets (used but not set)...",
			headline:   "Used event targets that are not set were encountered.",
			passText:   "No issues found with missing event targets",
			candidates: targets(model.RoleUse),
			complement: targets(model.RoleSet),
			rules:      r.cfg.Rules.EventTargetsMissing,
			resolve:    r.resolveByProbes([]string{"event_target:%s", "has_event_target = %s"}, false, ".txt"),
		},
		{
			title:      "Checking unused event targets (set but not used)...",
			headline:   "Unused event targets were encountered.",
			passText:   "No issues found with unused event targets",
			candidates: targets(model.RoleSet),
			complement: targets(model.RoleUse),
			rules:      r.cfg.Rules.EventTargetsUnused,
			suppress:   r.targetsUsedInLoc,
			resolve:    r.resolveByProbes([]string{"save_event_target_as = %s", "save_global_event_target_as = %s"}, false, ".txt"),
		},
	}
}

// targetsUsedInLoc scans localisation files for the loc-function idiom
// ([<target>.GetName] / [<target>.GetAdjective]) and marks matching targets
// as used. Event targets are frequently consumed only from localisation,
// never from script text, and would otherwise show up as unused.
func (r *Reconciler) targetsUsedInLoc(targets []string) map[string]bool {
	used := make(map[string]bool)
	for _, path := range r.sel.Files(".yml") {
		content := r.reader.ReadFile(path, true)
		if !strings.Contains(content, ".get") {
			continue
		}
		for _, target := range targets {
			if used[target] {
				continue
			}
			lowered := strings.ToLower(target)
			if strings.Contains(content, "["+lowered+".getname") ||
				strings.Contains(content, "["+lowered+".getadjective") {
				used[target] = true
			}
		}
	}
	return used
}
