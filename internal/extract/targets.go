package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/corpus"
	"github.com/pdx-tools/pdxlint/internal/model"
	"github.com/pdx-tools/pdxlint/internal/worker"
)

// tagAliasMarker identifies the alias files that reference targets through
// global_event_target rather than the usual script syntax.
const tagAliasMarker = "tag_aliases"

var (
	targetScopeRe     = regexp.MustCompile(`event_target:([^ \n\t#"]+)`)
	targetHasRe       = regexp.MustCompile(`has_event_target = ([^ \n\t"]+)`)
	targetAliasRe     = regexp.MustCompile(`global_event_target = ([^ \n\t#"]+)`)
	targetSaveRe      = regexp.MustCompile(`save_event_target_as = ([^ \n\t#"]+)`)
	targetSaveGlobRe  = regexp.MustCompile(`save_global_event_target_as = ([^ \n\t#"]+)`)
	targetClearGlobRe = regexp.MustCompile(`clear_global_event_target = ([^ \n\t#"]+)`)
)

// Targets extracts event target occurrences for the given role from every
// .txt file in the corpus. Role must be Use, Set or Clear.
//
// Tag alias files are special: they consume targets via global_event_target
// and never save any, so they only feed the Use role and are excluded from
// the Set role entirely.
func Targets(sel *corpus.Selector, r *corpus.Reader, role model.Role, workers int) (*Occurrences, error) {
	var scan func(path, content string) []string

	switch role {
	case model.RoleUse:
		scan = scanUsedTargets
	case model.RoleSet:
		scan = scanSetTargets
	case model.RoleClear:
		scan = scanClearedTargets
	default:
		return nil, fmt.Errorf("unsupported event target role %q", role)
	}

	files := sel.Files(".txt")
	results := worker.Map(workers, files, func(path string) fileMatches {
		return fileMatches{
			basename: filepath.Base(path),
			symbols:  scan(path, r.ReadFile(path, false)),
		}
	})
	return merge(results), nil
}

func scanUsedTargets(path, content string) []string {
	var symbols []string

	if strings.Contains(path, tagAliasMarker) {
		if strings.Contains(content, "global_event_target =") {
			for _, m := range targetAliasRe.FindAllStringSubmatch(content, -1) {
				symbols = append(symbols, m[1])
			}
		}
		return symbols
	}

	if strings.Contains(content, "event_target:") {
		for _, m := range targetScopeRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	if strings.Contains(content, "has_event_target =") {
		for _, m := range targetHasRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	return symbols
}

func scanSetTargets(path, content string) []string {
	if strings.Contains(path, tagAliasMarker) {
		return nil
	}

	var symbols []string
	if strings.Contains(content, "save_global_event_target_as =") {
		for _, m := range targetSaveGlobRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	if strings.Contains(content, "save_event_target_as =") {
		for _, m := range targetSaveRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	return symbols
}

func scanClearedTargets(path, content string) []string {
	var symbols []string
	if strings.Contains(content, "clear_global_event_target =") {
		for _, m := range targetClearGlobRe.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	return symbols
}
