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

// flagPatterns holds the compiled extraction patterns for one (kind, role)
// pair, plus the cheap containment gates that decide whether a file is
// worth running the patterns against.
type flagPatterns struct {
	gates  []string
	simple *regexp.Regexp
	braced *regexp.Regexp // multi-line `..._flag = { ... flag = X ... }` form, nil for clears
}

// compileFlagPatterns builds the patterns for a flag kind and role.
//
// The braced pattern spans lines non-greedily, same as the scripts it was
// lifted from; on malformed or unterminated braces it can cross block
// boundaries. That is a known limitation, not worth a real parser here.
func compileFlagPatterns(kind model.FlagKind, role model.Role) (*flagPatterns, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	k := string(kind)

	switch role {
	case model.RoleUse:
		return &flagPatterns{
			gates:  []string{"has_" + k + "_flag =", "modify_" + k + "_flag ="},
			simple: regexp.MustCompile(`has_` + k + `_flag = ([^ \t\n]+)`),
			braced: regexp.MustCompile(`(?s)[y|s]_` + k + `_flag = \{.*?flag = ([^ \t\n}]+).*?\}`),
		}, nil
	case model.RoleSet:
		return &flagPatterns{
			gates:  []string{"set_" + k + "_flag ="},
			simple: regexp.MustCompile(`set_` + k + `_flag = ([^ \t\n]+)`),
			braced: regexp.MustCompile(`(?s)set_` + k + `_flag = \{.*?flag = ([^ \t\n}]+).*?\}`),
		}, nil
	case model.RoleClear:
		return &flagPatterns{
			gates:  []string{"clr_" + k + "_flag ="},
			simple: regexp.MustCompile(`clr_` + k + `_flag = ([^ \t\n]+)`),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported flag role %q", role)
	}
}

// Flags extracts flag occurrences of the given kind and role from every
// .txt file in the corpus. Role must be Use, Set or Clear; flags have no
// definition syntax distinct from being set.
func Flags(sel *corpus.Selector, r *corpus.Reader, kind model.FlagKind, role model.Role, workers int) (*Occurrences, error) {
	patterns, err := compileFlagPatterns(kind, role)
	if err != nil {
		return nil, err
	}

	files := sel.Files(".txt")
	results := worker.Map(workers, files, func(path string) fileMatches {
		return fileMatches{
			basename: filepath.Base(path),
			symbols:  patterns.scan(r.ReadFile(path, false)),
		}
	})
	return merge(results), nil
}

func (p *flagPatterns) scan(content string) []string {
	gated := false
	for _, g := range p.gates {
		if strings.Contains(content, g) {
			gated = true
			break
		}
	}
	if !gated {
		return nil
	}

	var symbols []string
	for _, m := range p.simple.FindAllStringSubmatch(content, -1) {
		symbols = append(symbols, m[1])
	}
	if p.braced != nil {
		for _, m := range p.braced.FindAllStringSubmatch(content, -1) {
			symbols = append(symbols, m[1])
		}
	}
	return symbols
}
