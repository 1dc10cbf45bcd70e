// Package corpus selects and reads the files a validation run operates on.
package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Selector yields candidate file paths for a scan. A selector either walks
// the directory tree rooted at Root or, when a staged-file list is supplied,
// intersects that list with the requested extensions. The ignored-directory
// rule applies in both modes.
type Selector struct {
	root        string
	ignoredDirs []string
	staged      []string // nil means scan the full tree
}

// NewSelector creates a selector for the given root. staged may be nil.
func NewSelector(root string, ignoredDirs []string, staged []string) *Selector {
	return &Selector{
		root:        root,
		ignoredDirs: ignoredDirs,
		staged:      staged,
	}
}

// Root returns the scan root.
func (s *Selector) Root() string {
	return s.root
}

// Staged reports whether the selector is narrowed to a staged-file list.
func (s *Selector) Staged() bool {
	return s.staged != nil
}

// Skip reports whether a path falls under an ignored directory. The check
// is on path segments relative to the root, with separators normalized.
func (s *Selector) Skip(path string) bool {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = path
	}
	normalized := strings.ReplaceAll(rel, "\\", "/")
	for _, dir := range s.ignoredDirs {
		if strings.HasPrefix(normalized, dir+"/") || strings.Contains(normalized, "/"+dir+"/") {
			return true
		}
	}
	return false
}

// Files returns every candidate file with one of the given extensions, in
// filesystem enumeration order. Unreadable subtrees are skipped, never fatal.
func (s *Selector) Files(exts ...string) []string {
	if s.staged != nil {
		var files []string
		for _, f := range s.staged {
			if hasExt(f, exts) && !s.Skip(f) {
				files = append(files, f)
			}
		}
		return files
	}

	var files []string
	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !hasExt(path, exts) {
			return nil
		}
		if s.Skip(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files
}

// FilesUnder returns files with the given extensions directly inside the
// subdirectory rel of the root (non-recursive). In staged mode the staged
// list is filtered by the marker substring instead, matching how staged
// paths are reported relative to the repository root.
func (s *Selector) FilesUnder(rel string, marker string, exts ...string) []string {
	if s.staged != nil {
		var files []string
		for _, f := range s.staged {
			normalized := strings.ReplaceAll(f, "\\", "/")
			if hasExt(f, exts) && strings.Contains(normalized, marker) && !s.Skip(f) {
				files = append(files, f)
			}
		}
		return files
	}

	dir := filepath.Join(s.root, filepath.FromSlash(rel))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if hasExt(path, exts) && !s.Skip(path) {
			files = append(files, path)
		}
	}
	return files
}

// FullTree returns a copy of the selector without staged narrowing. The
// locator always probes the whole corpus, even when extraction was limited
// to staged files.
func (s *Selector) FullTree() *Selector {
	return NewSelector(s.root, s.ignoredDirs, nil)
}

func hasExt(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
