package corpus

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// StagedFiles returns the paths of git-staged files under root that carry
// one of the given extensions, joined with root. It returns nil when root
// is not a git repository, git is unavailable, or nothing relevant is
// staged. Only added, copied and modified files are considered.
func StagedFiles(root string, exts []string) []string {
	cmd := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" || !hasExt(line, exts) {
			continue
		}
		files = append(files, filepath.Join(root, line))
	}
	return files
}
