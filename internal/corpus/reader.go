package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/cache"
)

// Reader reads script files as text. Reads are fault tolerant: a file that
// cannot be read is reported as a warning and treated as empty, so one bad
// file never aborts a scan. Decoded contents are cached per (path, fold)
// variant for the lifetime of the run.
type Reader struct {
	cache  cache.Cache
	stderr io.Writer
}

// NewReader creates a reader backed by the given cache.
func NewReader(c cache.Cache) *Reader {
	return &Reader{
		cache:  c,
		stderr: os.Stderr,
	}
}

// SetWarningWriter redirects read warnings, used by tests.
func (r *Reader) SetWarningWriter(w io.Writer) {
	r.stderr = w
}

// ReadFile returns the text content of path, with any UTF-8 byte order
// mark stripped. When fold is true the content is lower-cased.
func (r *Reader) ReadFile(path string, fold bool) string {
	key := cache.FileKey(path, fold)
	if content, ok := r.cache.Get(key); ok {
		return content
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.stderr, "Warning: skipping the file %s: %v\n", path, err)
		r.cache.Set(key, "")
		return ""
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	if fold {
		content = strings.ToLower(content)
	}
	r.cache.Set(key, content)
	return content
}
