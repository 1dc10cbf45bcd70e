package cache

// Cache stores decoded file contents for the duration of a run. The
// validators read the same files many times (once per extraction pass and
// again for every locate and line probe), so a hit here avoids a disk read
// and a re-decode.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Flush()
}

// FileKey builds the cache key for one decoded variant of a file.
func FileKey(path string, folded bool) string {
	if folded {
		return path + "|folded"
	}
	return path + "|raw"
}
