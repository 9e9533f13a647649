package compose

import (
	"strings"

	"bulkrename/internal/fileutil"
)

// SplitPath splits a slash-separated path into its directory, stem, and
// extension. The directory has trailing slashes removed unless it is the root;
// the extension keeps its leading dot and leading dots of the base name never
// start an extension, so ".profile" has no extension.
func SplitPath(path string) (dir, stem, ext string) {
	i := strings.LastIndex(path, "/") + 1
	dir, base := path[:i], path[i:]
	if dir != "" && strings.Trim(dir, "/") != "" {
		dir = strings.TrimRight(dir, "/")
	}

	stem, ext = fileutil.SplitExt(base)
	return dir, stem, ext
}
