package fileutil

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HashFile streams the full content of path through h and returns the digest.
// The file handle never outlives the call.
func HashFile(path string, h hash.Hash) ([]byte, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if _, err := io.Copy(h, in); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return h.Sum(nil), nil
}

// ResolvePath returns the absolute form of path with every symlink that can
// be resolved resolved. Components that do not exist are kept verbatim, so
// destinations that are not on disk yet still compare correctly.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return resolveAbs(abs), nil
}

func resolveAbs(abs string) string {
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs
	}
	return filepath.Join(resolveAbs(parent), filepath.Base(abs))
}

// SameFile reports whether a and b resolve to the same path after symlink
// and relative-path resolution.
func SameFile(a, b string) bool {
	ra, err := ResolvePath(a)
	if err != nil {
		return false
	}
	rb, err := ResolvePath(b)
	if err != nil {
		return false
	}
	return ra == rb
}

// IsRegularFile reports whether path exists and is a regular file, following
// symlinks.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Exists reports whether anything, including a dangling symlink, occupies path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	return !errors.Is(err, fs.ErrNotExist)
}

// SplitExt splits a base name into stem and extension. The extension keeps
// its leading dot; leading dots of the name never start one, so ".profile"
// and "..ttf" have no extension.
func SplitExt(base string) (stem, ext string) {
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return base, ""
	}
	return base[:dot], base[dot:]
}
