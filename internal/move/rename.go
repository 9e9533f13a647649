package move

import (
	"errors"
	"os"

	"bulkrename/internal/fileutil"
)

var errDestinationExists = errors.New("destination exists")

// checkedRename is the portable fallback: refuse when something occupies dst,
// then rename. The check and the rename are not atomic.
func checkedRename(src, dst string) error {
	if fileutil.Exists(dst) {
		return errDestinationExists
	}
	return os.Rename(src, dst)
}
