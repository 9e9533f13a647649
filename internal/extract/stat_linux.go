//go:build linux

package extract

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func statValues(path string) (Values, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return Values{
		"mode":   int64(st.Mode),
		"inode":  int64(st.Ino),
		"device": int64(st.Dev),
		"nlink":  int64(st.Nlink),
		"uid":    int64(st.Uid),
		"gid":    int64(st.Gid),
		"size":   st.Size,
		"atime":  seconds(st.Atim),
		"mtime":  seconds(st.Mtim),
		"ctime":  seconds(st.Ctim),
	}, nil
}

func seconds(ts unix.Timespec) float64 {
	sec, nsec := ts.Unix()
	return float64(sec) + float64(nsec)/1e9
}
