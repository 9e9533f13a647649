//go:build !linux

package move

func renameNoReplace(src, dst string) error {
	return checkedRename(src, dst)
}
