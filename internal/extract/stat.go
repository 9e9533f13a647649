package extract

var statKeys = []string{"mode", "inode", "device", "nlink", "uid", "gid", "size", "atime", "mtime", "ctime"}

type stat struct{}

func newStat(Settings) (Extractor, error) {
	return stat{}, nil
}

func (stat) Placeholders(path string) (Values, error) {
	return statValues(path)
}
