package extract

// Values maps placeholder keys to string, int64, or float64 values.
type Values map[string]any

// Extractor produces the placeholders of one metadata domain for a file.
type Extractor interface {
	Placeholders(path string) (Values, error)
}

// Settings carries the run options individual extractors are built from.
type Settings struct {
	Number    int64
	Algorithm string
	Pattern   string
}

// Named pairs a constructed extractor with the module name that selected it.
type Named struct {
	Name string
	Extractor
}
