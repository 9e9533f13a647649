package compose

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"unicode/utf8"

	"bulkrename/internal/extract"
	"bulkrename/internal/faults"
	"bulkrename/internal/logging"
)

// Composer renders new names for source paths.
type Composer struct {
	template   *Template
	limit      int
	extractors []extract.Named
	logger     *slog.Logger
}

// New parses format and binds the extractors that feed it. A limit of zero or
// less disables truncation.
func New(format string, limit int, extractors []extract.Named, logger *slog.Logger) (*Composer, error) {
	tmpl, err := ParseTemplate(format)
	if err != nil {
		return nil, faults.Wrap(faults.ErrComposition, "compose", "parse format", "", err)
	}
	return &Composer{
		template:   tmpl,
		limit:      limit,
		extractors: slices.Clone(extractors),
		logger:     logging.NewComponentLogger(logger, "compose"),
	}, nil
}

// Placeholders assembles the full placeholder set for path: name and ext
// first, then every extractor in order. A key produced twice is an error.
func (c *Composer) Placeholders(path string) (extract.Values, error) {
	_, stem, ext := SplitPath(path)
	values := extract.Values{"name": stem, "ext": ext}

	for _, named := range c.extractors {
		produced, err := named.Placeholders(path)
		if err != nil {
			return nil, faults.Extraction(named.Name, path, err)
		}
		for _, key := range slices.Sorted(maps.Keys(produced)) {
			if _, exists := values[key]; exists {
				return nil, faults.Wrap(faults.ErrComposition, "compose", path,
					fmt.Sprintf("duplicate key: %s (module %s)", key, named.Name), nil)
			}
			values[key] = produced[key]
		}
	}
	return values, nil
}

// CreateName returns the directory component of path and the rendered new
// base name.
func (c *Composer) CreateName(path string) (string, string, error) {
	values, err := c.Placeholders(path)
	if err != nil {
		return "", "", err
	}

	name, err := c.template.Render(values)
	if err != nil {
		var missing *MissingKeyError
		if errors.As(err, &missing) {
			return "", "", faults.Wrap(faults.ErrComposition, "compose", path, missing.Error(), nil)
		}
		return "", "", faults.Wrap(faults.ErrComposition, "compose", path, "render", err)
	}
	name = Truncate(name, c.limit)

	dir, _, _ := SplitPath(path)
	c.logger.Debug("name composed",
		logging.String(logging.FieldFile, path),
		logging.String("name", name),
		logging.Int("placeholders", len(values)),
	)
	return dir, name, nil
}

// Truncate keeps the first limit characters of name when limit is positive.
func Truncate(name string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(name) <= limit {
		return name
	}
	return string([]rune(name)[:limit])
}
