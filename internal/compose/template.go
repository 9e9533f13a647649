package compose

import (
	"errors"
	"fmt"
	"strings"
)

// MissingKeyError reports a template field with no matching placeholder.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("unknown placeholder: %s", e.Key)
}

type segment struct {
	literal string
	field   bool
	key     string
	spec    formatSpec
}

// Template is a parsed format template.
type Template struct {
	source   string
	segments []segment
}

// ParseTemplate parses a brace template once so malformed input is reported
// before any file is processed.
func ParseTemplate(source string) (*Template, error) {
	t := &Template{source: source}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(source); i++ {
		c := source[i]
		switch c {
		case '{':
			if i+1 < len(source) && source[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(source[i+1:], "{}")
			if end < 0 || source[i+1+end] != '}' {
				return nil, fmt.Errorf("unclosed '{' at offset %d in %q", i, source)
			}
			field := source[i+1 : i+1+end]
			seg, err := parseField(field)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			flush()
			t.segments = append(t.segments, seg)
			i += end + 1
		case '}':
			if i+1 < len(source) && source[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("single '}' at offset %d in %q", i, source)
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return t, nil
}

func parseField(field string) (segment, error) {
	key, rawSpec, _ := strings.Cut(field, ":")
	if key == "" {
		return segment{}, errors.New("positional fields are not supported; name a placeholder")
	}
	spec, err := parseSpec(rawSpec)
	if err != nil {
		return segment{}, err
	}
	return segment{field: true, key: key, spec: spec}, nil
}

// String returns the template source.
func (t *Template) String() string {
	return t.source
}

// Keys lists the placeholder keys the template references, in order.
func (t *Template) Keys() []string {
	var keys []string
	for _, seg := range t.segments {
		if seg.field {
			keys = append(keys, seg.key)
		}
	}
	return keys
}

// Render substitutes values into the template. A key absent from values
// fails with a *MissingKeyError.
func (t *Template) Render(values map[string]any) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if !seg.field {
			b.WriteString(seg.literal)
			continue
		}
		value, ok := values[seg.key]
		if !ok {
			return "", &MissingKeyError{Key: seg.key}
		}
		formatted, err := seg.spec.format(value)
		if err != nil {
			return "", fmt.Errorf("placeholder %s: %w", seg.key, err)
		}
		b.WriteString(formatted)
	}
	return b.String(), nil
}
