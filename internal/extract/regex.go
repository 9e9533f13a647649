package extract

import (
	"errors"
	"fmt"
	"regexp"
)

type regex struct {
	re   *regexp.Regexp
	keys []string
}

func newRegex(s Settings) (Extractor, error) {
	if s.Pattern == "" {
		return nil, errors.New("regex pattern is required")
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", s.Pattern, err)
	}
	var keys []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			keys = append(keys, name)
		}
	}
	return &regex{re: re, keys: keys}, nil
}

// Placeholders searches the full path. A path the pattern does not match is
// an error even when the pattern has no named groups; a group that did not
// take part in the match yields "".
func (r *regex) Placeholders(path string) (Values, error) {
	match := r.re.FindStringSubmatchIndex(path)
	if match == nil {
		return nil, fmt.Errorf("no match for %q in %s", r.re.String(), path)
	}
	out := make(Values, len(r.keys))
	for _, key := range r.keys {
		idx := r.re.SubexpIndex(key)
		start, end := match[2*idx], match[2*idx+1]
		if start < 0 {
			out[key] = ""
			continue
		}
		out[key] = path[start:end]
	}
	return out, nil
}
