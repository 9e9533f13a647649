package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrComposition   = errors.New("composition error")
	ErrExtraction    = errors.New("extraction error")
	ErrMove          = errors.New("move error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrComposition
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Extraction tags err as an extraction failure that surfaced during
// composition of a single file's name.
func Extraction(module, path string, err error) error {
	return Wrap(ErrComposition, module, path, "", fmt.Errorf("%w: %w", ErrExtraction, err))
}

// IsFatal reports whether err must abort the whole run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration) || errors.Is(err, ErrComposition)
}

// Kind names the taxonomy bucket of err for logs and JSON output.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrExtraction):
		return "extraction"
	case errors.Is(err, ErrComposition):
		return "composition"
	case errors.Is(err, ErrMove):
		return "move"
	default:
		return "unknown"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "rename failure"
	}
	return strings.Join(parts, ": ")
}
