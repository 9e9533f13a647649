package extract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"

	"bulkrename/internal/fileutil"
)

var fontKeys = []string{"font_family", "font_weight", "font_string", "font_name"}

// fontNameIDs maps name table IDs to placeholder keys.
var fontNameIDs = map[uint16]string{
	1: "font_family",
	2: "font_weight",
	3: "font_string",
	4: "font_name",
}

var errTruncatedFont = errors.New("truncated font data")

type font struct{}

func newFont(Settings) (Extractor, error) {
	return font{}, nil
}

func (font) Placeholders(path string) (Values, error) {
	if _, ext := fileutil.SplitExt(filepath.Base(path)); ext != ".ttf" {
		return nil, fmt.Errorf("unsupported font extension: %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	names, err := parseFontNames(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	out := make(Values, len(fontKeys))
	for _, key := range fontKeys {
		out[key] = names[key]
	}
	return out, nil
}

// parseFontNames scans the sfnt name table and keeps the first record seen for
// each wanted name ID, whatever its platform.
func parseFontNames(data []byte) (map[string]string, error) {
	table, err := findTable(data, "name")
	if err != nil {
		return nil, err
	}
	if len(table) < 6 {
		return nil, errTruncatedFont
	}
	count := int(binary.BigEndian.Uint16(table[2:4]))
	storage := int(binary.BigEndian.Uint16(table[4:6]))

	names := make(map[string]string, len(fontNameIDs))
	for i := 0; i < count; i++ {
		rec := 6 + 12*i
		if rec+12 > len(table) {
			return nil, errTruncatedFont
		}
		nameID := binary.BigEndian.Uint16(table[rec+6 : rec+8])
		key, wanted := fontNameIDs[nameID]
		if !wanted {
			continue
		}
		if _, seen := names[key]; seen {
			continue
		}
		length := int(binary.BigEndian.Uint16(table[rec+8 : rec+10]))
		offset := int(binary.BigEndian.Uint16(table[rec+10 : rec+12]))
		start := storage + offset
		if start+length > len(table) {
			return nil, errTruncatedFont
		}
		value, err := decodeFontString(table[start : start+length])
		if err != nil {
			return nil, err
		}
		names[key] = value
	}
	return names, nil
}

func findTable(data []byte, tag string) ([]byte, error) {
	if len(data) < 12 {
		return nil, errTruncatedFont
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i
		if rec+16 > len(data) {
			return nil, errTruncatedFont
		}
		if string(data[rec:rec+4]) != tag {
			continue
		}
		offset := int(binary.BigEndian.Uint32(data[rec+8 : rec+12]))
		length := int(binary.BigEndian.Uint32(data[rec+12 : rec+16]))
		if offset < 0 || length < 0 || offset+length > len(data) {
			return nil, errTruncatedFont
		}
		return data[offset : offset+length], nil
	}
	return nil, fmt.Errorf("font has no %q table", tag)
}

// decodeFontString treats records containing a NUL byte as UTF-16BE and
// everything else as UTF-8.
func decodeFontString(raw []byte) (string, error) {
	if bytes.IndexByte(raw, 0) < 0 {
		return string(raw), nil
	}
	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode utf-16 name record: %w", err)
	}
	return string(decoded), nil
}
