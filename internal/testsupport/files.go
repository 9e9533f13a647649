package testsupport

import (
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 creates an empty file.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	data := make([]byte, 0, max(size, 0))
	for i := int64(0); i < size; i++ {
		data = append(data, 0x42)
	}
	WriteBytes(t, path, data)
}

// WriteBytes writes data to path, creating parent directories.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePNG encodes a blank width x height PNG at path.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png %s: %v", path, err)
	}
}

// NameRecord is one entry of a synthetic TrueType name table.
type NameRecord struct {
	PlatformID uint16
	NameID     uint16
	Value      []byte
}

// TrueTypeFont assembles a minimal sfnt file whose only table is "name",
// holding the given records in order.
func TrueTypeFont(records []NameRecord) []byte {
	be := binary.BigEndian

	var storage []byte
	table := make([]byte, 6+12*len(records))
	be.PutUint16(table[0:], 0)
	be.PutUint16(table[2:], uint16(len(records)))
	be.PutUint16(table[4:], uint16(len(table)))
	for i, rec := range records {
		off := 6 + 12*i
		be.PutUint16(table[off:], rec.PlatformID)
		be.PutUint16(table[off+6:], rec.NameID)
		be.PutUint16(table[off+8:], uint16(len(rec.Value)))
		be.PutUint16(table[off+10:], uint16(len(storage)))
		storage = append(storage, rec.Value...)
	}
	table = append(table, storage...)

	const headerLen = 12 + 16
	header := make([]byte, headerLen)
	be.PutUint32(header[0:], 0x00010000)
	be.PutUint16(header[4:], 1)
	copy(header[12:], "name")
	be.PutUint32(header[20:], headerLen)
	be.PutUint32(header[24:], uint32(len(table)))

	return append(header, table...)
}

// UTF16BE encodes an ASCII string the way Windows-platform name records store it.
func UTF16BE(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}
