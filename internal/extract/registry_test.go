package extract_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"bulkrename/internal/extract"
	"bulkrename/internal/faults"
)

func TestBuildPreservesOrderAndDuplicates(t *testing.T) {
	built, err := extract.Build([]string{"number", "hash", "number"}, extract.Settings{Number: 3, Algorithm: "md5"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var names []string
	for _, n := range built {
		names = append(names, n.Name)
	}
	if got := strings.Join(names, ","); got != "number,hash,number" {
		t.Fatalf("unexpected order %q", got)
	}

	first, _ := built[0].Placeholders("a")
	first2, _ := built[0].Placeholders("b")
	second, _ := built[2].Placeholders("a")
	if first["n"] != int64(3) || first2["n"] != int64(4) || second["n"] != int64(3) {
		t.Fatalf("expected independent counters, got %v %v %v", first, first2, second)
	}
}

func TestBuildUnknownModule(t *testing.T) {
	_, err := extract.Build([]string{"number", "exif"}, extract.Settings{})
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown module: exif") {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestBuildRejectsBadSettings(t *testing.T) {
	cases := map[string]extract.Settings{
		"hash":  {Algorithm: "crc32"},
		"regex": {Pattern: "(?P<x>"},
	}
	for module, settings := range cases {
		if _, err := extract.Build([]string{module}, settings); !errors.Is(err, faults.ErrConfiguration) {
			t.Fatalf("%s: expected configuration error, got %v", module, err)
		}
	}
	if _, err := extract.Build([]string{"regex"}, extract.Settings{}); !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected missing pattern to be a configuration error, got %v", err)
	}
}

func TestNamesAndModules(t *testing.T) {
	want := []string{"number", "regex", "hash", "mime", "stat", "font", "image"}
	if got := extract.Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for _, info := range extract.Modules() {
		if len(info.Keys) == 0 || info.Summary == "" {
			t.Fatalf("module %s lacks description: %+v", info.Name, info)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	built, err := extract.Build(nil, extract.Settings{})
	if err != nil || len(built) != 0 {
		t.Fatalf("expected empty build, got %v %v", built, err)
	}
}
