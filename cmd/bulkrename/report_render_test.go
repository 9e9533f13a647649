package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"bulkrename/internal/move"
	"bulkrename/internal/rename"
	"bulkrename/internal/testsupport"
)

func TestRenderReportLineNoColor(t *testing.T) {
	e := rename.Entry{Move: move.Move{Source: "a/x.txt", Destination: "a/y.txt"}, Status: move.Moved}
	if got := renderReportLine(e, false); got != "[move]: a/y.txt <- a/x.txt" {
		t.Fatalf("unexpected line %q", got)
	}
	e.Status, e.Message = move.Failed, "file exists: a/y.txt"
	if got := renderReportLine(e, false); got != "[fail]: a/y.txt <- a/x.txt | file exists: a/y.txt" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestRenderReportLineWithColor(t *testing.T) {
	e := rename.Entry{Move: move.Move{Source: "a", Destination: "b"}, Status: move.Failed, Message: "boom"}
	got := renderReportLine(e, true)
	if !strings.HasPrefix(got, ansiRed) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected red line, got %q", got)
	}
	e.Status = move.Unchanged
	if got := renderReportLine(e, true); !strings.HasPrefix(got, ansiBlue) {
		t.Fatalf("expected blue line, got %q", got)
	}
}

func TestShouldColorizeNonTerminal(t *testing.T) {
	if shouldColorize(io.Discard) || shouldColorize(&bytes.Buffer{}) {
		t.Fatal("expected non-file writers to disable color")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if shouldColorize(f) {
		t.Fatal("expected regular file to disable color")
	}
}

func TestVisibleEntriesQuiet(t *testing.T) {
	report := []rename.Entry{
		{Status: move.Moved},
		{Status: move.Failed, Message: "x"},
		{Status: move.Unchanged},
	}
	if got := visibleEntries(report, false); len(got) != 3 {
		t.Fatalf("expected all entries, got %d", len(got))
	}
	got := visibleEntries(report, true)
	if len(got) != 1 || got[0].Message != "x" {
		t.Fatalf("expected only failures, got %+v", got)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, []columnAlignment{alignRight})
	if !strings.Contains(out, "only") || !strings.Contains(out, "B") {
		t.Fatalf("unexpected table %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table for no headers")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testsupport.WriteBytes(t, path, []byte(content))
}
