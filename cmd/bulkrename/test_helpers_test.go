package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"bulkrename/internal/testsupport"
)

type cliTestEnv struct {
	home    string
	workDir string
}

// setupCLITestEnv isolates HOME and XDG locations and switches into a work
// directory holding test/foo.txt, test/bar.txt, and test/baz.txt.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("BULKRENAME_LOG_LEVEL", "")

	for _, name := range []string{"test/foo.txt", "test/bar.txt", "test/baz.txt"} {
		testsupport.WriteFile(t, filepath.Join(work, name), 0)
	}
	t.Chdir(work)
	if resolved, err := filepath.EvalSymlinks(work); err == nil {
		work = resolved
	}
	return &cliTestEnv{home: home, workDir: work}
}

// inWork returns the absolute path of rel inside the work directory.
func (e *cliTestEnv) inWork(rel string) string {
	return filepath.Join(e.workDir, rel)
}

func (e *cliTestEnv) journalPath() string {
	return filepath.Join(e.home, ".local", "share", "bulkrename", "journal.db")
}

func (e *cliTestEnv) lockPath() string {
	return filepath.Join(e.home, ".local", "state", "bulkrename", "commit.lock")
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(routeFileArgs(cmd, args))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireLines(t *testing.T, output string, want ...string) {
	t.Helper()
	got := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if output == "" {
		got = nil
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), output)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d mismatch\n got: %q\nwant: %q", i, got[i], want[i])
		}
	}
}
