package main

import (
	"os"
	"slices"
	"testing"

	"bulkrename/internal/testsupport"
)

func TestSplitArgs(t *testing.T) {
	root := newRootCommand()
	tests := []struct {
		args       []string
		flags, pos []string
	}{
		{
			args:  []string{"-m", "number", "-f", "{n}{ext}", "history"},
			flags: []string{"-m", "number", "-f", "{n}{ext}"},
			pos:   []string{"history"},
		},
		{
			args:  []string{"-cq", "-l", "-1", "a", "--format={name}", "b"},
			flags: []string{"-cq", "-l", "-1", "--format={name}"},
			pos:   []string{"a", "b"},
		},
		{
			args:  []string{"-cf", "{name}", "--output", "json", "--commit", "config"},
			flags: []string{"-cf", "{name}", "--output", "json", "--commit"},
			pos:   []string{"config"},
		},
		{
			args:  []string{"-fx{ext}", "-", "--", "-c"},
			flags: []string{"-fx{ext}"},
			pos:   []string{"-", "-c"},
		},
	}
	for _, tt := range tests {
		flags, pos := splitArgs(root, tt.args)
		if !slices.Equal(flags, tt.flags) || !slices.Equal(pos, tt.pos) {
			t.Fatalf("splitArgs(%q) = %q, %q; want %q, %q", tt.args, flags, pos, tt.flags, tt.pos)
		}
	}
}

func TestRouteFileArgsLeavesSubcommandsAlone(t *testing.T) {
	setupCLITestEnv(t)
	for _, args := range [][]string{
		{"history", "--limit", "3"},
		{"--output", "json", "modules"},
		{"test/foo.txt", "history"},
	} {
		if got := routeFileArgs(newRootCommand(), args); !slices.Equal(got, args) {
			t.Fatalf("routeFileArgs(%q) = %q, want unchanged", args, got)
		}
	}
}

func TestRootRenamesFileNamedLikeSubcommand(t *testing.T) {
	setupCLITestEnv(t)
	testsupport.WriteFile(t, "history", 0)

	out, _, err := runCLI(t, "-m", "number", "-f", "{n}{ext}", "history")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireLines(t, out, "[move]: 0 <- history")

	out, _, err = runCLI(t, "history")
	if err != nil {
		t.Fatalf("identity run: %v", err)
	}
	requireLines(t, out, "[same]: history <- history")
}

func TestRootCommitsFileNamedLikeSubcommand(t *testing.T) {
	setupCLITestEnv(t)
	testsupport.WriteFile(t, "modules", 0)

	out, _, err := runCLI(t, "-c", "-f", "mods-{name}{ext}", "modules", "test/foo.txt")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireLines(t, out,
		"[move]: mods-modules <- modules",
		"[move]: test/mods-foo.txt <- test/foo.txt",
	)
	if _, err := os.Stat("mods-modules"); err != nil {
		t.Fatalf("expected renamed file: %v", err)
	}
}
