package move

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bulkrename/internal/faults"
	"bulkrename/internal/testsupport"
)

func TestMoverSameFileIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	testsupport.WriteFile(t, src, 3)

	for _, commit := range []bool{false, true} {
		res := NewMover(commit, nil).Move(Move{Source: src, Destination: filepath.Join(dir, ".", "foo.txt")})
		if res.Status != Unchanged || res.Message != "" {
			t.Fatalf("commit=%v: expected unchanged, got %+v", commit, res)
		}
	}
	if !fileExists(src) {
		t.Fatal("source must stay in place")
	}
}

func TestMoverSameFileThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	testsupport.WriteFile(t, filepath.Join(realDir, "foo.txt"), 1)
	link := filepath.Join(dir, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res := NewMover(true, nil).Move(Move{
		Source:      filepath.Join(link, "foo.txt"),
		Destination: filepath.Join(realDir, "foo.txt"),
	})
	if res.Status != Unchanged {
		t.Fatalf("expected unchanged, got %+v", res)
	}
}

func TestMoverDryRunLeavesFilesystem(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	dst := filepath.Join(dir, "bar.txt")
	testsupport.WriteFile(t, src, 1)

	res := NewMover(false, nil).Move(Move{Source: src, Destination: dst})
	if res.Status != Moved {
		t.Fatalf("expected moved, got %+v", res)
	}
	if !fileExists(src) || fileExists(dst) {
		t.Fatal("dry run must not touch the filesystem")
	}
}

func TestMoverDryRunMissingSourceStillMoved(t *testing.T) {
	dir := t.TempDir()
	res := NewMover(false, nil).Move(Move{Source: filepath.Join(dir, "nope"), Destination: filepath.Join(dir, "other")})
	if res.Status != Moved {
		t.Fatalf("expected moved in dry run, got %+v", res)
	}
}

func TestMoverCommitRenames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	dst := filepath.Join(dir, "bar.txt")
	testsupport.WriteFile(t, src, 4)

	res := NewMover(true, nil).Move(Move{Source: src, Destination: dst})
	if res.Status != Moved {
		t.Fatalf("expected moved, got %+v", res)
	}
	if fileExists(src) || !fileExists(dst) {
		t.Fatal("expected source renamed to destination")
	}
}

func TestMoverCommitRefusesClobber(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	dst := filepath.Join(dir, "bar.txt")
	testsupport.WriteBytes(t, src, []byte("foo"))
	testsupport.WriteBytes(t, dst, []byte("bar"))

	res := NewMover(true, nil).Move(Move{Source: src, Destination: dst})
	if res.Status != Failed || res.Message != "file exists: "+dst {
		t.Fatalf("expected clobber failure, got %+v", res)
	}
	if data, _ := os.ReadFile(dst); string(data) != "bar" {
		t.Fatalf("destination overwritten: %q", data)
	}
	if !fileExists(src) {
		t.Fatal("source must remain after refused move")
	}
}

func TestMoverCommitMissingSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")

	res := NewMover(true, nil).Move(Move{Source: src, Destination: filepath.Join(dir, "x.txt")})
	if res.Status != Failed || res.Message != "not found: "+src {
		t.Fatalf("expected not found failure, got %+v", res)
	}
}

func TestMoverCommitDirectorySourceIsNotFound(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sub")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	res := NewMover(true, nil).Move(Move{Source: src, Destination: filepath.Join(dir, "renamed")})
	if res.Status != Failed || res.Message != "not found: "+src {
		t.Fatalf("expected not found failure, got %+v", res)
	}
}

func TestMoverCommitOSError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	testsupport.WriteFile(t, src, 1)

	res := NewMover(true, nil).Move(Move{Source: src, Destination: filepath.Join(dir, "missing-dir", "foo.txt")})
	if res.Status != Failed || res.Message == "" {
		t.Fatalf("expected OS failure with message, got %+v", res)
	}
	if !fileExists(src) {
		t.Fatal("source must remain after failed move")
	}
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("permission denied")
	err := &Error{Kind: KindOS, Path: "a", Err: cause}
	if !errors.Is(err, faults.ErrMove) || !errors.Is(err, cause) {
		t.Fatalf("expected move marker and cause, got %v", err)
	}
	if err.Error() != "permission denied" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if faults.Kind(&Error{Kind: KindExists, Path: "b"}) != "move" {
		t.Fatal("expected move kind")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
