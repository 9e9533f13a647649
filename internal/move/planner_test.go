package move

import "testing"

func TestPlan(t *testing.T) {
	tests := []struct {
		source, dir, name, want string
	}{
		{"test/foo.txt", "test", "foo.txt", "test/foo.txt"},
		{"foo.txt", "", "bar.txt", "bar.txt"},
		{"/foo.txt", "/", "bar.txt", "//bar.txt"},
		{"a/b.txt", "a", "x/y.txt", "a/x/y.txt"},
	}
	for _, tt := range tests {
		m := Plan(tt.source, tt.dir, tt.name)
		if m.Source != tt.source || m.Destination != tt.want {
			t.Errorf("Plan(%q, %q, %q) = %+v, want destination %q", tt.source, tt.dir, tt.name, m, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if Moved.String() != "move" || Unchanged.String() != "same" || Failed.String() != "fail" {
		t.Fatalf("unexpected labels %q %q %q", Moved, Unchanged, Failed)
	}
}
