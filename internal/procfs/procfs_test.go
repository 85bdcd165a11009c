package procfs

import (
	"path/filepath"
	"testing"
)

func TestIsPIDName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"123", true},
		{"1", true},
		{"0", true},
		{"42", true},
		{"", false},
		{"12a", false},
		{"a12", false},
		{"-1", false},
		{"1.5", false},
		{"self", false},
		{"net", false},
		{"１２３", false}, // full-width digits are not PIDs
		{" 1", false},
	}

	for _, tt := range tests {
		if got := IsPIDName(tt.name); got != tt.want {
			t.Errorf("IsPIDName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFSPaths(t *testing.T) {
	fs := FS{Root: "/proc"}

	if got, want := fs.Path(Version), filepath.Join("/proc", "version"); got != want {
		t.Errorf("Path(version) = %q, want %q", got, want)
	}
	if got, want := fs.PIDPath("123", PIDCmdline), filepath.Join("/proc", "123", "cmdline"); got != want {
		t.Errorf("PIDPath(123, cmdline) = %q, want %q", got, want)
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	fs := FS{Root: dir}

	entries, err := fs.ReadDir()
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries in empty dir, want 0", len(entries))
	}

	fs.Root = filepath.Join(dir, "missing")
	if _, err := fs.ReadDir(); err == nil {
		t.Error("ReadDir on missing root: got nil error")
	}
}
