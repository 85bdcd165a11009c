package procfs

import (
	"os"
	"path/filepath"
)

// Well-known file names under the procfs root.
const (
	CPUInfo = "cpuinfo"
	MemInfo = "meminfo"
	Version = "version"

	PIDStatus  = "status"
	PIDCmdline = "cmdline"
)

// FS is a small helper around a procfs mount point.
//
// All paths handed to the dumpers are built through it, so tests (and the
// --path.procfs flag) can point the whole program at a synthetic directory
// layout instead of the real /proc.
type FS struct {
	Root string
}

func (fs FS) Path(rel string) string {
	return filepath.Join(fs.Root, rel)
}

// PIDPath builds `<root>/<pid>/<file>`. The pid is used purely as a path
// component; callers must validate it with IsPIDName first.
func (fs FS) PIDPath(pid, file string) string {
	return filepath.Join(fs.Root, pid, file)
}

// ReadDir returns all entries of the procfs root.
func (fs FS) ReadDir() ([]os.DirEntry, error) {
	return os.ReadDir(fs.Root)
}

// IsPIDName reports whether a directory entry name could belong to a
// process: non-empty and composed entirely of ASCII decimal digits.
// Procfs also exposes non-process entries (self, net, sys, ...) which
// fail this test. Some filesystems may not set the entry type, so the
// name check is the only filter used.
func IsPIDName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
