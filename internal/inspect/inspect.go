package inspect

import (
	"errors"
	"fmt"
	"io"

	"procpeek/internal/dump"
	"procpeek/internal/logging"
	"procpeek/internal/procfs"
)

// ErrInvalidPID is returned when a candidate PID string fails the
// all-digits check. No filesystem access happens in that case.
var ErrInvalidPID = errors.New("invalid PID")

// sysInfoLines caps how much of cpuinfo/meminfo the summary shows.
const sysInfoLines = 10

// Inspector exposes the exploration operations. Every call is
// self-contained: acquire resource, operate until exhaustion or error,
// release resource, report outcome. No state survives between calls.
type Inspector struct {
	FS  procfs.FS
	Out io.Writer
	Log *logging.Logger

	Raw *dump.Raw
	Buf *dump.Buffered
}

// ListProcesses enumerates the procfs root and prints one row per
// all-digit entry, followed by a count.
func (ins *Inspector) ListProcesses() error {
	entries, err := ins.FS.ReadDir()
	if err != nil {
		return fmt.Errorf("list %s: %w", ins.FS.Root, err)
	}

	fmt.Fprintf(ins.Out, "Process directories in %s:\n", ins.FS.Root)
	fmt.Fprintf(ins.Out, "%-8s %-20s\n", "PID", "Type")
	fmt.Fprintf(ins.Out, "%-8s %-20s\n", "---", "----")

	count := 0
	for _, e := range entries {
		if procfs.IsPIDName(e.Name()) {
			fmt.Fprintf(ins.Out, "%-8s %-20s\n", e.Name(), "process")
			count++
		}
	}

	fmt.Fprintf(ins.Out, "Found %d process directories\n", count)
	return nil
}

// ProcessInfo validates pid and dumps its status and cmdline files via
// the raw-syscall dumper. The first failing dump aborts the operation
// and the returned error names the failing path.
func (ins *Inspector) ProcessInfo(pid string) error {
	if !procfs.IsPIDName(pid) {
		return fmt.Errorf("%w: %q", ErrInvalidPID, pid)
	}

	path := ins.FS.PIDPath(pid, procfs.PIDStatus)
	fmt.Fprintf(ins.Out, "\n--- Process Information for PID %s ---\n", pid)
	if err := ins.Raw.Dump(path); err != nil {
		return fmt.Errorf("read process info: %w", err)
	}

	path = ins.FS.PIDPath(pid, procfs.PIDCmdline)
	fmt.Fprintf(ins.Out, "\n--- Command Line ---\n")
	if err := ins.Raw.Dump(path); err != nil {
		return fmt.Errorf("read process info: %w", err)
	}

	fmt.Fprintln(ins.Out)
	return nil
}

// SystemInfo prints the first lines of cpuinfo and meminfo via the
// buffered dumper. The two sources are independent: a failure on one is
// reported and the other is still attempted. This is the only operation
// where a failure does not abort the remaining work.
func (ins *Inspector) SystemInfo() error {
	fmt.Fprintf(ins.Out, "\n--- CPU Information (first %d lines) ---\n", sysInfoLines)
	if err := ins.Buf.Head(ins.FS.Path(procfs.CPUInfo), sysInfoLines); err != nil {
		ins.Log.Warn("failed to read cpuinfo", "err", err)
	}

	fmt.Fprintf(ins.Out, "\n--- Memory Information (first %d lines) ---\n", sysInfoLines)
	if err := ins.Buf.Head(ins.FS.Path(procfs.MemInfo), sysInfoLines); err != nil {
		ins.Log.Warn("failed to read meminfo", "err", err)
	}

	return nil
}

// CompareMethods dumps the kernel version file through both dumpers.
// There is nothing to compare programmatically; the point is to run it
// under a syscall tracer and watch the two access patterns. Failures
// are reported but non-fatal.
func (ins *Inspector) CompareMethods() {
	path := ins.FS.Path(procfs.Version)

	fmt.Fprintf(ins.Out, "Comparing file reading methods for: %s\n\n", path)

	fmt.Fprintf(ins.Out, "=== Method 1: Using System Calls ===\n")
	if err := ins.Raw.Dump(path); err != nil {
		ins.Log.Warn("syscall read failed", "path", path, "err", err)
	}

	fmt.Fprintf(ins.Out, "\n=== Method 2: Using Library Functions ===\n")
	if err := ins.Buf.Dump(path); err != nil {
		ins.Log.Warn("buffered read failed", "path", path, "err", err)
	}

	fmt.Fprintf(ins.Out, "\nNOTE: Run this program with strace to see the difference!\n")
	fmt.Fprintf(ins.Out, "Example: strace -e trace=openat,read,write,close procpeek --compare\n")
}
