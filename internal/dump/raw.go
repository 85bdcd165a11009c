package dump

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/sys/unix"

	"procpeek/internal/metrics"
)

// chunkSize is the read buffer capacity for both dumpers.
const chunkSize = 4096

// cmdlineMarker classifies a path as a NUL-delimited record file.
//
// This is deliberately the crude substring check the tool has always
// used (not a suffix match): /proc/<pid>/cmdline stores argv fields
// separated by NUL bytes, and display convention is one space per NUL
// plus a single trailing newline. Behavior for paths containing the
// marker elsewhere is unspecified and left as is.
const cmdlineMarker = "/cmdline"

// Raw dumps files using direct system calls on a file descriptor:
// open, fixed-size reads, close. Running it under strace shows one
// read(2) per 4096-byte chunk.
type Raw struct {
	Out io.Writer
	IO  *metrics.IO
}

// Dump copies the file at path to d.Out. Output byte order mirrors the
// input, except that for NUL-delimited record files every NUL becomes a
// space and one trailing newline is appended. The descriptor is closed
// on every exit path; a close failure on an otherwise clean dump is
// surfaced as the dump's error.
func (d *Raw) Dump(path string) (err error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.IO.Open(metrics.MethodSyscall)

	defer func() {
		cerr := unix.Close(fd)
		d.IO.Close(metrics.MethodSyscall)
		if err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	nulToSpace := strings.Contains(path, cmdlineMarker)

	buf := make([]byte, chunkSize)
	for {
		n, rerr := unix.Read(fd, buf)
		if n > 0 {
			d.IO.Read(metrics.MethodSyscall, n)
			chunk := buf[:n]
			if nulToSpace {
				for i, b := range chunk {
					if b == 0 {
						chunk[i] = ' '
					}
				}
			}
			if _, werr := d.Out.Write(chunk); werr != nil {
				return fmt.Errorf("write output for %s: %w", path, werr)
			}
			d.IO.Write(metrics.MethodSyscall)
		}
		if rerr != nil {
			return fmt.Errorf("read %s: %w", path, rerr)
		}
		if n == 0 {
			break
		}
	}

	if nulToSpace {
		if _, werr := io.WriteString(d.Out, "\n"); werr != nil {
			return fmt.Errorf("write output for %s: %w", path, werr)
		}
		d.IO.Write(metrics.MethodSyscall)
	}

	return nil
}
