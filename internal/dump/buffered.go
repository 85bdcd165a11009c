package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"procpeek/internal/metrics"
)

// Buffered dumps files line by line through a library-managed stream.
// The kernel sees few large reads; the program sees one delivered line
// per call, the classic fgets shape.
type Buffered struct {
	Out io.Writer
	IO  *metrics.IO
}

// Dump copies the whole file at path to d.Out, line by line.
func (d *Buffered) Dump(path string) error {
	return d.dump(path, -1)
}

// Head copies at most the first `lines` reads of the file at path to
// d.Out. A line longer than the buffer counts once per delivered chunk,
// the same way a fixed-size fgets loop would count it.
func (d *Buffered) Head(path string, lines int) error {
	return d.dump(path, lines)
}

func (d *Buffered) dump(path string, limit int) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.IO.Open(metrics.MethodBuffered)

	defer func() {
		cerr := f.Close()
		d.IO.Close(metrics.MethodBuffered)
		if err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	r := bufio.NewReaderSize(f, chunkSize)
	for n := 0; limit < 0 || n < limit; n++ {
		line, rerr := r.ReadSlice('\n')
		if len(line) > 0 {
			d.IO.Read(metrics.MethodBuffered, len(line))
			if _, werr := d.Out.Write(line); werr != nil {
				return fmt.Errorf("write output for %s: %w", path, werr)
			}
			d.IO.Write(metrics.MethodBuffered)
		}
		if rerr == nil || errors.Is(rerr, bufio.ErrBufferFull) {
			// Full line delivered, or an oversized line continuing in
			// the next chunk; either way keep reading.
			continue
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		return fmt.Errorf("read %s: %w", path, rerr)
	}

	return nil
}
