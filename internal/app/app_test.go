package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"procpeek/internal/dump"
	"procpeek/internal/inspect"
	"procpeek/internal/logging"
	"procpeek/internal/procfs"
)

func menuInspector(t *testing.T, root string, out io.Writer) *inspect.Inspector {
	t.Helper()
	return &inspect.Inspector{
		FS:  procfs.FS{Root: root},
		Out: out,
		Log: logging.New(io.Discard, logging.Error, logging.Logfmt),
		Raw: &dump.Raw{Out: out},
		Buf: &dump.Buffered{Out: out},
	}
}

func TestMenuListThenExit(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "123"), 0o755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ins := menuInspector(t, root, &out)
	log := logging.New(io.Discard, logging.Error, logging.Logfmt)

	in := strings.NewReader("1\n5\n")
	runMenu(context.Background(), ins, log, in, &out)

	got := out.String()
	if !strings.Contains(got, "Found 1 process directories") {
		t.Errorf("menu option 1 did not run the lister:\n%s", got)
	}
}

func TestMenuPromptsForPID(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "5"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "5", "status"), []byte("Name:\tx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "5", "cmdline"), []byte("x\x00"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ins := menuInspector(t, root, &out)
	log := logging.New(io.Discard, logging.Error, logging.Logfmt)

	in := strings.NewReader("2\n5\n5\n")
	runMenu(context.Background(), ins, log, in, &out)

	got := out.String()
	if !strings.Contains(got, "Enter PID: ") {
		t.Errorf("missing PID prompt:\n%s", got)
	}
	if !strings.Contains(got, "--- Process Information for PID 5 ---") {
		t.Errorf("menu option 2 did not run the reporter:\n%s", got)
	}
}

func TestMenuUnknownOptionKeepsRunning(t *testing.T) {
	var out bytes.Buffer
	ins := menuInspector(t, t.TempDir(), &out)
	log := logging.New(io.Discard, logging.Error, logging.Logfmt)

	in := strings.NewReader("9\n5\n")
	runMenu(context.Background(), ins, log, in, &out)

	if !strings.Contains(out.String(), "Unknown option") {
		t.Errorf("unknown option not reported:\n%s", out.String())
	}
}

func TestMenuExitsOnEOF(t *testing.T) {
	var out bytes.Buffer
	ins := menuInspector(t, t.TempDir(), &out)
	log := logging.New(io.Discard, logging.Error, logging.Logfmt)

	runMenu(context.Background(), ins, log, strings.NewReader(""), &out)
	// Reaching here without hanging is the assertion.
}

func TestMenuStopsWhenContextCancelled(t *testing.T) {
	var out bytes.Buffer
	ins := menuInspector(t, t.TempDir(), &out)
	log := logging.New(io.Discard, logging.Error, logging.Logfmt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runMenu(ctx, ins, log, strings.NewReader("1\n1\n1\n"), &out)
	if strings.Contains(out.String(), "Found") {
		t.Errorf("menu dispatched after cancellation:\n%s", out.String())
	}
}
