package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"procpeek/internal/config"
	"procpeek/internal/dump"
	"procpeek/internal/inspect"
	"procpeek/internal/logging"
	"procpeek/internal/metrics"
	"procpeek/internal/procfs"
	"procpeek/internal/web"
)

// Run wires the application together and blocks until the selected
// operation (or the interactive session) finishes.
func Run(cfg config.Config, version string) int {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.Info
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		format = logging.Logfmt
	}
	log := logging.New(os.Stderr, level, format)

	if cfg.ShowVersion {
		log.Info("version", "version", version)
		return 0
	}

	pfs := procfs.FS{Root: cfg.ProcfsPath}

	reg := prometheus.NewRegistry()
	ioMetrics := metrics.NewIO()
	ioMetrics.MustRegister(reg)

	ins := &inspect.Inspector{
		FS:  pfs,
		Out: os.Stdout,
		Log: log,
		Raw: &dump.Raw{Out: os.Stdout, IO: ioMetrics},
		Buf: &dump.Buffered{Out: os.Stdout, IO: ioMetrics},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if cfg.WebListenAddress != "" {
		srv := &web.Server{
			Logger:        log,
			Registry:      reg,
			TelemetryPath: cfg.WebTelemetryPath,
			ListenAddr:    cfg.WebListenAddress,
		}
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.Error("metrics server error", "err", err)
			}
		}()
	}

	// One-shot flags skip the menu.
	switch {
	case cfg.ListProcesses:
		return report(log, "list processes", ins.ListProcesses())
	case cfg.PID != "":
		return report(log, "process info", ins.ProcessInfo(cfg.PID))
	case cfg.SystemInfo:
		return report(log, "system info", ins.SystemInfo())
	case cfg.Compare:
		ins.CompareMethods()
		return 0
	}

	runMenu(ctx, ins, log, os.Stdin, os.Stdout)
	return 0
}

func report(log *logging.Logger, op string, err error) int {
	if err != nil {
		log.Error(op+" failed", "err", err)
		return 1
	}
	return 0
}

// runMenu drives the interactive session. Operation failures are logged
// and control returns to the menu; only EOF, an explicit exit, or a
// termination signal end the loop.
func runMenu(ctx context.Context, ins *inspect.Inspector, log *logging.Logger, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)

	for ctx.Err() == nil {
		fmt.Fprintf(out, "\n--- procpeek ---\n")
		fmt.Fprintf(out, "1) List process directories\n")
		fmt.Fprintf(out, "2) Show process info\n")
		fmt.Fprintf(out, "3) Show system info\n")
		fmt.Fprintf(out, "4) Compare file read methods\n")
		fmt.Fprintf(out, "5) Exit\n")
		fmt.Fprintf(out, "Select an option: ")

		if !sc.Scan() {
			return
		}

		switch strings.TrimSpace(sc.Text()) {
		case "1":
			if err := ins.ListProcesses(); err != nil {
				log.Error("list processes failed", "err", err)
			}
		case "2":
			fmt.Fprintf(out, "Enter PID: ")
			if !sc.Scan() {
				return
			}
			pid := strings.TrimSpace(sc.Text())
			if err := ins.ProcessInfo(pid); err != nil {
				log.Error("process info failed", "err", err)
			}
		case "3":
			if err := ins.SystemInfo(); err != nil {
				log.Error("system info failed", "err", err)
			}
		case "4":
			ins.CompareMethods()
		case "5":
			return
		default:
			fmt.Fprintf(out, "Unknown option\n")
		}
	}
}
