package config

import (
	"flag"
)

// Config holds runtime configuration for procpeek.
type Config struct {
	ProcfsPath string

	// One-shot operations. When any is set, the menu is skipped and the
	// selected operation runs once.
	ListProcesses bool
	PID           string
	SystemInfo    bool
	Compare       bool

	WebListenAddress string
	WebTelemetryPath string

	LogLevel  string
	LogFormat string

	ShowHelp    bool
	ShowVersion bool
}

// ParseFlags parses CLI flags. Flag names follow Prometheus exporter
// conventions for the ambient settings; operation flags are plain words.
func ParseFlags() Config {
	var cfg Config

	flag.StringVar(&cfg.ProcfsPath, "path.procfs", "/proc", "Procfs mountpoint.")

	flag.BoolVar(&cfg.ListProcesses, "list", false, "List process directories and exit.")
	flag.StringVar(&cfg.PID, "pid", "", "Show status and command line for the given PID and exit.")
	flag.BoolVar(&cfg.SystemInfo, "sysinfo", false, "Show the first lines of cpuinfo and meminfo and exit.")
	flag.BoolVar(&cfg.Compare, "compare", false, "Read the kernel version file with both I/O methods and exit.")

	flag.StringVar(&cfg.WebListenAddress, "web.listen-address", "", "Address on which to expose I/O metrics. Empty disables the endpoint. Example: :9101")
	flag.StringVar(&cfg.WebTelemetryPath, "web.telemetry-path", "/metrics", "Path under which to expose metrics.")

	flag.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. One of: [debug, info, warn, error]")
	flag.StringVar(&cfg.LogFormat, "log.format", "logfmt", "Output format of log messages. One of: [logfmt, json]")

	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help and exit.")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help and exit.")

	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show application version and exit.")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show application version and exit.")

	flag.Parse()

	return cfg
}
