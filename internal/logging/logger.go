package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a log severity level.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Format is a log output format.
type Format string

const (
	Logfmt Format = "logfmt"
	JSON   Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "logfmt":
		return Logfmt, nil
	case "json":
		return JSON, nil
	default:
		return Logfmt, fmt.Errorf("unknown log format %q", s)
	}
}

// Logger is a tiny structured logger, kept in-tree to avoid pulling in a
// heavy logging dependency for a small tool.
//
// All methods are safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	format Format
}

func New(out io.Writer, level Level, format Format) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, level: level, format: format}
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(Debug, msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(Info, msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(Warn, msg, kv...) }
func (l *Logger) Error(msg string, kv ...any) { l.log(Error, msg, kv...) }

func (l *Logger) log(lvl Level, msg string, kv ...any) {
	if lvl < l.level {
		return
	}

	ts := time.Now().UTC().Format(time.RFC3339Nano)

	var line []byte
	switch l.format {
	case JSON:
		m := map[string]any{
			"ts":    ts,
			"level": lvl.String(),
			"msg":   msg,
		}
		for i := 0; i+1 < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				continue
			}
			m[k] = kv[i+1]
		}
		line, _ = json.Marshal(m)
		line = append(line, '\n')
	default:
		line = appendPair(line, "ts", ts)
		line = appendPair(line, "level", lvl.String())
		line = appendPair(line, "msg", msg)
		for i := 0; i+1 < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				continue
			}
			line = appendPair(line, k, fmt.Sprint(kv[i+1]))
		}
		line = append(line, '\n')
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(line)
}

// appendPair appends ` key=value` in logfmt-ish form, quoting the value
// when it contains whitespace or special characters. Not a full logfmt
// implementation, but adequate here.
func appendPair(b []byte, key, value string) []byte {
	if len(b) > 0 {
		b = append(b, ' ')
	}
	b = append(b, key...)
	b = append(b, '=')

	if value == "" {
		return append(b, `""`...)
	}
	if strings.ContainsAny(value, " \t\n\"=") {
		b = append(b, '"')
		b = append(b, strings.ReplaceAll(value, `"`, `\"`)...)
		return append(b, '"')
	}
	return append(b, value...)
}
