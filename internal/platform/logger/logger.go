// Package logger define el logger con niveles del backend. Es chico a
// propósito: un binario, salida a stdout, campos clave=valor.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
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

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level Level
	// JSON cambia la salida de "ts level msg k=v ..." a una línea JSON.
	JSON bool
	// App se agrega como campo base en cada entrada.
	App string
	// Out permite redirigir la salida (default os.Stdout).
	Out io.Writer
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		mu:    &sync.Mutex{},
		out:   out,
		level: opts.Level,
		json:  opts.JSON,
		base:  base,
	}
}

// NewFromEnv lee LOG_LEVEL (debug|info|warn|error, default info),
// LOG_FORMAT (json para salida JSON) y APP_NAME.
func NewFromEnv() Logger {
	return New(Options{
		Level: ParseLevel(os.Getenv("LOG_LEVEL")),
		JSON:  strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json"),
		App:   os.Getenv("APP_NAME"),
	})
}

type stdLogger struct {
	mu    *sync.Mutex
	out   io.Writer
	level Level
	json  bool
	base  map[string]any
}

func (l *stdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		merged[k] = v
	}

	// Comparte mutex y writer con el logger padre.
	return &stdLogger{
		mu:    l.mu,
		out:   l.out,
		level: l.level,
		json:  l.json,
		base:  merged,
	}
}

func (l *stdLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *stdLogger) write(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	extra := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		extra[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		extra[k] = v
	}

	ts := time.Now().Format(time.RFC3339Nano)

	var line string
	if l.json {
		entry := map[string]any{"ts": ts, "level": lvl.String(), "msg": msg}
		for k, v := range extra {
			entry[k] = v
		}
		b, _ := json.Marshal(entry)
		line = string(b)
	} else {
		line = textLine(ts, lvl, msg, extra)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

// textLine arma "ts level msg k=v ..." con ts/level/msg siempre primero
// y el resto de los campos en orden estable.
func textLine(ts string, lvl Level, msg string, extra map[string]any) string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ts)
	b.WriteByte(' ')
	b.WriteString(lvl.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, extra[k])
	}
	return b.String()
}
