package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFile is the rotating log file, relative to the working directory.
const DefaultLogFile = "logs/viewer.log"

const defaultMaxLines = 200

// Logger is a slog.Logger that fans records out to a colored console handler,
// an optional rotating file, and an in-memory buffer of recent lines that the
// debug overlay draws.
type Logger struct {
	*slog.Logger
	lines *lineBuffer
	file  *lumberjack.Logger
}

type options struct {
	level    slog.Level
	console  io.Writer
	file     string
	maxLines int
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level for every sink.
func WithLevel(level slog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithConsole sets the console writer. Nil disables console output.
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithLogFile enables the rotating file sink at path. Empty disables it.
func WithLogFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithMaxLines bounds the in-memory line buffer.
func WithMaxLines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLines = n
		}
	}
}

// New builds a Logger. Defaults: info level, console on stderr, no file.
func New(opts ...Option) *Logger {
	o := options{level: slog.LevelInfo, console: os.Stderr, maxLines: defaultMaxLines}
	for _, opt := range opts {
		opt(&o)
	}

	lines := &lineBuffer{max: o.maxLines}
	handlers := []slog.Handler{&lineHandler{buf: lines, level: o.level}}
	if o.console != nil {
		handlers = append(handlers, tint.NewHandler(o.console, &tint.Options{
			Level:      o.level,
			TimeFormat: time.TimeOnly,
		}))
	}
	var file *lumberjack.Logger
	if o.file != "" {
		file = &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{Level: o.level}))
	}
	return &Logger{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		lines:  lines,
		file:   file,
	}
}

// Lines returns a copy of the recent log lines, oldest first.
func (l *Logger) Lines() []string {
	return l.lines.snapshot()
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// lineBuffer is a bounded list of formatted lines shared by every derived lineHandler.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func (b *lineBuffer) append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

func (b *lineBuffer) snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// lineHandler formats records as "LEVEL message key=value ...". Groups are
// flattened into dotted key prefixes.
type lineHandler struct {
	buf    *lineBuffer
	level  slog.Level
	attrs  []slog.Attr
	prefix string
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	h.buf.append(sb.String())
	return nil
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, p, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
