package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	BgRed   = "\033[41m"
)

type Options struct {
	Output       io.Writer
	TimeFormat   string
	Level        slog.Level
	EnableColors bool
}

func DefaultOptions() *Options {
	return &Options{
		Output:       os.Stdout,
		TimeFormat:   "2006-01-02 15:04:05.000",
		Level:        slog.LevelInfo,
		EnableColors: true,
	}
}

var levelColors = map[slog.Level]string{
	slog.LevelDebug: Cyan,
	slog.LevelInfo:  Green,
	slog.LevelWarn:  Yellow,
	slog.LevelError: Red,
}

// textHandler is a minimal slog.Handler that renders one colored line per
// record: timestamp, padded level, message, then any attributes as key=value.
type textHandler struct {
	opts  *Options
	attrs []slog.Attr
	mu    *sync.Mutex
}

func newTextHandler(opts *Options) *textHandler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &textHandler{
		opts: opts,
		mu:   &sync.Mutex{},
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := &textHandler{
		opts:  h.opts,
		attrs: make([]slog.Attr, 0, len(h.attrs)+len(attrs)),
		mu:    h.mu,
	}
	h2.attrs = append(h2.attrs, h.attrs...)
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *textHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *textHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	h.paint(&b, Blue, record.Time.Format(h.opts.TimeFormat))
	b.WriteString(" ")

	levelStr := fmt.Sprintf("%-5s", strings.ToUpper(record.Level.String()))
	h.paint(&b, levelColors[record.Level]+Bold, levelStr)
	b.WriteString(" ")

	h.paint(&b, White+Bold, record.Message)

	appendAttr := func(a slog.Attr) bool {
		b.WriteString(" ")
		h.paint(&b, Magenta, a.Key+"="+a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	record.Attrs(appendAttr)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintln(h.opts.Output, b.String())
	return err
}

func (h *textHandler) paint(b *strings.Builder, color, text string) {
	if h.opts.EnableColors {
		b.WriteString(color)
	}
	b.WriteString(text)
	if h.opts.EnableColors {
		b.WriteString(Reset)
	}
}

func NewLogger(opts *Options) *slog.Logger {
	return slog.New(newTextHandler(opts))
}
