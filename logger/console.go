package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Console wraps a slog.Logger with outcome-flavored helpers and owns the
// writer shared by the progress bar, table, and box output.
type Console struct {
	Logger    *slog.Logger
	out       io.Writer
	Colorized bool
}

func NewConsole(opts *Options) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Console{
		Logger:    NewLogger(opts),
		out:       opts.Output,
		Colorized: opts.EnableColors,
	}
}

func (c *Console) Success(format string, args ...interface{}) {
	c.Logger.Info(c.colorize(Green+Bold, "✓ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Info(format string, args ...interface{}) {
	c.Logger.Info(c.colorize(Blue+Bold, "ℹ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Log(format string, args ...interface{}) {
	c.Logger.Info(c.colorize(White, fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...interface{}) {
	c.Logger.Warn(c.colorize(Yellow+Bold, "⚠ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...interface{}) {
	c.Logger.Error(c.colorize(Red+Bold, "✖ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Fatal(format string, args ...interface{}) {
	c.Logger.Error(c.colorize(BgRed+White+Bold, "✖ "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func (c *Console) colorize(color, msg string) string {
	if !c.Colorized {
		return msg
	}
	return color + msg + Reset
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	return NewProgressBar(total, label, c.out)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.out)
}

// Box draws a bordered block around multi-line content, used for the
// version output.
func (c *Console) Box(title string, content string) {
	lines := strings.Split(content, "\n")

	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4

	fmt.Fprintln(c.out, "┌─"+title+"─"+strings.Repeat("─", width-len(title)-2)+"┐")
	for _, line := range lines {
		fmt.Fprintln(c.out, "│ "+line+strings.Repeat(" ", width-len(line))+" │")
	}
	fmt.Fprintln(c.out, "└"+strings.Repeat("─", width+2)+"┘")
}
