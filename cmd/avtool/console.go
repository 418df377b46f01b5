package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// console renders orchestrator output: plain informational lines,
// yellow warnings, and green check-marked success lines. Color is
// applied only when the writer is a terminal.
type console struct {
	out      io.Writer
	colorize bool
}

func newConsole(out io.Writer) *console {
	return &console{
		out:      out,
		colorize: shouldColorize(out),
	}
}

func (c *console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *console) Warnf(format string, args ...any) {
	line := "Warning: " + fmt.Sprintf(format, args...)
	if c.colorize {
		line = ansiYellow + line + ansiReset
	}
	fmt.Fprintln(c.out, line)
}

func (c *console) Successf(format string, args ...any) {
	line := "✓ " + fmt.Sprintf(format, args...)
	if c.colorize {
		line = ansiGreen + line + ansiReset
	}
	fmt.Fprintln(c.out, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
