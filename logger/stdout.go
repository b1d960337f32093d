package logger

import (
	"fmt"
	"io"
	"os"
)

// stdOut writes level-prefixed lines to a writer. Handy while developing
// against the live market endpoints; production callers usually plug in
// their own Logger instead.
type stdOut struct {
	out io.Writer
}

var _ Logger = &stdOut{}

func NewStdOut() Logger {
	return &stdOut{out: os.Stdout}
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.printf("DEBUG", format, args...)
}

func (p *stdOut) Infof(format string, args ...any) {
	p.printf("INFO", format, args...)
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.printf("WARN", format, args...)
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.printf("ERROR", format, args...)
}

func (p *stdOut) printf(level string, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
