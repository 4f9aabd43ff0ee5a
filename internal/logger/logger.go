// Package logger is the leveled logging interface used by the huffpack
// command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log lines.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to w with the given prefix.
func New(w io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(w, prefix, log.LstdFlags)}
}

func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
