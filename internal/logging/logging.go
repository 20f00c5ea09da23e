// Package logging is the component-tagged debug log shared by the batch
// driver and the compositor.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one line per entry, stamped with the wall clock and the
// time elapsed since the logger was created:
//
//	2026-10-14T09:30:00Z +1.250s [INFO] render: wrote out/id/01_yisang_01_seven.png in 84ms
type FileLogger struct {
	mu    sync.Mutex
	w     io.Writer
	start time.Time
	now   func() time.Time
}

func NewFileLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w, start: time.Now(), now: time.Now}
}

func (l *FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l *FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l *FileLogger) write(level, component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	elapsed := now.Sub(l.start).Round(time.Millisecond)
	fmt.Fprintf(l.w, "%s +%.3fs [%s] %s: %s\n", now.Format(time.RFC3339), elapsed.Seconds(), level, component, fmt.Sprintf(format, args...))
}

// OrNoop returns logger, or a NoopLogger when logger is nil.
func OrNoop(logger Logger) Logger {
	if logger == nil {
		return NoopLogger{}
	}
	return logger
}
