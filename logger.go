package boolde

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger accumulates trace messages during a solve and flushes them to a
// logrus.Logger once the solve finishes, rather than writing straight
// through on every call: candidate coalescing can produce a lot of chatter
// at fine tolerances, and batching keeps the solve loop itself
// allocation-light.
type Logger struct {
	out  *logrus.Logger
	buff strings.Builder
}

func newLogger(out *logrus.Logger) *Logger {
	if out == nil {
		out = logrus.New()
		out.SetLevel(logrus.WarnLevel)
	}
	return &Logger{out: out}
}

// Tracef appends a formatted trace line, buffered until flush.
func (l *Logger) Tracef(format string, a ...interface{}) {
	if !l.out.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	l.buff.WriteString(fmt.Sprintf(format, a...))
	l.buff.WriteByte('\n')
}

func (l *Logger) flush() {
	if l.buff.Len() == 0 {
		return
	}
	l.out.Trace(l.buff.String())
	l.buff.Reset()
}
