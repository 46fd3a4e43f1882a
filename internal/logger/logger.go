// Package logger provides the leveled logger used by the hufftree command.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used by the command.  *logrus.Logger and
// *logrus.Entry both satisfy it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a Logger writing text lines to w.  Debug messages are emitted
// only when verbose is set.
func New(w io.Writer, verbose bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

var _ Logger = (*logrus.Logger)(nil)
