package bastion

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to out (stderr when nil).
// Unknown levels fall back to info. Format "json" selects the JSON
// formatter; anything else the text formatter with full timestamps.
func NewLogger(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	return l
}

// defaultLogger is used by scenes created without WithLogger.
func defaultLogger() logrus.FieldLogger {
	return NewLogger("warn", "text", nil)
}
