// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. It starts out discarded so library
// consumers and tests stay quiet; Init wires it to stdout with the
// environment-selected level and format.
var Log = newDiscarded()

func newDiscarded() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the shared logger from the environment. LOG_LEVEL selects
// the level (default "info"); LOG_FORMAT=json switches to JSON output for
// log collection, anything else keeps the human-readable text formatter.
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}
