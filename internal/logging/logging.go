// Package logging builds the process logger. Components receive it as a
// logrus.FieldLogger; nothing logs through the logrus package globals.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log format %q: expected text or json", format)
	}
	return l, nil
}
