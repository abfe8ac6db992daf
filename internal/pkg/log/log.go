// Package log add logging utilities.
package log

import (
	"strings"
	"time"

	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"

	"github.com/sirupsen/logrus"
)

// SetLogger sets the default logger's level.
func SetLogger(level string) {
	logrus.SetLevel(logrus.ErrorLevel)
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	logrus.SetFormatter(customFormatter)
	customFormatter.FullTimestamp = true
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// MessageToFields converts a protocol message to structured log fields.
func MessageToFields(msg protocol.Message) logrus.Fields {
	fields := logrus.Fields{
		"type": string(msg.Type),
	}
	if coord, ok := msg.Data.Coordinate(); ok {
		fields["coordinate"] = coord
	}
	if score, ok := msg.Data.Score(); ok {
		fields["score"] = score
	}
	if text, ok := msg.Data.Text(); ok {
		fields["message"] = text
	}
	return fields
}
