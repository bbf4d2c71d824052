package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// logrusAdapter bridges watermill's logging to the application logger
type logrusAdapter struct {
	logger *logrus.Entry
}

// NewLoggerAdapter wraps a logrus logger for use by watermill
func NewLoggerAdapter(logger *logrus.Logger) watermill.LoggerAdapter {
	return &logrusAdapter{logger: logrus.NewEntry(logger)}
}

func (a *logrusAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.entry(fields).WithError(err).Error(msg)
}

func (a *logrusAdapter) Info(msg string, fields watermill.LogFields) {
	a.entry(fields).Info(msg)
}

func (a *logrusAdapter) Debug(msg string, fields watermill.LogFields) {
	a.entry(fields).Debug(msg)
}

func (a *logrusAdapter) Trace(msg string, fields watermill.LogFields) {
	a.entry(fields).Trace(msg)
}

func (a *logrusAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &logrusAdapter{logger: a.entry(fields)}
}

func (a *logrusAdapter) entry(fields watermill.LogFields) *logrus.Entry {
	if len(fields) == 0 {
		return a.logger
	}
	return a.logger.WithFields(logrus.Fields(fields))
}
