package observability

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// WatermillLogrusAdapter routes watermill's internal logging through logrus,
// so the router and the HTTP layer share one log stream.
type WatermillLogrusAdapter struct {
	entry *logrus.Entry
}

func NewWatermillLogger() WatermillLogrusAdapter {
	return WatermillLogrusAdapter{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l WatermillLogrusAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.entry.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}

func (l WatermillLogrusAdapter) Info(msg string, fields watermill.LogFields) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l WatermillLogrusAdapter) Debug(msg string, fields watermill.LogFields) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l WatermillLogrusAdapter) Trace(msg string, fields watermill.LogFields) {
	l.entry.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l WatermillLogrusAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return WatermillLogrusAdapter{entry: l.entry.WithFields(logrus.Fields(fields))}
}
