package log

import (
	"github.com/sirupsen/logrus"
)

func InitLogs() *logrus.Logger {
	log := logrus.New()

	log.SetReportCaller(true)

	return log
}

// WithComponent creates a logger scoped to one component of the tool.
func WithComponent(component string, inner logrus.FieldLogger) logrus.FieldLogger {
	return inner.WithField("component", component)
}
