package racer

import "github.com/sirupsen/logrus"

// Logger is satisfied by *logrus.Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithError(err error) *logrus.Entry
}
