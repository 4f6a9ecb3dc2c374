package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus logger: text at debug level in development, JSON at info
// level elsewhere. A non-empty level overrides the default for the environment.
func NewLogger(appName, env string, level ...string) *logrus.Logger {
	return newLogger(os.Stdout, appName, env, level...)
}

func newLogger(out io.Writer, appName, env string, level ...string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if len(level) > 0 && level[0] != "" {
		lvl, err := logrus.ParseLevel(level[0])
		if err != nil {
			logger.WithError(err).Warn("ignoring invalid log level")
		} else {
			logger.SetLevel(lvl)
		}
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env, "level": logger.GetLevel().String()}).Info("logger initialized")
	return logger
}
