package logging

import (
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Setup configures the global logrus logger: JSON in production, text with timestamps otherwise
func Setup(level string, isProd bool) {
	if isProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level) // Level name from LOG_LEVEL
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
