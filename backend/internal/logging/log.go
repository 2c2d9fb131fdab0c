package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is initialized at import time so
// that unit tests, whose entry point is not main, can log without any setup.
var Log *logrus.Entry

func init() {
	InitLogger()
}

func InitLogger() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if os.Getenv("PIXSHARE_ENV") == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(logrus.Fields{"service": "pixshare-backend"})
}
