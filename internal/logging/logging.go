package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// DebugEnabled returns true if debug mode is enabled via the TB_DEBUG
// environment variable
func DebugEnabled() bool {
	return os.Getenv("TB_DEBUG") != ""
}

// New creates the application logger. Board-level failures are logged here
// rather than surfaced to the user.
func New(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logger.SetLevel(logrus.WarnLevel)
	if verbose || DebugEnabled() {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
