package logger

import (
	"os"

	"family-health-service/internal/app/config"
	"family-health-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger used by operator commands. Production
// writes JSON to the configured file and falls back to stderr.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(driverConfig.Logger.OutputFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err == nil {
		logger.SetLevel(level)
	}
	return logger
}
