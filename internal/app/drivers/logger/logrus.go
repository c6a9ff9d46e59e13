package logger

import (
	"os"

	"codexrfa-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus logger used for plain
// startup and request-line logging alongside the structured zap logger.
func InitLogger(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case "production":
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}
