package config

import (
	"codexrfa-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "codexrfa"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:            utils.GetEnvString("MINIO_PORT", "9000"),
			Host:            utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:        utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:        utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName:      utils.GetEnvString("MINIO_BUCKET_NAME", "education-media"),
			UseSSL:          utils.GetEnvBool("MINIO_USE_SSL", false),
			PresignExpHours: utils.GetEnvInt("MINIO_PRESIGN_EXP_HOURS", 24),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", ""),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			BaseURL:         utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Session: Session{
			JWTSecret:        utils.GetEnvString("SESSION_JWT_SECRET", "anyjwt"),
			TTLMinutes:       utils.GetEnvInt("SESSION_TTL_MINUTES", 30),
			SnapshotTTLHours: utils.GetEnvInt("SESSION_SNAPSHOT_TTL_HOURS", 12),
		},
		Identity: Identity{
			Secret:     utils.GetEnvString("PATIENT_ID_SECRET", ""),
			Iterations: utils.GetEnvInt("PATIENT_ID_KDF_ITERATIONS", 100000),
			Version:    utils.GetEnvString("PATIENT_ID_KDF_VERSION", "v1"),
		},
		Mailer: Mailer{
			QueueName:      utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "redflag_email_queue"),
			EmailSender:    utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			SendRatePerMin: utils.GetEnvInt("APP_MAILER_SEND_RATE_PER_MINUTE", 30),
		},
	}
}
