package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"
	"codexrfa-service/internal/app/delivery/http/routers"
	"codexrfa-service/internal/app/drivers/database"
	"codexrfa-service/internal/app/drivers/logger"
	drivermailer "codexrfa-service/internal/app/drivers/mailer"
	"codexrfa-service/internal/app/drivers/messaging"
	"codexrfa-service/internal/app/drivers/storage"
	"codexrfa-service/internal/app/services/core/catalog"
	"codexrfa-service/internal/app/services/core/doctors"
	"codexrfa-service/internal/app/services/core/identity"
	"codexrfa-service/internal/app/services/core/submissions"
	"codexrfa-service/internal/app/services/core/traversal"
	sharedmailer "codexrfa-service/internal/app/services/shared/mailer"
	sharedredis "codexrfa-service/internal/app/services/shared/redis"
	sharedstorage "codexrfa-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	// The deriver must never run with an empty secret; fail at startup,
	// not on the first session.
	identityParams := identity.Params{
		Secret:     internalConfig.Identity.Secret,
		Iterations: internalConfig.Identity.Iterations,
		Version:    internalConfig.Identity.Version,
	}
	if err := identityParams.Validate(); err != nil {
		logrus.Fatalf("Identity configuration invalid: %v", err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := drivermailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap, minioClient, smtpClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Failed to close resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client, smtpClient *drivermailer.SMTPClient) {
	// Shared services
	sessionStore := sharedredis.NewSessionStore(bootstrap.Redis)
	mediaStorage := sharedstorage.NewMediaStorage(minioClient, bootstrap.DriverConfig)

	notifier, err := sharedmailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.QueueName, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize mailer service: %v", err)
	}

	mailerWorker := sharedmailer.NewWorker(
		smtpClient,
		bootstrap.InternalConfig.Mailer.QueueName,
		bootstrap.InternalConfig.Mailer.SendRatePerMin,
		bootstrap.Logger,
	)
	workerStop, err := mailerWorker.Start(bootstrap.RabbitMQ)
	if err != nil {
		logrus.Fatalf("Failed to start mailer worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Catalog
	catalogRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	catalogUsecase := catalog.NewCatalogUsecase(catalogRepository, sessionStore, bootstrap.InternalConfig)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Doctors
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Submissions
	submissionRepository := submissions.NewSubmissionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Sessions
	sessionUsecase := traversal.NewSessionUsecase(
		catalogUsecase,
		doctorRepository,
		sessionStore,
		submissionRepository,
		notifier,
		mediaStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionUsecase)

	// Red flags
	redFlagController := controllers.NewRedFlagController(bootstrap.Logger, catalogUsecase, mediaStorage)

	bootstrap.Router.Use(middlewareInstance.RequestLogger(logrus.StandardLogger()))

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		doctorController,
		catalogController,
		sessionController,
		redFlagController,
	)
}
