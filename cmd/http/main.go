package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family-health-service/internal/app/config"
	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"
	"family-health-service/internal/app/delivery/http/routers"
	"family-health-service/internal/app/drivers/database"
	"family-health-service/internal/app/drivers/logger"
	"family-health-service/internal/app/drivers/messaging"
	"family-health-service/internal/app/drivers/storage"
	"family-health-service/internal/app/services/core/household"
	"family-health-service/internal/app/services/insights"
	"family-health-service/internal/app/services/remotestore"
	"family-health-service/internal/app/services/shared/redis"
	sharedStorage "family-health-service/internal/app/services/shared/storage"
	"family-health-service/internal/app/services/shared/syncqueue"
	"family-health-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Store.Driver == constvars.StoreDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	store := bootstrapingTheApp(bootstrap)
	bootstrap.WaitForSync = store.WaitForSync

	hydrateSource := store.Hydrate(context.Background())
	zapLogger.Info("Household state hydrated",
		zap.String(constvars.LoggingHydrateSourceKey, hydrateSource),
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) *household.Store {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Remote store
	spreadsheetClient := remotestore.NewSpreadsheetClient(internalConfig.Store.SpreadsheetURL, log)
	var remoteStore contracts.RemoteStoreClient = spreadsheetClient
	if internalConfig.Store.Driver == constvars.StoreDriverMongo {
		remoteStore = remotestore.NewSnapshotMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName, log)
	}
	log.Info("Remote store selected", zap.String(constvars.LoggingStoreDriverKey, internalConfig.Store.Driver))

	// Household store
	storeOptions := []household.Option{}
	if bootstrap.RabbitMQ != nil {
		syncQueue, err := syncqueue.NewService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.SyncEventQueue, log)
		if err != nil {
			log.Fatal("Failed to set up sync event queue", zap.Error(err))
		}
		storeOptions = append(storeOptions, household.WithSyncEventPublisher(syncQueue))
	}
	store := household.NewStore(remoteStore, internalConfig.App.DefaultLanguage, log, storeOptions...)

	// Uploads
	uploader := spreadsheetClient.Uploader()
	if internalConfig.Upload.Driver == constvars.UploadDriverMinio {
		minioClient := storage.NewMinio(bootstrap.DriverConfig, internalConfig.Minio.BucketName)
		uploader = sharedStorage.NewObjectUploader(
			sharedStorage.NewMinioStorage(minioClient),
			internalConfig.Minio.BucketName,
			time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours)*time.Hour,
			log,
		)
	}
	log.Info("Upload backend selected", zap.String(constvars.LoggingUploadDriverKey, internalConfig.Upload.Driver))

	// Insights
	var insightClient contracts.InsightClient = insights.NewGeminiClient(
		internalConfig.Insight.BaseUrl,
		internalConfig.Insight.APIKey,
		internalConfig.Insight.Model,
		log,
	)
	if bootstrap.Redis != nil {
		insightClient = insights.NewCachedClient(
			insightClient,
			redis.NewRedisRepository(bootstrap.Redis),
			time.Duration(internalConfig.Insight.CacheTTLInMinutes)*time.Minute,
			log,
		)
	}
	insightReporter := insights.NewFamilyReporter(insightClient, internalConfig.Insight.ReportRequestsPerSecond, log)

	// HTTP
	middlewareInstance := middlewares.NewMiddlewares(log, internalConfig)
	ctrls := controllers.NewControllers(
		log,
		store,
		insightClient,
		insightReporter,
		uploader,
		internalConfig.App.BodyLimitInBytes(),
	)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, ctrls)

	return store
}
