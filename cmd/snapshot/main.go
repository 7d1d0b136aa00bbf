package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"family-health-service/internal/app/config"
	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/drivers/database"
	"family-health-service/internal/app/drivers/logger"
	"family-health-service/internal/app/models"
	"family-health-service/internal/app/services/remotestore"
	"family-health-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const usage = `usage: snapshot <command> <file>

commands:
  export <file>   write the remote household snapshot to file
  import <file>   replace the remote household snapshot with file`

const commandTimeout = 2 * time.Minute

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	command, path := os.Args[1], os.Args[2]

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	var mongoClient *mongo.Client
	var remote contracts.RemoteStoreClient
	switch internalConfig.Store.Driver {
	case constvars.StoreDriverMongo:
		mongoClient = database.NewMongoDB(driverConfig)
		remote = remotestore.NewSnapshotMongoRepository(mongoClient, driverConfig.MongoDB.DbName, zapLogger)
	default:
		spreadsheetClient := remotestore.NewSpreadsheetClient(internalConfig.Store.SpreadsheetURL, zapLogger)
		if !spreadsheetClient.IsConfigured() {
			log.Fatal("Spreadsheet store URL is not configured")
		}
		remote = spreadsheetClient
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	entry := log.WithFields(logrus.Fields{
		constvars.LoggingStoreDriverKey:  internalConfig.Store.Driver,
		constvars.LoggingSnapshotFileKey: path,
	})

	var err error
	switch command {
	case "export":
		err = exportSnapshot(ctx, remote, path)
	case "import":
		err = importSnapshot(ctx, remote, path)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if mongoClient != nil {
		if disconnectErr := mongoClient.Disconnect(context.Background()); disconnectErr != nil {
			entry.WithError(disconnectErr).Warn("Failed to close MongoDB")
		}
	}

	if err != nil {
		entry.WithError(err).Fatalf("Snapshot %s failed", command)
	}
	entry.Infof("Snapshot %s finished", command)
}

func exportSnapshot(ctx context.Context, remote contracts.RemoteStoreClient, path string) error {
	snapshot := remote.FetchAll(ctx)
	if snapshot == nil {
		return fmt.Errorf("remote store returned no snapshot")
	}
	snapshot.Normalize()

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, payload, 0644)
}

func importSnapshot(ctx context.Context, remote contracts.RemoteStoreClient, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	snapshot := new(models.Snapshot)
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	snapshot.Normalize()

	if !remote.SaveAll(ctx, snapshot) {
		return fmt.Errorf("remote store rejected the snapshot")
	}
	return nil
}
