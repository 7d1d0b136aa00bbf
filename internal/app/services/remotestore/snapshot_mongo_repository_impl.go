package remotestore

import (
	"context"
	"errors"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SnapshotMongoRepository keeps the whole household as one document, so the
// fetch-all/save-all contract holds against Mongo as well.
type SnapshotMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
	now        func() time.Time
}

var _ contracts.RemoteStoreClient = (*SnapshotMongoRepository)(nil)

type snapshotUpdate struct {
	models.Snapshot `bson:",inline"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func NewSnapshotMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) *SnapshotMongoRepository {
	return &SnapshotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoSnapshotCollection),
		Log:        logger,
		now:        time.Now,
	}
}

func (r *SnapshotMongoRepository) FetchAll(ctx context.Context) *models.Snapshot {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("SnapshotMongoRepository.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	snapshot, err := r.findSnapshot(ctx)
	if err != nil {
		r.Log.Error("SnapshotMongoRepository.FetchAll error finding snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	r.Log.Info("SnapshotMongoRepository.FetchAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(snapshot.Members)),
	)
	return snapshot
}

func (r *SnapshotMongoRepository) findSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var document models.SnapshotDocument
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.MongoSnapshotDocumentID}).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Snapshot{}, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document.Snapshot, nil
}

func (r *SnapshotMongoRepository) SaveAll(ctx context.Context, snapshot *models.Snapshot) bool {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("SnapshotMongoRepository.SaveAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.upsertSnapshot(ctx, snapshot); err != nil {
		r.Log.Error("SnapshotMongoRepository.SaveAll error upserting snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}

	r.Log.Info("SnapshotMongoRepository.SaveAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return true
}

func (r *SnapshotMongoRepository) upsertSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	now := r.now()
	update := bson.M{
		"$set":         snapshotUpdate{Snapshot: *snapshot, UpdatedAt: now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": constvars.MongoSnapshotDocumentID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
