package remotestore

import (
	"context"
	"testing"

	"family-health-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const snapshotNamespace = "family.household_snapshots"

func TestSnapshotMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Fetch All Decodes The Household Document", func(mt *mtest.T) {
		repo := NewSnapshotMongoRepository(mt.Client, "family", zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(1, snapshotNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "household"},
			{Key: "members", Value: bson.A{
				bson.D{{Key: "id", Value: "m1"}, {Key: "name", Value: "Ayu"}},
			}},
			{Key: "contacts", Value: bson.A{
				bson.D{{Key: "id", Value: "c1"}, {Key: "name", Value: "RS Sehat"}, {Key: "type", Value: "Hospital"}},
			}},
		}))

		snapshot := repo.FetchAll(context.Background())

		require.NotNil(t, snapshot)
		require.Len(t, snapshot.Members, 1)
		assert.Equal(t, "Ayu", snapshot.Members[0].Name)
		require.Len(t, snapshot.Contacts, 1)
		assert.Equal(t, "RS Sehat", snapshot.Contacts[0].Name)
	})

	mt.Run("Fetch All Without Document Is Empty", func(mt *mtest.T) {
		repo := NewSnapshotMongoRepository(mt.Client, "family", zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, snapshotNamespace, mtest.FirstBatch))

		snapshot := repo.FetchAll(context.Background())

		require.NotNil(t, snapshot)
		assert.Empty(t, snapshot.Members)
	})

	mt.Run("Fetch All Failure Is Nil", func(mt *mtest.T) {
		repo := NewSnapshotMongoRepository(mt.Client, "family", zap.NewNop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11600, Message: "interrupted"}))

		assert.Nil(t, repo.FetchAll(context.Background()))
	})

	mt.Run("Save All Upserts", func(mt *mtest.T) {
		repo := NewSnapshotMongoRepository(mt.Client, "family", zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		ok := repo.SaveAll(context.Background(), &models.Snapshot{Members: []models.FamilyMember{{ID: "m1"}}})

		assert.True(t, ok)
	})

	mt.Run("Save All Failure Is False", func(mt *mtest.T) {
		repo := NewSnapshotMongoRepository(mt.Client, "family", zap.NewNop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "document failed validation"}))

		assert.False(t, repo.SaveAll(context.Background(), &models.Snapshot{}))
	})
}
