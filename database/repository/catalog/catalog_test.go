package catalogRepo

import (
	"context"
	"errors"
	"testing"

	"tourbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoPackageRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get by id decodes", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "id", Value: "p1"},
			{Key: "title", Value: "Ladakh Ride"},
			{Key: "price", Value: 1000.0},
			{Key: "discount", Value: 10.0},
			{Key: "finalPrice", Value: 900.0},
			{Key: "bookingsCount", Value: 4},
		}))

		pkg, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		require.NotNil(t, pkg)
		assert.Equal(t, 900.0, pkg.FinalPrice)
		assert.Equal(t, 4, pkg.BookingsCount)
	})

	mt.Run("get by id missing", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		pkg, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, pkg)
	})

	mt.Run("increment bookings", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		assert.NoError(t, repo.IncrementBookings(ctx, "p1", 3))
	})

	mt.Run("increment bookings unknown package", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		err := repo.IncrementBookings(ctx, "ghost", 3)
		assert.True(t, errors.Is(err, ErrPackageNotFound))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := repo.Delete(ctx, "ghost")
		assert.True(t, errors.Is(err, ErrPackageNotFound))
	})

	mt.Run("existing ids", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "id", Value: "p1"}},
			bson.D{{Key: "id", Value: "p3"}},
		))
		ids, err := repo.ExistingIDs(ctx, []string{"p1", "p2", "p3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p3"}, ids)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := &MongoPackageRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		pkg := &models.Package{ID: "p9", Title: "Goa"}
		require.NoError(t, repo.Create(ctx, pkg))
		assert.False(t, pkg.CreatedAt.IsZero())
	})
}

func TestMongoGroupRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create defaults members", func(mt *mtest.T) {
		repo := &MongoGroupRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		g := &models.PackageGroup{ID: "g1", Name: "Himalayas"}
		require.NoError(t, repo.Create(ctx, g))
		assert.NotNil(t, g.PackageIDs)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := &MongoGroupRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "id", Value: "g1"}, {Key: "name", Value: "Himalayas"}, {Key: "packages", Value: bson.A{"p1"}}},
		))
		groups, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, []string{"p1"}, groups[0].PackageIDs)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := &MongoGroupRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := repo.Update(ctx, &models.PackageGroup{ID: "ghost"})
		assert.True(t, errors.Is(err, ErrGroupNotFound))
	})
}
