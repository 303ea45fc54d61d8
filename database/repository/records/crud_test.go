package recordsRepo

import (
	"context"
	"testing"

	"tourbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRecordRepos(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("inquiry create assigns id", func(mt *mtest.T) {
		repo := &mongoInquiryRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		inq := &models.Inquiry{FirstName: "Asha"}
		require.NoError(t, repo.Create(ctx, inq))
		assert.NotEmpty(t, inq.ID)
		assert.False(t, inq.CreatedAt.IsZero())
	})

	mt.Run("inquiry delete missing", func(mt *mtest.T) {
		repo := &mongoInquiryRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(t, repo.DeleteByID(ctx, "ghost"), ErrRecordNotFound)
	})

	mt.Run("review list", func(mt *mtest.T) {
		repo := &mongoReviewRepo{coll: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "r2"}, {Key: "star", Value: 5}},
			bson.D{{Key: "id", Value: "r1"}, {Key: "star", Value: 3}},
		))
		reviews, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, 5, reviews[0].Star)
	})

	mt.Run("review delete", func(mt *mtest.T) {
		repo := &mongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(t, repo.DeleteByID(ctx, "r1"))
	})
}
