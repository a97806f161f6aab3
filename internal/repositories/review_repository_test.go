package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reviewecho/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: handle opens one database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&db_models.Review{}))
	return db
}

func seedReview(t *testing.T, repo *ReviewRepository, rating int, text string, createdAt time.Time) *db_models.Review {
	t.Helper()
	review := &db_models.Review{
		Rating:               rating,
		ReviewText:           text,
		AIResponse:           "reply",
		AISummary:            "summary",
		AIRecommendedActions: "actions",
		CreatedAt:            createdAt,
	}
	require.NoError(t, repo.CreateReview(context.Background(), review))
	return review
}

func TestCreateReview_AssignsIncreasingIDs(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))
	now := time.Now()

	first := seedReview(t, repo, 5, "first", now)
	second := seedReview(t, repo, 4, "second", now)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestListReviews_NewestFirst(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))
	base := time.Now().Add(-time.Hour)

	seedReview(t, repo, 1, "oldest", base)
	seedReview(t, repo, 2, "middle", base.Add(time.Minute))
	seedReview(t, repo, 3, "newest", base.Add(2*time.Minute))

	reviews, err := repo.ListReviews(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "newest", reviews[0].ReviewText)
	assert.Equal(t, "middle", reviews[1].ReviewText)
	assert.Equal(t, "oldest", reviews[2].ReviewText)
}

func TestListReviews_PaginationIsDisjointAndContiguous(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 10; i++ {
		seedReview(t, repo, 1+i%5, "review", base.Add(time.Duration(i)*time.Second))
	}

	full, err := repo.ListReviews(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, full, 10)

	pageOne, err := repo.ListReviews(context.Background(), 0, 4)
	require.NoError(t, err)
	pageTwo, err := repo.ListReviews(context.Background(), 4, 4)
	require.NoError(t, err)
	pageThree, err := repo.ListReviews(context.Background(), 8, 4)
	require.NoError(t, err)

	var paged []db_models.Review
	paged = append(paged, pageOne...)
	paged = append(paged, pageTwo...)
	paged = append(paged, pageThree...)

	require.Len(t, paged, 10)
	for i := range full {
		assert.Equal(t, full[i].ID, paged[i].ID)
	}
}

func TestCountReviews(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	total, err := repo.CountReviews(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	seedReview(t, repo, 5, "one", time.Now())
	seedReview(t, repo, 4, "two", time.Now())

	total, err = repo.CountReviews(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestAggregateReviews_EmptyStore(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	agg, err := repo.AggregateReviews(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, agg.Total)
	assert.Equal(t, float64(0), agg.AverageRating)
	assert.Empty(t, agg.Histogram)
}

func TestAggregateReviews_AverageAndHistogram(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))
	now := time.Now()

	for _, rating := range []int{5, 5, 1, 3} {
		seedReview(t, repo, rating, "review", now)
	}

	agg, err := repo.AggregateReviews(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, agg.Total)
	assert.InDelta(t, 3.5, agg.AverageRating, 1e-9)
	assert.Equal(t, map[int]int64{1: 1, 3: 1, 5: 2}, agg.Histogram)
}
