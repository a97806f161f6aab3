package repositories

import (
	"context"

	"gorm.io/gorm"

	"reviewecho/internal/models/db_models"
)

// ReviewAggregate carries the raw aggregate read. AverageRating is the
// unrounded SQL mean; presentation rounding happens in the service.
type ReviewAggregate struct {
	Total         int64
	AverageRating float64
	Histogram     map[int]int64
}

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListReviews(ctx context.Context, skip, limit int) ([]db_models.Review, error)
	CountReviews(ctx context.Context) (int64, error)
	AggregateReviews(ctx context.Context) (ReviewAggregate, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts one row. GORM wraps the insert in its own
// transaction, so a failed write leaves nothing behind.
func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListReviews returns reviews newest first. id breaks created_at ties so
// pagination windows stay disjoint.
func (r *ReviewRepository) ListReviews(ctx context.Context, skip, limit int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) CountReviews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).Count(&total).Error
	return total, err
}

func (r *ReviewRepository) AggregateReviews(ctx context.Context) (ReviewAggregate, error) {
	agg := ReviewAggregate{Histogram: map[int]int64{}}

	if err := r.db.WithContext(ctx).Model(&db_models.Review{}).Count(&agg.Total).Error; err != nil {
		return ReviewAggregate{}, err
	}

	if err := r.db.WithContext(ctx).Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&agg.AverageRating).Error; err != nil {
		return ReviewAggregate{}, err
	}

	var buckets []struct {
		Rating int
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&db_models.Review{}).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Order("rating ASC").
		Scan(&buckets).Error; err != nil {
		return ReviewAggregate{}, err
	}
	for _, b := range buckets {
		agg.Histogram[b.Rating] = b.Count
	}

	return agg, nil
}
