package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"reviewecho/internal/models/db_models"
	"reviewecho/internal/repositories"
	"reviewecho/pkg/utils"
)

type ReviewStats struct {
	TotalReviews       int64
	AverageRating      float64
	RatingDistribution map[int]int64
}

type ReviewServiceInterface interface {
	SubmitReview(ctx context.Context, rating int, reviewText string) (*db_models.Review, error)
	ListReviews(ctx context.Context, skip, limit int) ([]db_models.Review, int64, error)
	GetStats(ctx context.Context) (ReviewStats, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	generator  GeneratorServiceInterface
	log        zerolog.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, generator GeneratorServiceInterface, log zerolog.Logger) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, generator: generator, log: log}
}

// SubmitReview runs validate -> generate(3x) -> persist. Generation never
// fails the request; a degraded artifact just means fallback text got
// stored. A persistence error fails the whole request and leaves no row.
func (s *ReviewService) SubmitReview(ctx context.Context, rating int, reviewText string) (*db_models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	reviewText = strings.TrimSpace(reviewText)
	if reviewText == "" {
		return nil, utils.ErrEmptyReviewText
	}
	if utf8.RuneCountInString(reviewText) > 5000 {
		return nil, utils.ErrReviewTextTooLong
	}

	reply := s.generator.Reply(ctx, rating, reviewText)
	summary := s.generator.Summarize(ctx, rating, reviewText)
	actions := s.generator.RecommendActions(ctx, rating, reviewText)
	if reply.Degraded || summary.Degraded || actions.Degraded {
		s.log.Debug().
			Bool("reply", reply.Degraded).
			Bool("summary", summary.Degraded).
			Bool("actions", actions.Degraded).
			Msg("stored fallback text for degraded artifacts")
	}

	review := &db_models.Review{
		Rating:               rating,
		ReviewText:           reviewText,
		AIResponse:           reply.Text,
		AISummary:            summary.Text,
		AIRecommendedActions: actions.Text,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		s.log.Error().Err(err).Msg("failed to persist review")
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return review, nil
}

// ListReviews returns one page plus the full unfiltered count.
func (s *ReviewService) ListReviews(ctx context.Context, skip, limit int) ([]db_models.Review, int64, error) {
	reviews, err := s.reviewRepo.ListReviews(ctx, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	total, err := s.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return reviews, total, nil
}

// GetStats computes aggregates fresh on every call.
func (s *ReviewService) GetStats(ctx context.Context) (ReviewStats, error) {
	agg, err := s.reviewRepo.AggregateReviews(ctx)
	if err != nil {
		return ReviewStats{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return ReviewStats{
		TotalReviews:       agg.Total,
		AverageRating:      math.Round(agg.AverageRating*100) / 100,
		RatingDistribution: agg.Histogram,
	}, nil
}
