package response_models

import (
	"time"

	"reviewecho/internal/models/db_models"
)

// ReviewResponse is the read-only projection served to the admin
// dashboard. created_at goes over the wire as an RFC3339 string.
type ReviewResponse struct {
	ID                   uint   `json:"id"`
	Rating               int    `json:"rating"`
	ReviewText           string `json:"review_text"`
	AIResponse           string `json:"ai_response"`
	AISummary            string `json:"ai_summary"`
	AIRecommendedActions string `json:"ai_recommended_actions"`
	CreatedAt            string `json:"created_at"`
}

func FromReview(r db_models.Review) ReviewResponse {
	return ReviewResponse{
		ID:                   r.ID,
		Rating:               r.Rating,
		ReviewText:           r.ReviewText,
		AIResponse:           r.AIResponse,
		AISummary:            r.AISummary,
		AIRecommendedActions: r.AIRecommendedActions,
		CreatedAt:            r.CreatedAt.Format(time.RFC3339),
	}
}

func FromReviews(rows []db_models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromReview(r))
	}
	return out
}

type SubmissionResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ReviewID   uint   `json:"review_id"`
	AIResponse string `json:"ai_response"`
}

type ReviewsListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int64            `json:"total"`
}

type StatsResponse struct {
	TotalReviews       int64         `json:"total_reviews"`
	AverageRating      float64       `json:"average_rating"`
	RatingDistribution map[int]int64 `json:"rating_distribution"`
}
