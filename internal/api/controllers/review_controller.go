package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reviewecho/internal/models/request_models"
	"reviewecho/internal/models/response_models"
	"reviewecho/internal/services"
	"reviewecho/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Root godoc
// @Summary Service status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (rc *ReviewController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Feedback System API",
		"status":  "running",
	})
}

// SubmitReview godoc
// @Summary Submit a review and get an AI response
// @Accept json
// @Produce json
// @Param request body request_models.SubmitReviewRequest true "Review payload"
// @Success 201 {object} response_models.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/submit-review [post]
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	var req request_models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload: rating must be an integer between 1 and 5 and review_text must be 1-5000 characters"})
		return
	}

	review, err := rc.reviewService.SubmitReview(c.Request.Context(), req.Rating, req.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidRating),
			errors.Is(err, utils.ErrEmptyReviewText),
			errors.Is(err, utils.ErrReviewTextTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error processing review: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response_models.SubmissionResponse{
		Success:    true,
		Message:    "Review submitted successfully",
		ReviewID:   review.ID,
		AIResponse: review.AIResponse,
	})
}

// ListReviews godoc
// @Summary List reviews for the admin dashboard
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {object} response_models.ReviewsListResponse
// @Failure 500 {object} map[string]string
// @Router /api/reviews [get]
func (rc *ReviewController) ListReviews(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		limit = 100
	}

	reviews, total, err := rc.reviewService.ListReviews(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching reviews: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response_models.ReviewsListResponse{
		Reviews: response_models.FromReviews(reviews),
		Total:   total,
	})
}

// GetStats godoc
// @Summary Review statistics
// @Produce json
// @Success 200 {object} response_models.StatsResponse
// @Failure 500 {object} map[string]string
// @Router /api/reviews/stats [get]
func (rc *ReviewController) GetStats(c *gin.Context) {
	stats, err := rc.reviewService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response_models.StatsResponse{
		TotalReviews:       stats.TotalReviews,
		AverageRating:      stats.AverageRating,
		RatingDistribution: stats.RatingDistribution,
	})
}
