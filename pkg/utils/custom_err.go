package utils

import "errors"

var (
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyReviewText   = errors.New("review text cannot be empty")
	ErrReviewTextTooLong = errors.New("review text cannot exceed 5000 characters")
	ErrDatabaseError     = errors.New("database error")
)
