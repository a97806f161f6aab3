package db_models

import (
	"time"
)

// Review is the single persisted entity: a customer submission plus the
// three AI-derived artifacts. Rows are insert-only; nothing updates or
// deletes a review after the submission pipeline writes it.
type Review struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement"`
	Rating               int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	ReviewText           string    `gorm:"type:text;not null"`
	AIResponse           string    `gorm:"type:text"`
	AISummary            string    `gorm:"type:text"`
	AIRecommendedActions string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
