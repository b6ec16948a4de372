package models

import (
	"math"
	"time"
)

type Movie struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null;size:100"`
	Description   string    `json:"description" gorm:"not null;type:text"`
	ReleaseDate   time.Time `json:"release_date" gorm:"type:date;not null"`
	Active        bool      `json:"active" gorm:"not null;default:true"`
	PlatformID    *int64    `json:"platform_id,omitempty" gorm:"index"`
	AverageRating float64   `json:"average_rating" gorm:"type:decimal(4,2);not null;default:0"`
	ReviewCount   int64     `json:"review_count" gorm:"not null;default:0;check:review_count >= 0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	// associations
	Platform *Platform `json:"platform,omitempty" gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE;"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "watchlist"
}

// ApplyNewRating folds one more rating into the running average without
// rescanning existing reviews. Must run while the movie row is locked so
// concurrent reviews cannot both read the same review_count.
func (m *Movie) ApplyNewRating(rating int) {
	if m.ReviewCount == 0 {
		m.AverageRating = float64(rating)
	} else {
		m.AverageRating = (m.AverageRating*float64(m.ReviewCount) + float64(rating)) / float64(m.ReviewCount+1)
	}
	m.AverageRating = roundRating(m.AverageRating)
	m.ReviewCount++
}

// SetAggregate overwrites the aggregate fields from a full recount,
// used after a review is edited or deleted.
func (m *Movie) SetAggregate(average float64, count int64) {
	if count == 0 {
		m.AverageRating = 0
	} else {
		m.AverageRating = roundRating(average)
	}
	m.ReviewCount = count
}

// roundRating keeps the stored average at 2 decimal places, matching the
// decimal(4,2) column and capping float drift across many updates.
func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
