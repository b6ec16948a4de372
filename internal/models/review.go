package models

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_movie"`
	MovieID    int64     `json:"movie_id" gorm:"not null;index;uniqueIndex:idx_reviews_user_movie"`
	ReviewText string    `json:"review_text" gorm:"not null;type:text"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 10"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
