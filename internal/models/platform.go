package models

import "time"

type Platform struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	About     string    `json:"about,omitempty" gorm:"type:text"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// association
	Movies []Movie `json:"movies,omitempty" gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE;"`
}

func (Platform) TableName() string {
	return "streaming_platforms"
}
