package dto

import (
	"time"

	"moviehub/internal/models"
)

// PlatformRequest is the payload for creating or updating a streaming platform.
type PlatformRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	About   string `json:"about"`
	Website string `json:"website"`
}

func (in *PlatformRequest) ToModel() models.Platform {
	return models.Platform{
		Name:    in.Name,
		About:   in.About,
		Website: in.Website,
	}
}

// PlatformResponse mirrors the platform entity on the wire.
type PlatformResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	About     string `json:"about,omitempty"`
	Website   string `json:"website,omitempty"`
	CreatedAt string `json:"created_at"`
}

// FromModelToPlatformResponse converts a Platform model to its response DTO
func FromModelToPlatformResponse(p models.Platform) PlatformResponse {
	return PlatformResponse{
		ID:        p.ID,
		Name:      p.Name,
		About:     p.About,
		Website:   p.Website,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
