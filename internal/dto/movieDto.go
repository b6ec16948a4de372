package dto

import (
	"fmt"
	"time"

	"moviehub/internal/models"
)

const dateLayout = "2006-01-02"

// MovieRequest is the payload for creating or fully updating a movie.
// Rating is accepted for backward compatibility with older clients but
// never feeds the aggregate, which is owned by the review workflow.
type MovieRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"required,min=10"`
	ReleaseDate string   `json:"release_date" binding:"required"`
	Active      *bool    `json:"active"`
	PlatformID  *int64   `json:"platform_id"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
}

// ToModel converts the request into a model, parsing the release date.
func (in *MovieRequest) ToModel() (models.Movie, error) {
	releaseDate, err := time.ParseInLocation(dateLayout, in.ReleaseDate, time.UTC)
	if err != nil {
		return models.Movie{}, fmt.Errorf("release_date must be in YYYY-MM-DD format")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return models.Movie{
		Title:       in.Title,
		Description: in.Description,
		ReleaseDate: releaseDate,
		Active:      active,
		PlatformID:  in.PlatformID,
	}, nil
}

// MovieResponse mirrors the movie entity on the wire.
type MovieResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ReleaseDate   string  `json:"release_date"`
	Active        bool    `json:"active"`
	PlatformID    *int64  `json:"platform_id,omitempty"`
	Platform      string  `json:"platform,omitempty"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
	CreatedAt     string  `json:"created_at"`
}

// FromModelToMovieResponse converts a Movie model to its response DTO
func FromModelToMovieResponse(m models.Movie) MovieResponse {
	resp := MovieResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ReleaseDate:   m.ReleaseDate.Format(dateLayout),
		Active:        m.Active,
		PlatformID:    m.PlatformID,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
	if m.Platform != nil {
		resp.Platform = m.Platform.Name
	}
	return resp
}
