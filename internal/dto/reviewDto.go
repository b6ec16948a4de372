package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateReviewDTO for creating or updating a review
type CreateReviewDTO struct {
	ReviewText string `json:"review_text" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=10"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title,omitempty"`
	ReviewText string    `json:"review_text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		Username:   review.User.Username,
		MovieID:    review.MovieID,
		MovieTitle: review.Movie.Title,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedReviewResponse creates a paginated review response
func NewPaginatedReviewResponse(data []ReviewResponse, total, page, pageSize int) *PaginatedReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
