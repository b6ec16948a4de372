package service

import (
	"context"
	"errors"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/shared"
)

// ErrNotReviewOwner is returned when someone other than the author tries to
// modify a review.
var ErrNotReviewOwner = errors.New("only the review's author may modify it")

type ReviewService interface {
	CreateForMovie(ctx context.Context, userID string, movieID int64, reviewText string, rating int) (*models.Review, error)
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error)
	GetByUsername(ctx context.Context, username string) ([]models.Review, error)
	Update(ctx context.Context, userID string, reviewID int64, reviewText string, rating int) (*models.Review, error)
	Delete(ctx context.Context, userID string, reviewID int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
	}
}

// CreateForMovie validates the payload and hands it to the repository,
// which inserts the review and updates the movie's running average in one
// locked transaction. The duplicate check also happens under that lock.
func (s *reviewService) CreateForMovie(ctx context.Context, userID string, movieID int64, reviewText string, rating int) (*models.Review, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	if err := validateReview(reviewText, rating); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:     userID,
		MovieID:    movieID,
		ReviewText: reviewText,
		Rating:     rating,
	}
	if err := s.reviewRepo.CreateWithAggregate(ctx, review); err != nil {
		return nil, err
	}

	// reload with author and movie attached
	return s.reviewRepo.GetByID(ctx, review.ID)
}

func (s *reviewService) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, reviewID)
}

func (s *reviewService) GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.GetByMovie(ctx, movieID, username, page, pageSize)
}

func (s *reviewService) GetByUsername(ctx context.Context, username string) ([]models.Review, error) {
	return s.reviewRepo.GetByUsername(ctx, username)
}

// Update edits a review (author only) and recounts the movie aggregate so
// the stored mean tracks the edited rating.
func (s *reviewService) Update(ctx context.Context, userID string, reviewID int64, reviewText string, rating int) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	if err := validateReview(reviewText, rating); err != nil {
		return nil, err
	}

	review.ReviewText = reviewText
	review.Rating = rating
	if err := s.reviewRepo.UpdateWithAggregate(ctx, review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByID(ctx, reviewID)
}

// Delete removes a review (author only) and recounts the movie aggregate.
func (s *reviewService) Delete(ctx context.Context, userID string, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return ErrNotReviewOwner
	}

	return s.reviewRepo.DeleteWithAggregate(ctx, reviewID)
}

func validateReview(reviewText string, rating int) error {
	verr := shared.ValidationErrors{}

	if strings.TrimSpace(reviewText) == "" {
		verr.Add("review_text", "Review text is required")
	}
	if rating < 1 || rating > 10 {
		verr.Add("rating", "Rating must be between 1 and 10")
	}

	if len(verr) > 0 {
		return verr
	}
	return nil
}
