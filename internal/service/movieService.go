package service

import (
	"context"
	"errors"
	"time"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/shared"

	"gorm.io/gorm"
)

type MovieService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, id int64, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query, ordering string) ([]models.Movie, error)
}

type movieService struct {
	movieRepo    repository.MovieRepository
	platformRepo repository.PlatformRepository
}

func NewMovieService(movieRepo repository.MovieRepository, platformRepo repository.PlatformRepository) MovieService {
	return &movieService{
		movieRepo:    movieRepo,
		platformRepo: platformRepo,
	}
}

func (s *movieService) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	return s.movieRepo.GetAll(ctx, page, pageSize)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

func (s *movieService) Create(ctx context.Context, m *models.Movie) error {
	if err := s.validate(ctx, m); err != nil {
		return err
	}
	// aggregates always start empty, whatever the client sent
	m.AverageRating = 0
	m.ReviewCount = 0
	return s.movieRepo.Create(ctx, m)
}

func (s *movieService) Update(ctx context.Context, id int64, m *models.Movie) error {
	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.validate(ctx, m); err != nil {
		return err
	}
	return s.movieRepo.Update(ctx, id, m)
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	return s.movieRepo.Delete(ctx, id)
}

func (s *movieService) Search(ctx context.Context, query, ordering string) ([]models.Movie, error) {
	return s.movieRepo.Search(ctx, query, ordering)
}

// validate runs every movie rule, collecting all failures rather than
// stopping at the first.
func (s *movieService) validate(ctx context.Context, m *models.Movie) error {
	verr := shared.ValidationErrors{}

	if len(m.Title) < 2 || len(m.Title) > 100 {
		verr.Add("title", "Title must be between 2 and 100 characters")
	}
	if len(m.Description) < 10 {
		verr.Add("description", "Description must be at least 10 characters")
	}
	if m.Title != "" && m.Title == m.Description {
		verr.Add("title", "Title and description cannot be the same")
	}

	// dates are compared in UTC, truncated to the day
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if m.ReleaseDate.After(today) {
		verr.Add("release_date", "Release date cannot be in the future")
	}

	if m.PlatformID != nil {
		if _, err := s.platformRepo.GetByID(ctx, *m.PlatformID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				verr.Add("platform_id", "Streaming platform not found")
			} else {
				return err
			}
		}
	}

	if len(verr) > 0 {
		return verr
	}
	return nil
}
