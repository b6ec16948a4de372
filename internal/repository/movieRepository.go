package repository

import (
	"context"
	"fmt"
	"strings"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, id int64, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query, ordering string) ([]models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	// Count total records
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	// Newest-created-first is the listing contract
	if err := r.db.WithContext(ctx).
		Preload("Platform").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).Preload("Platform").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM will populate m.ID and m.CreatedAt
	return nil
}

// Update saves the provided fields. Aggregate columns and created_at are
// never touched here, only the review path may change them.
func (r *movieRepository) Update(ctx context.Context, id int64, m *models.Movie) error {
	m.ID = id
	if err := r.db.WithContext(ctx).Model(&models.Movie{ID: id}).
		Updates(map[string]interface{}{
			"title":        m.Title,
			"description":  m.Description,
			"release_date": m.ReleaseDate,
			"active":       m.Active,
			"platform_id":  m.PlatformID,
		}).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search performs case-insensitive partial match on title plus exact match
// on the owning platform's name. Ordering accepts "average_rating" or
// "-average_rating"; anything else falls back to newest first.
func (r *movieRepository) Search(ctx context.Context, query, ordering string) ([]models.Movie, error) {
	var list []models.Movie

	db := r.db.WithContext(ctx).Model(&models.Movie{}).
		Joins("LEFT JOIN streaming_platforms ON streaming_platforms.id = watchlist.platform_id")

	q := strings.TrimSpace(query)
	if q != "" {
		db = db.Where("watchlist.title ILIKE ? OR streaming_platforms.name = ?", "%"+q+"%", q)
	}

	switch ordering {
	case "average_rating":
		db = db.Order("watchlist.average_rating asc")
	case "-average_rating":
		db = db.Order("watchlist.average_rating desc")
	default:
		db = db.Order("watchlist.created_at desc")
	}

	if err := db.Preload("Platform").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return list, nil
}
