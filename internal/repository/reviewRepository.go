package repository

import (
	"context"
	"errors"

	"moviehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAlreadyReviewed is returned when a user tries to review the same movie twice.
var ErrAlreadyReviewed = errors.New("you have already reviewed this movie")

type ReviewRepository interface {
	CreateWithAggregate(ctx context.Context, review *models.Review) error
	UpdateWithAggregate(ctx context.Context, review *models.Review) error
	DeleteWithAggregate(ctx context.Context, reviewID int64) error
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error)
	GetByUsername(ctx context.Context, username string) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateWithAggregate inserts the review and folds its rating into the
// movie's running average in one transaction. The movie row is locked for
// the duration so two concurrent reviews cannot both read the same
// review_count and lose an update.
func (r *reviewRepository) CreateWithAggregate(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&movie, review.MovieID).Error; err != nil {
			return err
		}

		// One review per (user, movie). Checked under the lock; the unique
		// index on (user_id, movie_id) is the backstop.
		var count int64
		if err := tx.Model(&models.Review{}).
			Where("user_id = ? AND movie_id = ?", review.UserID, review.MovieID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyReviewed
		}

		movie.ApplyNewRating(review.Rating)
		if err := tx.Model(&models.Movie{ID: movie.ID}).
			Updates(map[string]interface{}{
				"average_rating": movie.AverageRating,
				"review_count":   movie.ReviewCount,
			}).Error; err != nil {
			return err
		}

		return tx.Create(review).Error
	})
}

// UpdateWithAggregate saves an edited review and recounts the movie's
// aggregate from the live review set, so the stored mean never drifts from
// the ratings actually on record.
func (r *reviewRepository) UpdateWithAggregate(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&movie, review.MovieID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Review{}).
			Where("id = ?", review.ID).
			Updates(map[string]interface{}{
				"review_text": review.ReviewText,
				"rating":      review.Rating,
			}).Error; err != nil {
			return err
		}

		return recountAggregate(tx, &movie)
	})
}

// DeleteWithAggregate removes a review and recounts the aggregate.
func (r *reviewRepository) DeleteWithAggregate(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			return err
		}

		var movie models.Movie
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&movie, review.MovieID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Review{}, reviewID).Error; err != nil {
			return err
		}

		return recountAggregate(tx, &movie)
	})
}

// recountAggregate recomputes average_rating and review_count with SQL
// AVG/COUNT inside the caller's transaction.
func recountAggregate(tx *gorm.DB, movie *models.Movie) error {
	var agg struct {
		Average float64
		Total   int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as total").
		Where("movie_id = ?", movie.ID).
		Scan(&agg).Error; err != nil {
		return err
	}

	movie.SetAggregate(agg.Average, agg.Total)
	return tx.Model(&models.Movie{ID: movie.ID}).
		Updates(map[string]interface{}{
			"average_rating": movie.AverageRating,
			"review_count":   movie.ReviewCount,
		}).Error
}

// GetByID retrieves a review with its author and movie preloaded.
func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Movie").
		First(&review, reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByMovie retrieves a movie's reviews with pagination, optionally
// filtered to a single author's username.
func (r *reviewRepository) GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&models.Review{}).Where("movie_id = ?", movieID)
	if username != "" {
		countQuery = countQuery.Joins("JOIN users ON users.id = reviews.user_id").
			Where("users.username = ?", username)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if username != "" {
		listQuery = listQuery.Joins("JOIN users ON users.id = reviews.user_id").
			Where("users.username = ?", username)
	}

	offset := (page - 1) * pageSize
	if err := listQuery.
		Preload("User").
		Order("reviews.created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetByUsername retrieves every review a user has written, newest first.
func (r *reviewRepository) GetByUsername(ctx context.Context, username string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("users.username = ?", username).
		Preload("User").
		Preload("Movie").
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
