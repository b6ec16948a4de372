package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type PlatformRepository interface {
	GetAll(ctx context.Context) ([]models.Platform, error)
	GetByID(ctx context.Context, id int64) (*models.Platform, error)
	Create(ctx context.Context, p *models.Platform) error
	Update(ctx context.Context, id int64, p *models.Platform) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) GetAll(ctx context.Context) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *platformRepository) GetByID(ctx context.Context, id int64) (*models.Platform, error) {
	var p models.Platform
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *platformRepository) Create(ctx context.Context, p *models.Platform) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create platform: %w", err)
	}
	return nil
}

func (r *platformRepository) Update(ctx context.Context, id int64, p *models.Platform) error {
	// ensure ID set for Save
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	return nil
}

// Delete removes the platform; movies referencing it go with it through the
// ON DELETE CASCADE constraint, and their reviews in turn.
func (r *platformRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Platform{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete platform: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByName checks name uniqueness, case-sensitive as stored.
// excludeID skips the platform being updated so it can keep its own name.
func (r *platformRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Platform{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
