package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/shared"
)

type PlatformService interface {
	GetAll(ctx context.Context) ([]models.Platform, error)
	GetByID(ctx context.Context, id int64) (*models.Platform, error)
	Create(ctx context.Context, p *models.Platform) error
	Update(ctx context.Context, id int64, p *models.Platform) error
	Delete(ctx context.Context, id int64) error
}

type platformService struct {
	platformRepo repository.PlatformRepository
}

func NewPlatformService(platformRepo repository.PlatformRepository) PlatformService {
	return &platformService{platformRepo: platformRepo}
}

func (s *platformService) GetAll(ctx context.Context) ([]models.Platform, error) {
	return s.platformRepo.GetAll(ctx)
}

func (s *platformService) GetByID(ctx context.Context, id int64) (*models.Platform, error) {
	return s.platformRepo.GetByID(ctx, id)
}

func (s *platformService) Create(ctx context.Context, p *models.Platform) error {
	if err := s.validate(ctx, p, 0); err != nil {
		return err
	}
	return s.platformRepo.Create(ctx, p)
}

func (s *platformService) Update(ctx context.Context, id int64, p *models.Platform) error {
	existing, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validate(ctx, p, existing.ID); err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	return s.platformRepo.Update(ctx, id, p)
}

func (s *platformService) Delete(ctx context.Context, id int64) error {
	return s.platformRepo.Delete(ctx, id)
}

// validate runs every rule and reports all failures at once. excludeID
// lets an update keep its own name.
func (s *platformService) validate(ctx context.Context, p *models.Platform, excludeID int64) error {
	verr := shared.ValidationErrors{}

	if len(p.Name) < 2 || len(p.Name) > 100 {
		verr.Add("name", "Name must be between 2 and 100 characters")
	} else {
		exists, err := s.platformRepo.ExistsByName(ctx, p.Name, excludeID)
		if err != nil {
			return err
		}
		if exists {
			verr.Add("name", "Name '"+p.Name+"' already exists")
		}
	}

	if p.Website != "" && !strings.HasPrefix(p.Website, "http") {
		verr.Add("website", "Website must start with http or https")
	}

	if len(verr) > 0 {
		return verr
	}
	return nil
}
