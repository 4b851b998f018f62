package repositories

import (
	"context"
	"fmt"

	"ecoshop/internal/models"

	"gorm.io/gorm"
)

// SponsorRepository persists green-fund sponsor pools.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	GetByID(ctx context.Context, id uint) (*models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	List(ctx context.Context) ([]models.Sponsor, error)
}

type sponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) SponsorRepository {
	return &sponsorRepository{db: db}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	if err := r.db.WithContext(ctx).Create(sponsor).Error; err != nil {
		return fmt.Errorf("failed to create sponsor: %w", err)
	}
	return nil
}

func (r *sponsorRepository) GetByID(ctx context.Context, id uint) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := r.db.WithContext(ctx).First(&sponsor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor: %w", err)
	}
	return &sponsor, nil
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	if err := r.db.WithContext(ctx).Save(sponsor).Error; err != nil {
		return fmt.Errorf("failed to update sponsor: %w", err)
	}
	return nil
}

func (r *sponsorRepository) List(ctx context.Context) ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&sponsors).Error; err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}
