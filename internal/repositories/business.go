package repositories

import (
	"context"
	"fmt"

	"ecoshop/internal/models"

	"gorm.io/gorm"
)

// BusinessProductRepository persists the seller-side escrow aggregate.
type BusinessProductRepository interface {
	Create(ctx context.Context, product *models.BusinessProduct) error
	GetByID(ctx context.Context, id uint) (*models.BusinessProduct, error)
	Update(ctx context.Context, product *models.BusinessProduct) error
	ListByOwner(ctx context.Context, ownerID uint) ([]models.BusinessProduct, error)
	ListByStatus(ctx context.Context, statuses ...string) ([]models.BusinessProduct, error)
	List(ctx context.Context) ([]models.BusinessProduct, error)
}

type businessProductRepository struct {
	db *gorm.DB
}

func NewBusinessProductRepository(db *gorm.DB) BusinessProductRepository {
	return &businessProductRepository{db: db}
}

func (r *businessProductRepository) Create(ctx context.Context, product *models.BusinessProduct) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create business product: %w", err)
	}
	return nil
}

func (r *businessProductRepository) GetByID(ctx context.Context, id uint) (*models.BusinessProduct, error) {
	var product models.BusinessProduct
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get business product: %w", err)
	}
	return &product, nil
}

func (r *businessProductRepository) Update(ctx context.Context, product *models.BusinessProduct) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update business product: %w", err)
	}
	return nil
}

func (r *businessProductRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.BusinessProduct, error) {
	var products []models.BusinessProduct
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list business products: %w", err)
	}
	return products, nil
}

func (r *businessProductRepository) ListByStatus(ctx context.Context, statuses ...string) ([]models.BusinessProduct, error) {
	var products []models.BusinessProduct
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list business products by status: %w", err)
	}
	return products, nil
}

func (r *businessProductRepository) List(ctx context.Context) ([]models.BusinessProduct, error) {
	var products []models.BusinessProduct
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list business products: %w", err)
	}
	return products, nil
}
