package repositories

import (
	"context"
	"fmt"

	"ecoshop/internal/models"

	"gorm.io/gorm"
)

// PayoutCardRepository stores tokenized VND payout destinations.
type PayoutCardRepository interface {
	Create(ctx context.Context, card *models.PayoutCard) error
	GetByID(ctx context.Context, id uint) (*models.PayoutCard, error)
	ListByUser(ctx context.Context, userID uint) ([]models.PayoutCard, error)
	Update(ctx context.Context, card *models.PayoutCard) error
}

type payoutCardRepository struct {
	db *gorm.DB
}

func NewPayoutCardRepository(db *gorm.DB) PayoutCardRepository {
	return &payoutCardRepository{db: db}
}

func (r *payoutCardRepository) Create(ctx context.Context, card *models.PayoutCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create payout card: %w", err)
	}
	return nil
}

func (r *payoutCardRepository) GetByID(ctx context.Context, id uint) (*models.PayoutCard, error) {
	var card models.PayoutCard
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get payout card: %w", err)
	}
	return &card, nil
}

func (r *payoutCardRepository) ListByUser(ctx context.Context, userID uint) ([]models.PayoutCard, error) {
	var cards []models.PayoutCard
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payout cards: %w", err)
	}
	return cards, nil
}

func (r *payoutCardRepository) Update(ctx context.Context, card *models.PayoutCard) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return fmt.Errorf("failed to update payout card: %w", err)
	}
	return nil
}
