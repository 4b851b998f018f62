package repositories

import (
	"context"
	"fmt"

	"ecoshop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository returns the GORM-backed snapshot store.
func NewLedgerRepository(db *gorm.DB) LedgerStore {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) LoadSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error) {
	var row models.LedgerSnapshot
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.NewWalletSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return &row.Data, nil
}

func (r *ledgerRepository) SaveSnapshot(ctx context.Context, userID uint, snap *models.WalletSnapshot) error {
	row := models.LedgerSnapshot{
		UserID: userID,
		Data:   *snap,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *ledgerRepository) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	var history []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return history, nil
}
