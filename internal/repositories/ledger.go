package repositories

import (
	"context"

	"ecoshop/internal/models"
)

// LedgerStore is the persistence port of the ledger engine. One snapshot
// blob per user id; a missing snapshot means "new user", never an error.
type LedgerStore interface {
	LoadSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error)
	SaveSnapshot(ctx context.Context, userID uint, snap *models.WalletSnapshot) error
	RecordTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}
