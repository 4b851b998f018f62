package ledger

import (
	"context"
	"time"

	"ecoshop/internal/models"
)

// StakeRequest describes a new staked position.
type StakeRequest struct {
	Amount        float64
	Kind          string // models.InvestmentKindVault or models.InvestmentKindProduct
	Name          string
	APR           float64
	DurationLabel string
	// LockDays is the resolved lock period; zero means flexible.
	LockDays int
}

// BatchResult reports a recycling batch settlement.
type BatchResult struct {
	Processed int     `json:"processed"`
	Credited  float64 `json:"credited"`
}

// SnapshotCache caches the per-user ledger snapshot.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error)
	SetSnapshot(ctx context.Context, userID uint, snap *models.WalletSnapshot) error
	InvalidateSnapshot(ctx context.Context, userID uint) error
}

// NoopSnapshotCache is used where no cache is wired (tests, seed tooling).
type NoopSnapshotCache struct{}

func (NoopSnapshotCache) GetSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error) {
	return nil, ErrCacheMiss
}

func (NoopSnapshotCache) SetSnapshot(ctx context.Context, userID uint, snap *models.WalletSnapshot) error {
	return nil
}

func (NoopSnapshotCache) InvalidateSnapshot(ctx context.Context, userID uint) error {
	return nil
}

// MetricsCollector collects operation metrics for ledger mutations.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordMutation(operation string, amount float64)
	RecordError(operation, errType string)
}
