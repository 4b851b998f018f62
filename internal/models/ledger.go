package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Investment kinds
const (
	InvestmentKindVault   = "vault"
	InvestmentKindProduct = "product"
)

// NFT tiers minted for product-backed stakes
const (
	NFTTierGold   = "Gold"
	NFTTierSilver = "Silver"
)

// Recycle log statuses
const (
	RecycleStatusCollected = "collected"
	RecycleStatusProcessed = "processed"
)

// Investment is an active staked position. Immutable while active;
// removed from the snapshot on unstake.
type Investment struct {
	ID            string    `json:"id"`
	Kind          string    `json:"type"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	APR           float64   `json:"apr"`
	Date          time.Time `json:"date"`
	DurationLabel string    `json:"duration"`
	// LockDays is resolved from the duration label at stake time.
	// Zero means flexible (never locked).
	LockDays int `json:"lockDays"`
}

// PurchaseRecord is an append-only ledger history entry. EcoEarned may be
// capped below the true CO2 figure, and negative for penalty deliveries.
type PurchaseRecord struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	EcoEarned float64   `json:"ecoEarned"`
	CO2Saved  float64   `json:"co2Saved"`
	Date      time.Time `json:"date"`
}

// NFT is an achievement/certificate token.
type NFT struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Tier string    `json:"tier"`
	Date time.Time `json:"date"`
}

// RecycleLog is a shipper-collected waste entry. Weight and EcoEarned are
// immutable after creation; status transitions once, collected -> processed.
type RecycleLog struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	WasteType    string    `json:"wasteType"`
	Weight       float64   `json:"weight"`
	EcoEarned    float64   `json:"ecoEarned"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}

// WalletSnapshot is the full per-user ledger state, persisted as a single
// jsonb blob keyed by user id. Field names match the storefront's storage
// contract.
type WalletSnapshot struct {
	EcoBalance      float64          `json:"ecoBalance"`
	VndBalance      float64          `json:"vndBalance"`
	TotalCO2Saved   float64          `json:"totalCO2Saved"`
	Streak          int              `json:"streak"`
	PurchaseHistory []PurchaseRecord `json:"purchaseHistory"`
	Investments     []Investment     `json:"investments"`
	NFTs            []NFT            `json:"nfts"`
	RecycleLogs     []RecycleLog     `json:"recycleLogs"`
}

// NewWalletSnapshot returns the zeroed state used for first-seen users.
func NewWalletSnapshot() *WalletSnapshot {
	return &WalletSnapshot{
		PurchaseHistory: []PurchaseRecord{},
		Investments:     []Investment{},
		NFTs:            []NFT{},
		RecycleLogs:     []RecycleLog{},
	}
}

// StakedAmount is the sum of all active positions.
func (s *WalletSnapshot) StakedAmount() float64 {
	var total float64
	for _, inv := range s.Investments {
		total += inv.Amount
	}
	return total
}

// Value implements the driver.Valuer interface
func (s WalletSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *WalletSnapshot) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// LedgerSnapshot is the persistence row: one snapshot blob per user.
type LedgerSnapshot struct {
	ID        uint           `gorm:"primarykey"`
	UserID    uint           `gorm:"uniqueIndex;not null"`
	Data      WalletSnapshot `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
