package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypePurchase        = "purchase"
	TransactionTypeDeliveryAdjust  = "delivery_adjustment"
	TransactionTypeStake           = "stake"
	TransactionTypeUnstake         = "unstake"
	TransactionTypeSwap            = "swap"
	TransactionTypeWithdrawal      = "withdrawal"
	TransactionTypeRecycleSettle   = "recycle_settlement"
	TransactionTypeEscrowRelease   = "escrow_release"
	TransactionTypeEscrowRefund    = "escrow_refund"
	TransactionTypeSponsorDisburse = "sponsor_disbursement"
	TransactionTypeSponsorFund     = "sponsor_fund"
)

// Transaction is the audit row written alongside every ledger mutation.
// Column layout follows the storefront's transactions contract
// (user_id, greenpoints_earned, co2_saved, amount, note, created_at).
type Transaction struct {
	ID                uint    `gorm:"primarykey"`
	UserID            uint    `gorm:"index;not null"`
	Type              string  `gorm:"not null"`
	Amount            float64 `gorm:"not null"`
	GreenPointsEarned float64 `gorm:"default:0"`
	CO2Saved          float64 `gorm:"default:0"`
	Note              string
	Metadata          JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time
}
