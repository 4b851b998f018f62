package models

import "time"

// BusinessProduct statuses. Transitions are one-way:
// active -> pending_verification -> verified_pass | verified_fail.
const (
	BusinessStatusActive       = "active"
	BusinessStatusPending      = "pending_verification"
	BusinessStatusVerifiedPass = "verified_pass"
	BusinessStatusVerifiedFail = "verified_fail"
)

// BusinessProduct is the seller-side aggregate carrying escrowed revenue
// pending an environmental-impact audit.
type BusinessProduct struct {
	ID             uint    `gorm:"primarykey"`
	OwnerID        uint    `gorm:"index;not null"`
	Name           string  `gorm:"not null"`
	Price          float64 `gorm:"not null"`
	MaterialWeight float64 `gorm:"default:0"`
	CO2Saved       float64 `gorm:"column:co2_saved;default:0"`
	Status         string  `gorm:"default:'active'"`
	Sales          int     `gorm:"default:0"`
	LockedRevenue  float64 `gorm:"default:0"`
	VerifierName   string
	FailReason     string
	VerifiedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Final reports whether the verification verdict is terminal.
func (p *BusinessProduct) Final() bool {
	return p.Status == BusinessStatusVerifiedPass || p.Status == BusinessStatusVerifiedFail
}

// Sponsor is a green-fund capital pool that can be drawn down to
// subsidize rewards. RemainingBalance never exceeds TotalFunded and
// never goes negative.
type Sponsor struct {
	ID               uint    `gorm:"primarykey"`
	Name             string  `gorm:"uniqueIndex;not null"`
	TotalFunded      float64 `gorm:"not null"`
	RemainingBalance float64 `gorm:"not null"`
	FocusArea        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
