// Package vault layers staking-package rules on top of the ledger engine:
// a fixed package catalog, minimum amounts, lock-period computation and
// early-withdrawal fees.
package vault

// Package is a staking offer. APR is display-only: credited amounts on
// unstake are principal minus fee, never principal plus interest.
type Package struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	APRPercent    float64 `json:"aprPercent"`
	DurationLabel string  `json:"durationLabel"`
	MinAmount     float64 `json:"minAmount"`
}

// FlexibleUnstakeFeePercent is the fee applied to flexible-package
// unstakes. Fixed-term packages pay no fee but are locked until maturity.
const FlexibleUnstakeFeePercent = 0.1

var packages = []Package{
	{ID: "vault_flex", Name: "Ví Linh Hoạt", APRPercent: 5.5, DurationLabel: "Linh hoạt", MinAmount: 10},
	{ID: "vault_1m", Name: "Kỳ Hạn 1 Tháng", APRPercent: 8, DurationLabel: "1 Tháng", MinAmount: 10},
	{ID: "vault_1y", Name: "Kỳ Hạn 1 Năm", APRPercent: 18, DurationLabel: "1 Năm", MinAmount: 100},
	{ID: "vault_2y", Name: "Kỳ Hạn 2 Năm", APRPercent: 25, DurationLabel: "2 Năm", MinAmount: 200},
	{ID: "vault_4y", Name: "Kỳ Hạn 4 Năm", APRPercent: 40, DurationLabel: "4 Năm", MinAmount: 500},
}

// Catalog returns the fixed staking package list.
func Catalog() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}

// FindPackage looks up a package by id.
func FindPackage(id string) (Package, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// ReinvestTier is a post-checkout reinvestment offer.
type ReinvestTier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	APRPercent    float64 `json:"aprPercent"`
	DurationLabel string  `json:"durationLabel"`
}

var reinvestTiers = []ReinvestTier{
	{ID: "eco_6m", Name: "Tái Đầu Tư 6 Tháng", APRPercent: 12, DurationLabel: "6 Tháng"},
	{ID: "eco_1y", Name: "Tái Đầu Tư 1 Năm", APRPercent: 25, DurationLabel: "1 Năm"},
	{ID: "eco_2y", Name: "Tái Đầu Tư 2 Năm", APRPercent: 50, DurationLabel: "2 Năm"},
}

// ReinvestTiers returns the fixed reinvestment offers.
func ReinvestTiers() []ReinvestTier {
	out := make([]ReinvestTier, len(reinvestTiers))
	copy(out, reinvestTiers)
	return out
}

// FindReinvestTier looks up a reinvestment tier by id.
func FindReinvestTier(id string) (ReinvestTier, bool) {
	for _, t := range reinvestTiers {
		if t.ID == id {
			return t, true
		}
	}
	return ReinvestTier{}, false
}
