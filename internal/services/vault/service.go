package vault

import (
	"context"
	"time"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/services/ledger"
)

// Service exposes the staking/vault operations.
type Service interface {
	Packages() []Package
	Stake(ctx context.Context, userID uint, packageID string, amount float64) (*models.Investment, error)
	Unstake(ctx context.Context, userID uint, investmentID string) (float64, error)
	LockDetails(ctx context.Context, userID uint, investmentID string) (*LockDetails, error)
	Reinvest(ctx context.Context, userID uint, tierID string, amount float64) (*models.Investment, error)
}

type service struct {
	ledger ledger.Service
	now    func() time.Time
}

// NewService wires the vault rules over the ledger engine.
func NewService(ledgerService ledger.Service) Service {
	if ledgerService == nil {
		panic("ledger service is required")
	}
	return &service{
		ledger: ledgerService,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Packages() []Package {
	return Catalog()
}

// Stake enforces the package minimum (the engine does not) and resolves
// the structured lock period before delegating to the engine.
func (s *service) Stake(ctx context.Context, userID uint, packageID string, amount float64) (*models.Investment, error) {
	pkg, ok := FindPackage(packageID)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	if amount < pkg.MinAmount {
		return nil, domain.ErrBelowMinimum
	}

	return s.ledger.StakeEco(ctx, userID, ledger.StakeRequest{
		Amount:        amount,
		Kind:          models.InvestmentKindVault,
		Name:          pkg.Name,
		APR:           pkg.APRPercent,
		DurationLabel: pkg.DurationLabel,
		LockDays:      LockDaysForLabel(pkg.DurationLabel),
	})
}

// Unstake applies the early-withdrawal rules: flexible positions pay the
// fixed fee, fixed-term positions pay nothing but must be past maturity.
func (s *service) Unstake(ctx context.Context, userID uint, investmentID string) (float64, error) {
	inv, err := s.findInvestment(ctx, userID, investmentID)
	if err != nil {
		return 0, err
	}

	feePercent := 0.0
	if inv.LockDays <= 0 {
		feePercent = FlexibleUnstakeFeePercent
	} else if ComputeLock(*inv, s.now()).Locked {
		return 0, domain.ErrInvestmentLocked
	}

	return s.ledger.UnstakeEco(ctx, userID, investmentID, feePercent)
}

func (s *service) LockDetails(ctx context.Context, userID uint, investmentID string) (*LockDetails, error) {
	inv, err := s.findInvestment(ctx, userID, investmentID)
	if err != nil {
		return nil, err
	}

	details := ComputeLock(*inv, s.now())
	return &details, nil
}

// Reinvest stakes a checkout reward at one of the fixed offer tiers.
func (s *service) Reinvest(ctx context.Context, userID uint, tierID string, amount float64) (*models.Investment, error) {
	tier, ok := FindReinvestTier(tierID)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}

	return s.ledger.StakeEco(ctx, userID, ledger.StakeRequest{
		Amount:        amount,
		Kind:          models.InvestmentKindVault,
		Name:          tier.Name,
		APR:           tier.APRPercent,
		DurationLabel: tier.DurationLabel,
		LockDays:      LockDaysForLabel(tier.DurationLabel),
	})
}

func (s *service) findInvestment(ctx context.Context, userID uint, investmentID string) (*models.Investment, error) {
	snap, err := s.ledger.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range snap.Investments {
		if snap.Investments[i].ID == investmentID {
			return &snap.Investments[i], nil
		}
	}
	return nil, domain.ErrInvestmentNotFound
}
