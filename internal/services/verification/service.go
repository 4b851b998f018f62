// Package verification implements the seller-side escrow simulation:
// revenue locked per sale, a one-way pass/fail audit verdict, and the
// sponsor green fund.
package verification

import (
	"context"
	"fmt"
	"time"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/repositories"
)

// EscrowShare is the fraction of each sale price withheld pending audit.
const EscrowShare = 0.1

// Verdict payout splits.
const (
	PassReleaseShare = 0.99
	PassFeeShare     = 0.01
	FailRefundShare  = 0.9
	FailPenaltyShare = 0.1
)

// CreateProductInput describes a new seller product.
type CreateProductInput struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	MaterialWeight float64 `json:"material_weight"`
	CO2Saved       float64 `json:"co2_saved"`
}

// VerdictResult reports the settlement of a verification decision.
type VerdictResult struct {
	Product     *models.BusinessProduct `json:"product"`
	NetRevenue  float64                 `json:"netRevenue,omitempty"`
	PlatformFee float64                 `json:"platformFee,omitempty"`
	Refunded    float64                 `json:"refunded,omitempty"`
	Penalty     float64                 `json:"penalty,omitempty"`
}

// Service drives the business-product state machine and the green fund.
type Service interface {
	CreateProduct(ctx context.Context, ownerID uint, input CreateProductInput) (*models.BusinessProduct, error)
	ListProducts(ctx context.Context, ownerID uint) ([]models.BusinessProduct, error)
	ListPending(ctx context.Context) ([]models.BusinessProduct, error)
	RecordSale(ctx context.Context, productID uint) (*models.BusinessProduct, error)
	Verify(ctx context.Context, productID uint, verifierName string, pass bool, failReason string) (*VerdictResult, error)
	LockedPoolTotal(ctx context.Context) (float64, error)
	CarbonCreditsTotal(ctx context.Context) (float64, error)

	DisburseReward(ctx context.Context, beneficiaryID uint, amount float64, purpose string) (bool, error)
	FundSponsor(ctx context.Context, sponsorID uint, amount float64) (*models.Sponsor, error)
	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
}

type service struct {
	products repositories.BusinessProductRepository
	sponsors repositories.SponsorRepository
	audit    repositories.LedgerStore
}

// NewService wires the verification rules over the repositories. The
// ledger store is used for audit rows only; verdicts never credit wallets.
func NewService(
	products repositories.BusinessProductRepository,
	sponsors repositories.SponsorRepository,
	audit repositories.LedgerStore,
) Service {
	if products == nil {
		panic("business product repository is required")
	}
	if sponsors == nil {
		panic("sponsor repository is required")
	}
	return &service{
		products: products,
		sponsors: sponsors,
		audit:    audit,
	}
}

func (s *service) CreateProduct(ctx context.Context, ownerID uint, input CreateProductInput) (*models.BusinessProduct, error) {
	if input.Price <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	product := &models.BusinessProduct{
		OwnerID:        ownerID,
		Name:           input.Name,
		Price:          input.Price,
		MaterialWeight: input.MaterialWeight,
		CO2Saved:       input.CO2Saved,
		Status:         models.BusinessStatusActive,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, ownerID uint) ([]models.BusinessProduct, error) {
	return s.products.ListByOwner(ctx, ownerID)
}

func (s *service) ListPending(ctx context.Context) ([]models.BusinessProduct, error) {
	return s.products.ListByStatus(ctx, models.BusinessStatusPending)
}

// RecordSale accrues escrow for the sale and moves a fresh product into
// pending verification on its first sale. Products with a final verdict
// no longer accrue escrow; a failed product cannot sell at all.
func (s *service) RecordSale(ctx context.Context, productID uint) (*models.BusinessProduct, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Status == models.BusinessStatusVerifiedFail {
		return nil, domain.ErrAlreadyVerified
	}

	product.Sales++
	if !product.Final() {
		product.LockedRevenue += product.Price * EscrowShare
		if product.Status == models.BusinessStatusActive {
			product.Status = models.BusinessStatusPending
		}
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Verify applies the terminal pass/fail verdict. Settlement is recorded as
// audit rows; no wallet balance is mutated.
func (s *service) Verify(ctx context.Context, productID uint, verifierName string, pass bool, failReason string) (*VerdictResult, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Final() {
		return nil, domain.ErrAlreadyVerified
	}
	if product.Status != models.BusinessStatusPending {
		return nil, domain.ErrNotPendingVerification
	}

	now := time.Now().UTC()
	product.VerifierName = verifierName
	product.VerifiedAt = &now

	result := &VerdictResult{Product: product}

	if pass {
		product.Status = models.BusinessStatusVerifiedPass
		result.NetRevenue = product.LockedRevenue * PassReleaseShare
		result.PlatformFee = product.LockedRevenue * PassFeeShare

		s.recordAudit(ctx, &models.Transaction{
			UserID: product.OwnerID,
			Type:   models.TransactionTypeEscrowRelease,
			Amount: result.NetRevenue,
			Note:   fmt.Sprintf("Escrow released for %s", product.Name),
			Metadata: models.NewJSON(map[string]interface{}{
				"product_id":   product.ID,
				"platform_fee": result.PlatformFee,
				"verifier":     verifierName,
			}),
		})
	} else {
		product.Status = models.BusinessStatusVerifiedFail
		product.FailReason = failReason
		result.Refunded = product.LockedRevenue * FailRefundShare
		result.Penalty = product.LockedRevenue * FailPenaltyShare

		s.recordAudit(ctx, &models.Transaction{
			UserID: product.OwnerID,
			Type:   models.TransactionTypeEscrowRefund,
			Amount: result.Refunded,
			Note:   fmt.Sprintf("Escrow refunded for %s: %s", product.Name, failReason),
			Metadata: models.NewJSON(map[string]interface{}{
				"product_id": product.ID,
				"penalty":    result.Penalty,
				"verifier":   verifierName,
			}),
		})
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return result, nil
}

// LockedPoolTotal sums escrowed revenue across products still awaiting a
// verdict.
func (s *service) LockedPoolTotal(ctx context.Context) (float64, error) {
	products, err := s.products.ListByStatus(ctx, models.BusinessStatusActive, models.BusinessStatusPending)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range products {
		total += p.LockedRevenue
	}
	return total, nil
}

// CarbonCreditsTotal sums co2Saved * sales across all products.
func (s *service) CarbonCreditsTotal(ctx context.Context) (float64, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range products {
		total += p.CO2Saved * float64(p.Sales)
	}
	return total, nil
}

func (s *service) recordAudit(ctx context.Context, txn *models.Transaction) {
	if s.audit == nil {
		return
	}
	_ = s.audit.RecordTransaction(ctx, txn)
}
