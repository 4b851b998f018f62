package checkout

import (
	"context"
	"fmt"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/repositories"
	"ecoshop/internal/services/ledger"
	"ecoshop/internal/services/vault"
)

// Item is a checkout request line.
type Item struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Result is returned to the caller after the order's rewards are recorded.
type Result struct {
	EarnedEco      float64              `json:"earnedEco"`
	SavedCO2       float64              `json:"savedCO2"`
	ProductEco     float64              `json:"productEco"`
	ProductCO2     float64              `json:"productCO2"`
	Delivery       Adjustment           `json:"delivery"`
	OfferReinvest  bool                 `json:"offerReinvest"`
	ReinvestOffers []vault.ReinvestTier `json:"reinvestOffers,omitempty"`
}

// Service records checkout rewards on the ledger.
type Service interface {
	Checkout(ctx context.Context, userID uint, items []Item, method DeliveryMethod) (*Result, error)
}

type service struct {
	products repositories.ProductRepository
	ledger   ledger.Service
}

func NewService(products repositories.ProductRepository, ledgerService ledger.Service) Service {
	if products == nil {
		panic("product repository is required")
	}
	if ledgerService == nil {
		panic("ledger service is required")
	}
	return &service{
		products: products,
		ledger:   ledgerService,
	}
}

// Checkout computes the order's rewards and appends one purchase entry per
// cart line plus a separate entry for the delivery adjustment, so the
// adjustment shows up as its own line in the ledger history.
func (s *service) Checkout(ctx context.Context, userID uint, items []Item, method DeliveryMethod) (*Result, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, ok := DeliveryAdjustment(method); !ok {
		return nil, &domain.DomainError{
			Code:    "UNKNOWN_DELIVERY_METHOD",
			Message: fmt.Sprintf("unknown delivery method %q", method),
		}
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, CartLine{Product: *product, Quantity: item.Quantity})
	}

	totals := CalculateRewards(lines, method)

	for _, line := range totals.Lines {
		if _, err := s.ledger.AddPurchase(ctx, userID, line.Product.Name, line.Eco, line.CO2); err != nil {
			return nil, err
		}
	}

	deliveryNote := fmt.Sprintf("Delivery: %s", method)
	if _, err := s.ledger.AddPurchase(ctx, userID, deliveryNote, totals.Delivery.Eco, totals.Delivery.CO2); err != nil {
		return nil, err
	}

	result := &Result{
		EarnedEco:     totals.EarnedEco,
		SavedCO2:      totals.SavedCO2,
		ProductEco:    totals.ProductEco,
		ProductCO2:    totals.ProductCO2,
		Delivery:      totals.Delivery,
		OfferReinvest: totals.EarnedEco > 0,
	}
	if result.OfferReinvest {
		result.ReinvestOffers = vault.ReinvestTiers()
	}
	return result, nil
}
