package verification

import (
	"context"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/models"
)

// DisburseReward draws the amount from the first sponsor with sufficient
// remaining balance. Fails closed: returns false and changes nothing when
// no sponsor can cover the amount.
func (s *service) DisburseReward(ctx context.Context, beneficiaryID uint, amount float64, purpose string) (bool, error) {
	if amount <= 0 {
		return false, domain.ErrInvalidAmount
	}

	sponsors, err := s.sponsors.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range sponsors {
		sponsor := &sponsors[i]
		if sponsor.RemainingBalance < amount {
			continue
		}

		sponsor.RemainingBalance -= amount
		if err := s.sponsors.Update(ctx, sponsor); err != nil {
			return false, err
		}

		s.recordAudit(ctx, &models.Transaction{
			UserID: beneficiaryID,
			Type:   models.TransactionTypeSponsorDisburse,
			Amount: amount,
			Note:   purpose,
			Metadata: models.NewJSON(map[string]interface{}{
				"sponsor_id":   sponsor.ID,
				"sponsor_name": sponsor.Name,
			}),
		})
		return true, nil
	}

	return false, nil
}

// FundSponsor tops up a sponsor pool, raising both the total funded and
// the remaining balance.
func (s *service) FundSponsor(ctx context.Context, sponsorID uint, amount float64) (*models.Sponsor, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	sponsor, err := s.sponsors.GetByID(ctx, sponsorID)
	if err != nil {
		return nil, err
	}

	sponsor.TotalFunded += amount
	sponsor.RemainingBalance += amount

	if err := s.sponsors.Update(ctx, sponsor); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, &models.Transaction{
		UserID: 0,
		Type:   models.TransactionTypeSponsorFund,
		Amount: amount,
		Note:   "Sponsor fund top-up",
		Metadata: models.NewJSON(map[string]interface{}{
			"sponsor_id": sponsor.ID,
		}),
	})

	return sponsor, nil
}

func (s *service) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	return s.sponsors.List(ctx)
}
