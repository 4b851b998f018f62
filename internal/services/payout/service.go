// Package payout tokenizes and validates the destination card for VND
// withdrawals. Tokenization goes through Stripe; well-known test card
// numbers map straight to their Stripe test tokens.
package payout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrCardNotFound        = errors.New("payout card not found")
	ErrCardNotActive       = errors.New("payout card not active")
	ErrCardNotBelongToUser = errors.New("payout card does not belong to user")
)

type Service interface {
	AddCard(ctx context.Context, userID uint, input models.CreatePayoutCardInput) (*models.PayoutCard, error)
	ListCards(ctx context.Context, userID uint) ([]models.PayoutCard, error)
	ValidateCard(ctx context.Context, userID, cardID uint) error
}

type service struct {
	repo repositories.PayoutCardRepository
}

func NewService(repo repositories.PayoutCardRepository) Service {
	if repo == nil {
		panic("payout card repository is required")
	}
	return &service{repo: repo}
}

var testCards = map[string]struct {
	token    string
	cardType string
}{
	"4242424242424242": {"tok_visa", "Visa"},
	"4000056655665556": {"tok_visa_debit", "Visa Debit"},
	"5555555555554444": {"tok_mastercard", "Mastercard"},
}

func (s *service) AddCard(ctx context.Context, userID uint, input models.CreatePayoutCardInput) (*models.PayoutCard, error) {
	if len(input.CardNumber) < 12 {
		return nil, errors.New("invalid card number")
	}

	cardToken, cardType, err := s.tokenize(input)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize card: %w", err)
	}

	card := &models.PayoutCard{
		UserID:    userID,
		CardToken: cardToken,
		CardType:  cardType,
		LastFour:  input.CardNumber[len(input.CardNumber)-4:],
		Status:    "active",
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *service) ListCards(ctx context.Context, userID uint) ([]models.PayoutCard, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ValidateCard(ctx context.Context, userID, cardID uint) error {
	card, err := s.repo.GetByID(ctx, cardID)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return ErrCardNotFound
		}
		return err
	}

	if card.UserID != userID {
		return ErrCardNotBelongToUser
	}
	if card.Status != "active" {
		return ErrCardNotActive
	}
	return nil
}

func (s *service) tokenize(input models.CreatePayoutCardInput) (string, string, error) {
	if tc, ok := testCards[input.CardNumber]; ok {
		return tc.token, tc.cardType, nil
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		return "", "", errors.New("STRIPE_SECRET_KEY not configured")
	}

	expMonth, err := strconv.Atoi(input.ExpiryMonth)
	if err != nil {
		return "", "", errors.New("invalid expiry month")
	}
	expYear, err := strconv.Atoi(input.ExpiryYear)
	if err != nil {
		return "", "", errors.New("invalid expiry year")
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(input.CardNumber),
			ExpMonth: stripe.String(strconv.Itoa(expMonth)),
			ExpYear:  stripe.String(strconv.Itoa(expYear)),
			CVC:      stripe.String(input.CVV),
		},
	}
	t, err := token.New(params)
	if err != nil {
		return "", "", err
	}

	cardType := "Unknown"
	if t.Card != nil {
		cardType = string(t.Card.Brand)
	}
	return t.ID, cardType, nil
}
