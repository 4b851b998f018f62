package payout

import (
	"context"
	"testing"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardRepo struct {
	cards  map[uint]*models.PayoutCard
	nextID uint
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[uint]*models.PayoutCard), nextID: 1}
}

func (f *fakeCardRepo) Create(_ context.Context, card *models.PayoutCard) error {
	card.ID = f.nextID
	f.nextID++
	copied := *card
	f.cards[card.ID] = &copied
	return nil
}

func (f *fakeCardRepo) GetByID(_ context.Context, id uint) (*models.PayoutCard, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	copied := *card
	return &copied, nil
}

func (f *fakeCardRepo) ListByUser(_ context.Context, userID uint) ([]models.PayoutCard, error) {
	var out []models.PayoutCard
	for _, card := range f.cards {
		if card.UserID == userID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (f *fakeCardRepo) Update(_ context.Context, card *models.PayoutCard) error {
	copied := *card
	f.cards[card.ID] = &copied
	return nil
}

func TestAddCard(t *testing.T) {
	ctx := context.Background()

	t.Run("test card numbers tokenize without hitting Stripe", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewService(repo)

		card, err := svc.AddCard(ctx, 1, models.CreatePayoutCardInput{
			CardNumber:  "4242424242424242",
			ExpiryMonth: "12",
			ExpiryYear:  "2030",
			CVV:         "123",
		})
		require.NoError(t, err)
		assert.Equal(t, "tok_visa", card.CardToken)
		assert.Equal(t, "Visa", card.CardType)
		assert.Equal(t, "4242", card.LastFour)
		assert.Equal(t, "active", card.Status)
	})

	t.Run("rejects short card numbers", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewService(repo)

		_, err := svc.AddCard(ctx, 1, models.CreatePayoutCardInput{CardNumber: "1234"})
		assert.Error(t, err)
	})
}

func TestValidateCard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	svc := NewService(repo)

	card, err := svc.AddCard(ctx, 1, models.CreatePayoutCardInput{
		CardNumber:  "5555555555554444",
		ExpiryMonth: "6",
		ExpiryYear:  "2029",
		CVV:         "321",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.ValidateCard(ctx, 1, card.ID))
	assert.ErrorIs(t, svc.ValidateCard(ctx, 2, card.ID), ErrCardNotBelongToUser)
	assert.ErrorIs(t, svc.ValidateCard(ctx, 1, 99), ErrCardNotFound)

	card.Status = "disabled"
	require.NoError(t, repo.Update(ctx, card))
	assert.ErrorIs(t, svc.ValidateCard(ctx, 1, card.ID), ErrCardNotActive)
}
