package verification

import (
	"context"
	"testing"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uint]*models.BusinessProduct
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*models.BusinessProduct), nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.BusinessProduct) error {
	product.ID = f.nextID
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.BusinessProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *models.BusinessProduct) error {
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) ListByOwner(_ context.Context, ownerID uint) ([]models.BusinessProduct, error) {
	var out []models.BusinessProduct
	for _, p := range f.products {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListByStatus(_ context.Context, statuses ...string) ([]models.BusinessProduct, error) {
	var out []models.BusinessProduct
	for _, p := range f.products {
		for _, status := range statuses {
			if p.Status == status {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]models.BusinessProduct, error) {
	var out []models.BusinessProduct
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

type fakeSponsorRepo struct {
	sponsors []models.Sponsor
}

func (f *fakeSponsorRepo) Create(_ context.Context, sponsor *models.Sponsor) error {
	sponsor.ID = uint(len(f.sponsors) + 1)
	f.sponsors = append(f.sponsors, *sponsor)
	return nil
}

func (f *fakeSponsorRepo) GetByID(_ context.Context, id uint) (*models.Sponsor, error) {
	for i := range f.sponsors {
		if f.sponsors[i].ID == id {
			copied := f.sponsors[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrSponsorNotFound
}

func (f *fakeSponsorRepo) Update(_ context.Context, sponsor *models.Sponsor) error {
	for i := range f.sponsors {
		if f.sponsors[i].ID == sponsor.ID {
			f.sponsors[i] = *sponsor
			return nil
		}
	}
	return repositories.ErrSponsorNotFound
}

func (f *fakeSponsorRepo) List(_ context.Context) ([]models.Sponsor, error) {
	out := make([]models.Sponsor, len(f.sponsors))
	copy(out, f.sponsors)
	return out, nil
}

func newTestService() (Service, *fakeProductRepo, *fakeSponsorRepo) {
	products := newFakeProductRepo()
	sponsors := &fakeSponsorRepo{}
	return NewService(products, sponsors, nil), products, sponsors
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("first sale escrows and moves the product to pending", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "Bamboo desk", Price: 1000, CO2Saved: 4})
		require.NoError(t, err)
		assert.Equal(t, models.BusinessStatusActive, product.Status)

		sold, err := svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BusinessStatusPending, sold.Status)
		assert.Equal(t, 1, sold.Sales)
		assert.InDelta(t, 100.0, sold.LockedRevenue, 1e-9) // 10% of price
	})

	t.Run("escrow keeps accruing while pending", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 500})
		require.NoError(t, err)

		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		sold, err := svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, sold.Sales)
		assert.InDelta(t, 100.0, sold.LockedRevenue, 1e-9)
	})

	t.Run("passed products sell without accruing escrow", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 500})
		require.NoError(t, err)
		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		_, err = svc.Verify(ctx, product.ID, "auditor", true, "")
		require.NoError(t, err)

		sold, err := svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, sold.Sales)
		assert.InDelta(t, 50.0, sold.LockedRevenue, 1e-9)
		assert.Equal(t, models.BusinessStatusVerifiedPass, sold.Status)
	})

	t.Run("failed products cannot sell", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 500})
		require.NoError(t, err)
		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		_, err = svc.Verify(ctx, product.ID, "auditor", false, "greenwashing")
		require.NoError(t, err)

		_, err = svc.RecordSale(ctx, product.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("pass splits escrow 99/1", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 1000})
		require.NoError(t, err)
		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)

		result, err := svc.Verify(ctx, product.ID, "auditor", true, "")
		require.NoError(t, err)
		assert.InDelta(t, 99.0, result.NetRevenue, 1e-9)
		assert.InDelta(t, 1.0, result.PlatformFee, 1e-9)
		assert.Equal(t, models.BusinessStatusVerifiedPass, result.Product.Status)
		assert.Equal(t, "auditor", result.Product.VerifierName)
		assert.NotNil(t, result.Product.VerifiedAt)
	})

	t.Run("fail splits escrow 90/10 and records the reason", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 1000})
		require.NoError(t, err)
		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)

		result, err := svc.Verify(ctx, product.ID, "auditor", false, "no certification")
		require.NoError(t, err)
		assert.InDelta(t, 90.0, result.Refunded, 1e-9)
		assert.InDelta(t, 10.0, result.Penalty, 1e-9)
		assert.Equal(t, "no certification", result.Product.FailReason)
	})

	t.Run("verdicts are terminal", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 1000})
		require.NoError(t, err)
		_, err = svc.RecordSale(ctx, product.ID)
		require.NoError(t, err)
		_, err = svc.Verify(ctx, product.ID, "auditor", true, "")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, product.ID, "auditor", false, "changed my mind")
		assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
	})

	t.Run("unsold products cannot be verified", func(t *testing.T) {
		svc, _, _ := newTestService()
		product, err := svc.CreateProduct(ctx, 7, CreateProductInput{Name: "x", Price: 1000})
		require.NoError(t, err)

		_, err = svc.Verify(ctx, product.ID, "auditor", true, "")
		assert.ErrorIs(t, err, domain.ErrNotPendingVerification)
	})
}

func TestDerivedTotals(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	a, err := svc.CreateProduct(ctx, 1, CreateProductInput{Name: "a", Price: 1000, CO2Saved: 2})
	require.NoError(t, err)
	b, err := svc.CreateProduct(ctx, 2, CreateProductInput{Name: "b", Price: 500, CO2Saved: 3})
	require.NoError(t, err)

	_, err = svc.RecordSale(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.RecordSale(ctx, b.ID)
	require.NoError(t, err)
	_, err = svc.RecordSale(ctx, b.ID)
	require.NoError(t, err)

	lockedPool, err := svc.LockedPoolTotal(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, lockedPool, 1e-9) // 100 + 50 + 50

	carbonCredits, err := svc.CarbonCreditsTotal(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, carbonCredits, 1e-9) // 2*1 + 3*2
}

func TestDisburseReward(t *testing.T) {
	ctx := context.Background()

	t.Run("draws from the first sponsor that can cover", func(t *testing.T) {
		svc, _, sponsors := newTestService()
		require.NoError(t, sponsors.Create(ctx, &models.Sponsor{Name: "Small", TotalFunded: 50, RemainingBalance: 50}))
		require.NoError(t, sponsors.Create(ctx, &models.Sponsor{Name: "Big", TotalFunded: 1000, RemainingBalance: 1000}))

		ok, err := svc.DisburseReward(ctx, 42, 100, "tree planting")
		require.NoError(t, err)
		assert.True(t, ok)

		list, _ := sponsors.List(ctx)
		assert.Equal(t, 50.0, list[0].RemainingBalance)
		assert.Equal(t, 900.0, list[1].RemainingBalance)
	})

	t.Run("fails closed when no sponsor can cover", func(t *testing.T) {
		svc, _, sponsors := newTestService()
		require.NoError(t, sponsors.Create(ctx, &models.Sponsor{Name: "Small", TotalFunded: 50, RemainingBalance: 50}))

		ok, err := svc.DisburseReward(ctx, 42, 100, "tree planting")
		require.NoError(t, err)
		assert.False(t, ok)

		list, _ := sponsors.List(ctx)
		assert.Equal(t, 50.0, list[0].RemainingBalance)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.DisburseReward(ctx, 42, 0, "x")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestFundSponsor(t *testing.T) {
	ctx := context.Background()
	svc, _, sponsors := newTestService()
	require.NoError(t, sponsors.Create(ctx, &models.Sponsor{Name: "Fund", TotalFunded: 100, RemainingBalance: 40}))

	sponsor, err := svc.FundSponsor(ctx, 1, 60)
	require.NoError(t, err)
	assert.Equal(t, 160.0, sponsor.TotalFunded)
	assert.Equal(t, 100.0, sponsor.RemainingBalance)

	_, err = svc.FundSponsor(ctx, 99, 10)
	assert.ErrorIs(t, err, repositories.ErrSponsorNotFound)
}
