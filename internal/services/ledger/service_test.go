package ledger

import (
	"context"
	"testing"

	"ecoshop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory LedgerStore for engine tests.
type fakeStore struct {
	snapshots    map[uint]*models.WalletSnapshot
	transactions []models.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[uint]*models.WalletSnapshot)}
}

func (f *fakeStore) LoadSnapshot(_ context.Context, userID uint) (*models.WalletSnapshot, error) {
	if snap, ok := f.snapshots[userID]; ok {
		copied := *snap
		return &copied, nil
	}
	return models.NewWalletSnapshot(), nil
}

func (f *fakeStore) SaveSnapshot(_ context.Context, userID uint, snap *models.WalletSnapshot) error {
	copied := *snap
	f.snapshots[userID] = &copied
	return nil
}

func (f *fakeStore) RecordTransaction(_ context.Context, tx *models.Transaction) error {
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeStore) GetTransactionHistory(_ context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func newTestService(store *fakeStore) Service {
	return NewService(store, nil, nil)
}

func TestAddEcoTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("credit moves balance, streak and co2", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		require.NoError(t, s.AddEcoTokens(ctx, 1, 10, 2.5))

		snap, err := s.GetSnapshot(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 10.0, snap.EcoBalance)
		assert.Equal(t, 2.5, snap.TotalCO2Saved)
		assert.Equal(t, 1, snap.Streak)
	})

	t.Run("negative co2 never decreases the accumulator", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		require.NoError(t, s.AddEcoTokens(ctx, 1, 10, 5))
		require.NoError(t, s.AddEcoTokens(ctx, 1, -5, -2))

		snap, err := s.GetSnapshot(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 5.0, snap.EcoBalance)
		assert.Equal(t, 5.0, snap.TotalCO2Saved)
		assert.Equal(t, 2, snap.Streak)
	})
}

func TestStakeEco(t *testing.T) {
	ctx := context.Background()

	t.Run("stake debits balance and records the position", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))

		inv, err := s.StakeEco(ctx, 1, StakeRequest{
			Amount:        40,
			Kind:          models.InvestmentKindVault,
			Name:          "1 Năm",
			APR:           18,
			DurationLabel: "1 Năm",
			LockDays:      365,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, inv.ID)
		assert.Equal(t, 365, inv.LockDays)

		snap, err := s.GetSnapshot(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 60.0, snap.EcoBalance)
		assert.Equal(t, 40.0, snap.StakedAmount())
	})

	t.Run("stake rejects amounts above balance", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 10, 0))

		_, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 20, Kind: models.InvestmentKindVault, Name: "x"})
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.Equal(t, 10.0, snap.EcoBalance)
		assert.Empty(t, snap.Investments)
	})

	t.Run("stake rejects non-positive amounts", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		_, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("product stakes mint certificates tiered on amount", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 200, 0))

		_, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 30, Kind: models.InvestmentKindProduct, Name: "Solar Farm"})
		require.NoError(t, err)
		_, err = s.StakeEco(ctx, 1, StakeRequest{Amount: 60, Kind: models.InvestmentKindProduct, Name: "Wind Farm"})
		require.NoError(t, err)

		snap, _ := s.GetSnapshot(ctx, 1)
		require.Len(t, snap.NFTs, 2)
		// Most recent first.
		assert.Equal(t, models.NFTTierGold, snap.NFTs[0].Tier)
		assert.Equal(t, "Green Investor Certificate - Wind Farm", snap.NFTs[0].Name)
		assert.Equal(t, models.NFTTierSilver, snap.NFTs[1].Tier)
	})
}

func TestUnstakeEco(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with zero fee restores the balance", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))

		inv, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 40, Kind: models.InvestmentKindVault, Name: "x"})
		require.NoError(t, err)

		credited, err := s.UnstakeEco(ctx, 1, inv.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 40.0, credited)

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.Equal(t, 100.0, snap.EcoBalance)
		assert.Empty(t, snap.Investments)
	})

	t.Run("fee is a percentage of principal", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))

		inv, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 50, Kind: models.InvestmentKindVault, Name: "x"})
		require.NoError(t, err)

		credited, err := s.UnstakeEco(ctx, 1, inv.ID, 0.1)
		require.NoError(t, err)
		assert.InDelta(t, 49.95, credited, 1e-9)

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.InDelta(t, 99.95, snap.EcoBalance, 1e-9)
	})

	t.Run("second unstake of the same position fails", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))

		inv, err := s.StakeEco(ctx, 1, StakeRequest{Amount: 40, Kind: models.InvestmentKindVault, Name: "x"})
		require.NoError(t, err)

		_, err = s.UnstakeEco(ctx, 1, inv.ID, 0)
		require.NoError(t, err)
		_, err = s.UnstakeEco(ctx, 1, inv.ID, 0)
		assert.ErrorIs(t, err, ErrInvestmentNotFound)
	})
}

func TestSwapEcoToVnd(t *testing.T) {
	ctx := context.Background()

	t.Run("swap applies fee then rate", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))

		vnd, err := s.SwapEcoToVnd(ctx, 1, 100)
		require.NoError(t, err)
		assert.InDelta(t, 99900.0, vnd, 1e-6)

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.Equal(t, 0.0, snap.EcoBalance)
		assert.InDelta(t, 99900.0, snap.VndBalance, 1e-6)
	})

	t.Run("swap rejects amounts above balance", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 10, 0))

		_, err := s.SwapEcoToVnd(ctx, 1, 20)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestWithdrawVnd(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := newTestService(store)

	require.NoError(t, s.AddEcoTokens(ctx, 1, 100, 0))
	_, err := s.SwapEcoToVnd(ctx, 1, 100)
	require.NoError(t, err)

	err = s.WithdrawVnd(ctx, 1, 200000)
	assert.ErrorIs(t, err, ErrInsufficientFiat)

	require.NoError(t, s.WithdrawVnd(ctx, 1, 50000))
	snap, _ := s.GetSnapshot(ctx, 1)
	assert.InDelta(t, 49900.0, snap.VndBalance, 1e-6)
}

func TestAddPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("purchase records history and credits reward", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		record, err := s.AddPurchase(ctx, 1, "Bamboo bottle", 12, 12)
		require.NoError(t, err)
		assert.Equal(t, "Bamboo bottle", record.Product)

		snap, _ := s.GetSnapshot(ctx, 1)
		require.Len(t, snap.PurchaseHistory, 1)
		assert.Equal(t, 12.0, snap.EcoBalance)
		assert.Equal(t, 12.0, snap.TotalCO2Saved)
	})

	t.Run("penalty entries keep the record and debit the balance", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)
		require.NoError(t, s.AddEcoTokens(ctx, 1, 10, 0))

		_, err := s.AddPurchase(ctx, 1, "Delivery: gas_express", -5, -2)
		require.NoError(t, err)

		snap, _ := s.GetSnapshot(ctx, 1)
		require.Len(t, snap.PurchaseHistory, 1)
		assert.Equal(t, 5.0, snap.EcoBalance)
		assert.Equal(t, 0.0, snap.TotalCO2Saved)
	})
}

func TestRecycling(t *testing.T) {
	ctx := context.Background()

	t.Run("collection accrues without touching the balance", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		entry, err := s.AddRecycleItem(ctx, 1, "Chị Lan", "plastic", 3)
		require.NoError(t, err)
		assert.Equal(t, 30.0, entry.EcoEarned)
		assert.Equal(t, models.RecycleStatusCollected, entry.Status)

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.Equal(t, 0.0, snap.EcoBalance)
	})

	t.Run("batch settles every collected entry at once", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		_, err := s.AddRecycleItem(ctx, 1, "A", "plastic", 3)
		require.NoError(t, err)
		_, err = s.AddRecycleItem(ctx, 1, "B", "paper", 2)
		require.NoError(t, err)

		result, err := s.ProcessRecyclingBatch(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
		assert.InDelta(t, 10.0, result.Credited, 1e-9) // (30+20) * 0.2

		snap, _ := s.GetSnapshot(ctx, 1)
		assert.InDelta(t, 10.0, snap.EcoBalance, 1e-9)
		for _, entry := range snap.RecycleLogs {
			assert.Equal(t, models.RecycleStatusProcessed, entry.Status)
		}
	})

	t.Run("settling twice fails with nothing pending", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		_, err := s.AddRecycleItem(ctx, 1, "A", "plastic", 1)
		require.NoError(t, err)
		_, err = s.ProcessRecyclingBatch(ctx, 1)
		require.NoError(t, err)

		_, err = s.ProcessRecyclingBatch(ctx, 1)
		assert.ErrorIs(t, err, ErrNothingToProcess)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		store := newFakeStore()
		s := newTestService(store)

		_, err := s.AddRecycleItem(ctx, 1, "A", "plastic", 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestRank(t *testing.T) {
	tests := []struct {
		co2  float64
		want string
	}{
		{0, RankSeedling},
		{4.9, RankSeedling},
		{5, RankSprout},
		{20, RankEcoEnthusiast},
		{50, RankEcoWarrior},
		{100, RankPlanetGuardian},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rank(tt.co2))
	}
}
