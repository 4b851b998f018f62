package ledger

import (
	"context"
	"fmt"
	"time"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/google/uuid"
)

// Service is the mutation surface of the wallet/ledger engine.
type Service interface {
	GetSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error)
	GetHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)

	AddEcoTokens(ctx context.Context, userID uint, amount, co2Amount float64) error
	StakeEco(ctx context.Context, userID uint, req StakeRequest) (*models.Investment, error)
	UnstakeEco(ctx context.Context, userID uint, investmentID string, feePercent float64) (float64, error)
	SwapEcoToVnd(ctx context.Context, userID uint, amount float64) (float64, error)
	WithdrawVnd(ctx context.Context, userID uint, amount float64) error
	AddPurchase(ctx context.Context, userID uint, product string, ecoEarned, co2Saved float64) (*models.PurchaseRecord, error)
	AddRecycleItem(ctx context.Context, userID uint, customerName, wasteType string, weight float64) (*models.RecycleLog, error)
	ProcessRecyclingBatch(ctx context.Context, userID uint) (*BatchResult, error)
}

type service struct {
	store   repositories.LedgerStore
	cache   SnapshotCache
	metrics MetricsCollector
}

// NewService creates the ledger engine.
func NewService(store repositories.LedgerStore, cache SnapshotCache, metrics MetricsCollector) Service {
	if store == nil {
		panic("ledger store is required")
	}
	if cache == nil {
		cache = NoopSnapshotCache{}
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &service{
		store:   store,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) GetSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error) {
	return s.load(ctx, userID)
}

func (s *service) GetHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	return s.store.GetTransactionHistory(ctx, userID, limit, offset)
}

// AddEcoTokens is the low-level reward primitive. The amount sign is the
// caller's responsibility (penalty deliveries pass a negative amount), but
// the CO2 accumulator only ever moves forward.
func (s *service) AddEcoTokens(ctx context.Context, userID uint, amount, co2Amount float64) error {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	s.creditEco(snap, amount, co2Amount)

	return s.persist(ctx, userID, snap, nil)
}

func (s *service) StakeEco(ctx context.Context, userID uint, req StakeRequest) (*models.Investment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount > snap.EcoBalance {
		s.metrics.RecordError("stake", ErrInsufficientBalance.Code)
		return nil, ErrInsufficientBalance
	}

	inv := models.Investment{
		ID:            uuid.NewString(),
		Kind:          req.Kind,
		Name:          req.Name,
		Amount:        req.Amount,
		APR:           req.APR,
		Date:          time.Now().UTC(),
		DurationLabel: req.DurationLabel,
		LockDays:      req.LockDays,
	}

	snap.EcoBalance -= req.Amount
	snap.Investments = append([]models.Investment{inv}, snap.Investments...)

	if req.Kind == models.InvestmentKindProduct {
		tier := models.NFTTierSilver
		if req.Amount > NFTGoldThreshold {
			tier = models.NFTTierGold
		}
		nft := models.NFT{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("Green Investor Certificate - %s", req.Name),
			Tier: tier,
			Date: inv.Date,
		}
		snap.NFTs = append([]models.NFT{nft}, snap.NFTs...)
	}

	txn := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeStake,
		Amount: req.Amount,
		Note:   fmt.Sprintf("Staked into %s", req.Name),
		Metadata: models.NewJSON(map[string]interface{}{
			"investment_id": inv.ID,
			"apr":           req.APR,
			"duration":      req.DurationLabel,
		}),
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("stake", req.Amount)
	return &inv, nil
}

// UnstakeEco removes the position and credits principal minus the fee.
// A second call with the same id fails the lookup, which is the guard
// against double credit.
func (s *service) UnstakeEco(ctx context.Context, userID uint, investmentID string, feePercent float64) (float64, error) {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, inv := range snap.Investments {
		if inv.ID == investmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrInvestmentNotFound
	}

	inv := snap.Investments[idx]
	fee := inv.Amount * feePercent / 100
	credited := inv.Amount - fee

	snap.EcoBalance += credited
	snap.Investments = append(snap.Investments[:idx], snap.Investments[idx+1:]...)

	txn := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeUnstake,
		Amount: credited,
		Note:   fmt.Sprintf("Unstaked from %s", inv.Name),
		Metadata: models.NewJSON(map[string]interface{}{
			"investment_id": inv.ID,
			"fee":           fee,
			"fee_percent":   feePercent,
		}),
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return 0, err
	}

	s.metrics.RecordMutation("unstake", credited)
	return credited, nil
}

// SwapEcoToVnd converts ECO to VND at the fixed rate, minus the 0.1% fee.
func (s *service) SwapEcoToVnd(ctx context.Context, userID uint, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	snap, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}

	if amount > snap.EcoBalance {
		s.metrics.RecordError("swap", ErrInsufficientBalance.Code)
		return 0, ErrInsufficientBalance
	}

	fee := amount * SwapFeeRate
	vnd := (amount - fee) * EcoToVndRate

	snap.EcoBalance -= amount
	snap.VndBalance += vnd

	txn := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeSwap,
		Amount: amount,
		Note:   "Swapped ECO to VND",
		Metadata: models.NewJSON(map[string]interface{}{
			"fee":          fee,
			"vnd_credited": vnd,
			"rate":         EcoToVndRate,
		}),
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return 0, err
	}

	s.metrics.RecordMutation("swap", amount)
	return vnd, nil
}

// WithdrawVnd debits the fiat balance; the payout itself is external.
func (s *service) WithdrawVnd(ctx context.Context, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	snap, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	if amount > snap.VndBalance {
		s.metrics.RecordError("withdraw", ErrInsufficientFiat.Code)
		return ErrInsufficientFiat
	}

	snap.VndBalance -= amount

	txn := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeWithdrawal,
		Amount: amount,
		Note:   "VND withdrawal",
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return err
	}

	s.metrics.RecordMutation("withdraw", amount)
	return nil
}

// AddPurchase appends a history record and credits the reward in one
// operation; recording and crediting are deliberately coupled. EcoEarned
// may be negative for penalty deliveries and the entry is kept regardless.
func (s *service) AddPurchase(ctx context.Context, userID uint, product string, ecoEarned, co2Saved float64) (*models.PurchaseRecord, error) {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := models.PurchaseRecord{
		ID:        uuid.NewString(),
		Product:   product,
		EcoEarned: ecoEarned,
		CO2Saved:  co2Saved,
		Date:      time.Now().UTC(),
	}

	snap.PurchaseHistory = append([]models.PurchaseRecord{record}, snap.PurchaseHistory...)
	s.creditEco(snap, ecoEarned, co2Saved)

	txn := &models.Transaction{
		UserID:            userID,
		Type:              models.TransactionTypePurchase,
		Amount:            ecoEarned,
		GreenPointsEarned: ecoEarned,
		CO2Saved:          co2Saved,
		Note:              product,
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("purchase", ecoEarned)
	return &record, nil
}

// AddRecycleItem records a collected waste entry at the fixed per-kg rate.
// Wallet balances are untouched until the batch is settled.
func (s *service) AddRecycleItem(ctx context.Context, userID uint, customerName, wasteType string, weight float64) (*models.RecycleLog, error) {
	if weight <= 0 {
		return nil, ErrInvalidAmount
	}

	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := models.RecycleLog{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		WasteType:    wasteType,
		Weight:       weight,
		EcoEarned:    weight * RecycleRewardPerKg,
		Status:       models.RecycleStatusCollected,
		Date:         time.Now().UTC(),
	}

	snap.RecycleLogs = append([]models.RecycleLog{entry}, snap.RecycleLogs...)

	if err := s.persist(ctx, userID, snap, nil); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ProcessRecyclingBatch settles every collected entry at once: credits 20%
// of the accrued rewards directly (no streak or CO2 change) and flips all
// entries to processed. There is no per-entry settlement.
func (s *service) ProcessRecyclingBatch(ctx context.Context, userID uint) (*BatchResult, error) {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pendingSum float64
	var pendingCount int
	for _, entry := range snap.RecycleLogs {
		if entry.Status == models.RecycleStatusCollected {
			pendingSum += entry.EcoEarned
			pendingCount++
		}
	}

	if pendingCount == 0 {
		return nil, ErrNothingToProcess
	}

	credited := pendingSum * RecycleSettleShare
	snap.EcoBalance += credited
	for i := range snap.RecycleLogs {
		if snap.RecycleLogs[i].Status == models.RecycleStatusCollected {
			snap.RecycleLogs[i].Status = models.RecycleStatusProcessed
		}
	}

	txn := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeRecycleSettle,
		Amount: credited,
		Note:   fmt.Sprintf("Settled %d recycling entries", pendingCount),
		Metadata: models.NewJSON(map[string]interface{}{
			"entries":     pendingCount,
			"accrued_sum": pendingSum,
		}),
	}

	if err := s.persist(ctx, userID, snap, txn); err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("recycle_settlement", credited)
	return &BatchResult{Processed: pendingCount, Credited: credited}, nil
}

// creditEco applies the reward primitive to in-memory state: balance moves
// by amount (any sign), the streak counts the action, and the CO2
// accumulator only ever increases.
func (s *service) creditEco(snap *models.WalletSnapshot, amount, co2Amount float64) {
	snap.EcoBalance += amount
	if co2Amount > 0 {
		snap.TotalCO2Saved += co2Amount
	}
	snap.Streak++
}

func (s *service) load(ctx context.Context, userID uint) (*models.WalletSnapshot, error) {
	if snap, err := s.cache.GetSnapshot(ctx, userID); err == nil {
		return snap, nil
	}

	snap, err := s.store.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	return snap, nil
}

// persist writes the full snapshot, refreshes the cache, and records the
// audit row. Audit failures do not roll back the snapshot write.
func (s *service) persist(ctx context.Context, userID uint, snap *models.WalletSnapshot, txn *models.Transaction) error {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("persist", time.Since(start))
	}()

	if err := s.store.SaveSnapshot(ctx, userID, snap); err != nil {
		return fmt.Errorf("failed to persist ledger snapshot: %w", err)
	}

	if err := s.cache.SetSnapshot(ctx, userID, snap); err != nil {
		_ = s.cache.InvalidateSnapshot(ctx, userID)
	}

	if txn != nil {
		if err := s.store.RecordTransaction(ctx, txn); err != nil {
			s.metrics.RecordError("audit", err.Error())
		}
	}

	return nil
}
