package ledger

// Fixed economic constants of the reward system.
const (
	// SwapFeeRate is the fee taken on an ECO -> VND swap (0.1%).
	SwapFeeRate = 0.001
	// EcoToVndRate is the fixed exchange rate: 1 ECO = 1000 VND.
	EcoToVndRate = 1000
	// RecycleRewardPerKg is the ECO reward accrued per kg of collected waste.
	RecycleRewardPerKg = 10
	// RecycleSettleShare is the share of accrued recycling rewards credited
	// to the shipper wallet when a batch is checked in.
	RecycleSettleShare = 0.2
	// NFTGoldThreshold is the stake amount above which a product-backed
	// stake mints a Gold certificate instead of Silver.
	NFTGoldThreshold = 50
)

// Rank tiers, a step function over total CO2 saved (kg).
const (
	RankSeedling       = "Seedling"
	RankSprout         = "Sprout"
	RankEcoEnthusiast  = "Eco Enthusiast"
	RankEcoWarrior     = "Eco Warrior"
	RankPlanetGuardian = "Planet Guardian"
)

// Rank returns the named tier for a total CO2 saved figure.
func Rank(totalCO2Saved float64) string {
	switch {
	case totalCO2Saved >= 100:
		return RankPlanetGuardian
	case totalCO2Saved >= 50:
		return RankEcoWarrior
	case totalCO2Saved >= 20:
		return RankEcoEnthusiast
	case totalCO2Saved >= 5:
		return RankSprout
	default:
		return RankSeedling
	}
}
