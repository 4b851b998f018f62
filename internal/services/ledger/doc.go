// Package ledger implements the wallet/ledger engine: per-user ECO and VND
// balances, the CO2 accumulator, purchase history, staked positions, NFTs
// and recycling logs. All mutations are synchronous, persist a full
// snapshot, and return typed domain errors for business conditions
// (insufficient funds, missing investment) instead of failing silently.
package ledger
