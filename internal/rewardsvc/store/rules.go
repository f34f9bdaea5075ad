package store

import "time"

// cooldownRemaining reports how long is left until the next daily bonus
// claim is allowed. A nil lastClaim means the bonus was never taken.
func cooldownRemaining(lastClaim *time.Time, now time.Time, window time.Duration) (time.Duration, bool) {
	if lastClaim == nil {
		return 0, false
	}
	elapsed := now.Sub(*lastClaim)
	if elapsed < window {
		return window - elapsed, true
	}
	return 0, false
}

// canAffordSpin is the balance gate for the spin debit.
func canAffordSpin(balance, cost int64) bool {
	return balance >= cost
}
