package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownRemainingNeverClaimed(t *testing.T) {
	remaining, active := cooldownRemaining(nil, time.Now(), 24*time.Hour)
	assert.False(t, active)
	assert.Zero(t, remaining)
}

func TestCooldownRemainingWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	last := now.Add(-3 * time.Hour)

	remaining, active := cooldownRemaining(&last, now, 24*time.Hour)
	require.True(t, active)
	assert.Equal(t, 21*time.Hour, remaining)
}

func TestCooldownRemainingExactlyElapsed(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	last := now.Add(-24 * time.Hour)

	// The window is a strict < comparison: at exactly 24h the claim is open.
	_, active := cooldownRemaining(&last, now, 24*time.Hour)
	assert.False(t, active)
}

func TestCooldownRemainingOneSecondShort(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	last := now.Add(-24*time.Hour + time.Second)

	remaining, active := cooldownRemaining(&last, now, 24*time.Hour)
	require.True(t, active)
	assert.Equal(t, time.Second, remaining)
}

func TestCooldownRemainingWindowPassed(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	last := now.Add(-48 * time.Hour)

	_, active := cooldownRemaining(&last, now, 24*time.Hour)
	assert.False(t, active)
}

func TestCanAffordSpin(t *testing.T) {
	assert.True(t, canAffordSpin(25, 25))
	assert.True(t, canAffordSpin(26, 25))
	assert.False(t, canAffordSpin(24, 25))
	assert.False(t, canAffordSpin(0, 25))
	assert.False(t, canAffordSpin(-1, 25))
}

func TestBalanceCheckViolated(t *testing.T) {
	checkErr := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "users_balance_check"}
	assert.True(t, balanceCheckViolated(checkErr))
	assert.True(t, balanceCheckViolated(fmt.Errorf("exec: %w", checkErr)))

	assert.False(t, balanceCheckViolated(&pgconn.PgError{Code: "23505"}))
	assert.False(t, balanceCheckViolated(ErrInsufficientBalance))
	assert.False(t, balanceCheckViolated(nil))
}
