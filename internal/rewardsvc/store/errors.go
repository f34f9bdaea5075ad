package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrItemNotFound        = errors.New("item not found in inventory")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// CooldownActiveError is returned when the daily bonus is claimed again
// before the cooldown window has elapsed.
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("bonus already claimed, next available in %s", e.Remaining.Round(time.Minute))
}

// pgCheckViolation is the Postgres error code for a CHECK constraint
// failure. The only CHECK in the schema is users.balance >= 0.
const pgCheckViolation = "23514"

func balanceCheckViolated(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
