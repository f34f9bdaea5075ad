package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

// ClaimDailyBonus credits the bonus, stamps last_daily_bonus and logs the
// transaction as one unit. The cooldown check happens under a row lock so
// two concurrent claims cannot both pass.
func (s *GameStore) ClaimDailyBonus(ctx context.Context, userId int64, amount int64, cooldown time.Duration, tref string) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var lastBonus *time.Time
	err = tx.QueryRow(ctx, `
        SELECT last_daily_bonus FROM users
        WHERE user_id = $1
        FOR UPDATE
    `, userId).Scan(&lastBonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to lock user %d: %w", userId, err)
	}

	now := time.Now()
	if remaining, active := cooldownRemaining(lastBonus, now, cooldown); active {
		return 0, &CooldownActiveError{Remaining: remaining}
	}

	var balance int64
	err = tx.QueryRow(ctx, `
        UPDATE users SET balance = balance + $1, last_daily_bonus = $2
        WHERE user_id = $3
        RETURNING balance
    `, amount, now, userId).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to credit bonus for user %d: %w", userId, err)
	}

	err = insertTransaction(ctx, tx, models.Transaction{
		UserId:      userId,
		Type:        models.TxDailyBonus,
		Amount:      amount,
		Description: "Daily bonus",
		TRef:        tref,
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return balance, nil
}

// SpinRoulette debits the spin cost, stores the won item, upserts the
// cumulative stats row and logs both audit entries in one tx. A failed
// step rolls everything back.
func (s *GameStore) SpinRoulette(ctx context.Context, userId int64, cost int64, itemName string, itemValue int64, tref string) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx, `
        SELECT balance FROM users
        WHERE user_id = $1
        FOR UPDATE
    `, userId).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to lock user %d: %w", userId, err)
	}

	if !canAffordSpin(balance, cost) {
		return 0, ErrInsufficientBalance
	}

	err = tx.QueryRow(ctx, `
        UPDATE users SET balance = balance - $1
        WHERE user_id = $2
        RETURNING balance
    `, cost, userId).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to debit spin cost for user %d: %w", userId, err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO inventory (user_id, item_name, item_value)
        VALUES ($1, $2, $3)
    `, userId, itemName, itemValue)
	if err != nil {
		return 0, fmt.Errorf("failed to add item to inventory: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO game_stats (user_id, spins_count, total_won, last_spin)
        VALUES ($1, 1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE
        SET spins_count = game_stats.spins_count + 1,
            total_won = game_stats.total_won + EXCLUDED.total_won,
            last_spin = EXCLUDED.last_spin
    `, userId, itemValue, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to update game stats: %w", err)
	}

	err = insertTransaction(ctx, tx, models.Transaction{
		UserId:      userId,
		Type:        models.TxRouletteSpin,
		Amount:      -cost,
		Description: "Roulette spin",
		TRef:        tref,
	})
	if err != nil {
		return 0, err
	}

	// Informational record of the item's nominal value. The balance is
	// not touched, the prize lives in the inventory.
	err = insertTransaction(ctx, tx, models.Transaction{
		UserId:      userId,
		Type:        models.TxItemWon,
		Amount:      itemValue,
		Description: "Won: " + itemName,
		TRef:        tref,
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return balance, nil
}

// GetStats returns zeroed defaults, not an error, for users that have
// never spun.
func (s *GameStore) GetStats(ctx context.Context, userId int64) (*models.GameStats, error) {
	row := s.db.QueryRow(ctx, `
        SELECT user_id, spins_count, total_won, last_spin
        FROM game_stats
        WHERE user_id = $1
    `, userId)

	st := &models.GameStats{}
	err := row.Scan(&st.UserId, &st.SpinsCount, &st.TotalWon, &st.LastSpin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.GameStats{UserId: userId}, nil
		}
		return nil, fmt.Errorf("failed to get game stats for user %d: %w", userId, err)
	}

	return st, nil
}
