package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

// CreateIfAbsent registers a user once; repeated calls never reset an
// existing row.
func (r *UserStore) CreateIfAbsent(ctx context.Context, userId int64, username string) error {
	query := `
        INSERT INTO users (user_id, username)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING
    `

	_, err := r.db.Exec(ctx, query, userId, username)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	return nil
}

func (r *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT user_id, username, balance, last_daily_bonus, created_at
        FROM users
        WHERE user_id = $1
    `, id)

	u := &models.User{}
	err := row.Scan(
		&u.UserId,
		&u.Username,
		&u.Balance,
		&u.LastDailyBonus,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return u, nil
}

// AddStars credits (or debits, for negative amounts) a user balance and
// logs the matching admin_add transaction in one tx. A debit that would
// drive the balance negative returns ErrInsufficientBalance.
func (r *UserStore) AddStars(ctx context.Context, userId int64, amount int64, tref string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx, `
        UPDATE users SET balance = balance + $1
        WHERE user_id = $2
        RETURNING balance
    `, amount, userId).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		if balanceCheckViolated(err) {
			return 0, ErrInsufficientBalance
		}
		return 0, fmt.Errorf("failed to update balance for user %d: %w", userId, err)
	}

	err = insertTransaction(ctx, tx, models.Transaction{
		UserId:      userId,
		Type:        models.TxAdminAdd,
		Amount:      amount,
		Description: "Admin balance adjustment",
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

func (r *UserStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
