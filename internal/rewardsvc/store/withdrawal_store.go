package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WithdrawalStore struct {
	db *pgxpool.Pool
}

func NewWithdrawalStore(db *pgxpool.Pool) *WithdrawalStore {
	return &WithdrawalStore{db: db}
}

// Create records a pending withdrawal, removes the most recently won item
// matching the name and logs the bookkeeping transaction, all in one tx.
// The user row is locked first so concurrent requests for the last
// matching item cannot both succeed.
func (s *WithdrawalStore) Create(ctx context.Context, userId int64, username, itemName string, itemValue int64, tref string) (*models.Withdrawal, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedId int64
	err = tx.QueryRow(ctx, `
        SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE
    `, userId).Scan(&lockedId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock user %d: %w", userId, err)
	}

	var itemId int64
	err = tx.QueryRow(ctx, `
        SELECT id FROM inventory
        WHERE user_id = $1 AND item_name = $2
        ORDER BY created_at DESC, id DESC
        LIMIT 1
        FOR UPDATE
    `, userId, itemName).Scan(&itemId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, itemId)
	if err != nil {
		return nil, fmt.Errorf("failed to remove inventory item %d: %w", itemId, err)
	}

	w := &models.Withdrawal{
		UserId:    userId,
		Username:  username,
		ItemName:  itemName,
		ItemValue: itemValue,
		Status:    models.WithdrawalStatusPending,
	}
	err = tx.QueryRow(ctx, `
        INSERT INTO withdrawals (user_id, username, item_name, item_value)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `, userId, username, itemName, itemValue).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	// Bookkeeping only: the stars were spent at spin time, this entry
	// does not change the balance.
	err = insertTransaction(ctx, tx, models.Transaction{
		UserId:      userId,
		Type:        models.TxWithdrawal,
		Amount:      -itemValue,
		Description: "Withdrawal: " + itemName,
		TRef:        tref,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return w, nil
}

func (s *WithdrawalStore) ListPending(ctx context.Context) ([]models.Withdrawal, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, user_id, username, item_name, item_value, status, created_at
        FROM withdrawals
        WHERE status = 'pending'
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	defer rows.Close()

	items := []models.Withdrawal{}
	for rows.Next() {
		var w models.Withdrawal
		err := rows.Scan(&w.ID, &w.UserId, &w.Username, &w.ItemName, &w.ItemValue, &w.Status, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal row: %w", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// Complete marks a withdrawal completed. Re-completing an already
// completed record succeeds again as a no-op.
func (s *WithdrawalStore) Complete(ctx context.Context, id int64) error {
	var got int64
	err := s.db.QueryRow(ctx, `
        UPDATE withdrawals SET status = 'completed'
        WHERE id = $1
        RETURNING id
    `, id).Scan(&got)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWithdrawalNotFound
		}
		return fmt.Errorf("failed to complete withdrawal %d: %w", id, err)
	}
	return nil
}

func (s *WithdrawalStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawals`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}
	return count, nil
}
