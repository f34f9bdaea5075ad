package store

import (
	"context"
	"fmt"

	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the audit log
// insert can run inside any store transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// insertTransaction appends one audit log row. It must run inside the
// same tx as the balance or inventory mutation it records.
func insertTransaction(ctx context.Context, q querier, t models.Transaction) error {
	_, err := q.Exec(ctx, `
        INSERT INTO transactions (user_id, type, amount, description, tref)
        VALUES ($1, $2, $3, $4, $5)
    `, t.UserId, t.Type, t.Amount, t.Description, t.TRef)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

type TransactionStore struct {
	db *pgxpool.Pool
}

func NewTransactionStore(db *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) ListRecentByUser(ctx context.Context, userId int64, limit int) ([]models.Transaction, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, user_id, type, amount, description, tref, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `, userId, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserId, &t.Type, &t.Amount, &t.Description, &t.TRef, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}
