package store

import (
	"context"
	"fmt"

	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryStore struct {
	db *pgxpool.Pool
}

func NewInventoryStore(db *pgxpool.Pool) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) ListByUser(ctx context.Context, userId int64) ([]models.InventoryItem, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, user_id, item_name, item_value, created_at
        FROM inventory
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var it models.InventoryItem
		err := rows.Scan(&it.ID, &it.UserId, &it.ItemName, &it.ItemValue, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}
