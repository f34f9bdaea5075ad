package models

import "time"

// InventoryItem is a won prize held by a user until it gets withdrawn.
type InventoryItem struct {
	ID        int64     `json:"id"`
	UserId    int64     `json:"user_id"`
	ItemName  string    `json:"item_name"`
	ItemValue int64     `json:"item_value"`
	CreatedAt time.Time `json:"created_at"`
}
