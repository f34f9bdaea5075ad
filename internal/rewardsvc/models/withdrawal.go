package models

import "time"

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
)

// Withdrawal is a payout request, tracked through pending/completed states.
// Username and item fields are snapshots taken at request time.
type Withdrawal struct {
	ID        int64     `json:"id"`
	UserId    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ItemName  string    `json:"item_name"`
	ItemValue int64     `json:"item_value"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
