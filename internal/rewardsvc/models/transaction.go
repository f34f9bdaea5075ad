package models

import "time"

// Transaction type tags. The audit log is append-only.
const (
	TxDailyBonus   = "daily_bonus"
	TxRouletteSpin = "roulette_spin"
	TxItemWon      = "item_won"
	TxWithdrawal   = "withdrawal"
	TxAdminAdd     = "admin_add"
)

// Transaction is a single audit log entry. TRef ties the row to the
// logical event that produced it.
type Transaction struct {
	ID          int64     `json:"id"`
	UserId      int64     `json:"user_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	TRef        string    `json:"tref"`
	CreatedAt   time.Time `json:"created_at"`
}
