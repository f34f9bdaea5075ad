package comm

import "time"

// Topics the rewards service publishes on and the bot subscribes to.
const (
	TopicWithdrawalCreated = "rewards.withdrawal.created"
	TopicStarsCredited     = "rewards.stars.credited"
)

// WithdrawalCreated is emitted after a payout request is persisted.
type WithdrawalCreated struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ItemName  string    `json:"item_name"`
	ItemValue int64     `json:"item_value"`
	CreatedAt time.Time `json:"created_at"`
}

// StarsCredited is emitted after an admin credits a user balance.
type StarsCredited struct {
	UserID     int64 `json:"user_id"`
	Amount     int64 `json:"amount"`
	NewBalance int64 `json:"new_balance"`
}
