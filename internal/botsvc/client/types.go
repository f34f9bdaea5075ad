package client

// Response shapes of the rewards service API. The bot depends only on
// this contract, not on the service internals.

type GameStats struct {
	SpinsCount int64   `json:"spins_count"`
	TotalWon   int64   `json:"total_won"`
	LastSpin   *string `json:"last_spin"`
}

type User struct {
	UserID         int64      `json:"user_id"`
	Username       string     `json:"username"`
	Balance        int64      `json:"balance"`
	LastDailyBonus *string    `json:"last_daily_bonus"`
	CreatedAt      string     `json:"created_at"`
	Stats          *GameStats `json:"stats"`
}

type InventoryItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	ItemName  string `json:"item_name"`
	ItemValue int64  `json:"item_value"`
	CreatedAt string `json:"created_at"`
}

type Withdrawal struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ItemName  string `json:"item_name"`
	ItemValue int64  `json:"item_value"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type Prize struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Emoji string `json:"emoji"`
}

type BonusResult struct {
	Bonus      int64  `json:"bonus"`
	NewBalance int64  `json:"new_balance"`
	Message    string `json:"message"`
}

type SpinResult struct {
	WonItem    Prize  `json:"won_item"`
	NewBalance int64  `json:"new_balance"`
	Cost       int64  `json:"cost"`
	Message    string `json:"message"`
}

type WithdrawResult struct {
	Status  string `json:"status"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type AddStarsResult struct {
	Status     string `json:"status"`
	NewBalance int64  `json:"new_balance"`
	Message    string `json:"message"`
}

type AdminStats struct {
	TotalUsers       int64  `json:"total_users"`
	TotalWithdrawals int64  `json:"total_withdrawals"`
	ServerTime       string `json:"server_time"`
}
