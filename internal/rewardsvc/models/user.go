package models

import (
	"time"
)

// User represents the users table in the database.
type User struct {
	UserId         int64      `json:"user_id"`
	Username       string     `json:"username"`
	Balance        int64      `json:"balance"`
	LastDailyBonus *time.Time `json:"last_daily_bonus"`
	CreatedAt      time.Time  `json:"created_at"`
}
