package models

import "time"

// GameStats keeps one cumulative row per user, upserted on every spin.
type GameStats struct {
	UserId     int64      `json:"-"`
	SpinsCount int64      `json:"spins_count"`
	TotalWon   int64      `json:"total_won"`
	LastSpin   *time.Time `json:"last_spin"`
}
