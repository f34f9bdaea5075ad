package service

import (
	"context"
	"time"

	"github.com/starglow/casino-services/internal/rewardsvc/models"
)

// Store interfaces live here so services can be exercised against fakes.
// The pgx implementations are in the store package.

type UserStore interface {
	CreateIfAbsent(ctx context.Context, userId int64, username string) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	AddStars(ctx context.Context, userId int64, amount int64, tref string) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}

type GameStore interface {
	ClaimDailyBonus(ctx context.Context, userId int64, amount int64, cooldown time.Duration, tref string) (int64, error)
	SpinRoulette(ctx context.Context, userId int64, cost int64, itemName string, itemValue int64, tref string) (int64, error)
	GetStats(ctx context.Context, userId int64) (*models.GameStats, error)
}

type InventoryStore interface {
	ListByUser(ctx context.Context, userId int64) ([]models.InventoryItem, error)
}

type WithdrawalStore interface {
	Create(ctx context.Context, userId int64, username, itemName string, itemValue int64, tref string) (*models.Withdrawal, error)
	ListPending(ctx context.Context) ([]models.Withdrawal, error)
	Complete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

type TransactionStore interface {
	ListRecentByUser(ctx context.Context, userId int64, limit int) ([]models.Transaction, error)
}
