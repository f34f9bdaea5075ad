package service

import (
	"context"
	"time"

	"github.com/starglow/casino-services/internal/rewardsvc/draw"
	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/google/uuid"
)

// DailyBonusCooldown is the window a user has to wait between claims.
const DailyBonusCooldown = 24 * time.Hour

type DailyBonusResult struct {
	Amount     int64
	NewBalance int64
}

type SpinResult struct {
	Item       draw.Prize
	Cost       int64
	NewBalance int64
}

type GameService struct {
	gameStore GameStore
}

func NewGameService(gameStore GameStore) *GameService {
	return &GameService{gameStore: gameStore}
}

// DailyBonus draws a star amount from the fixed table and credits it.
// The store applies credit, cooldown stamp and audit entry atomically.
func (s *GameService) DailyBonus(ctx context.Context, userId int64) (*DailyBonusResult, error) {
	amount, err := draw.DailyBonus()
	if err != nil {
		return nil, err
	}

	balance, err := s.gameStore.ClaimDailyBonus(ctx, userId, amount, DailyBonusCooldown, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &DailyBonusResult{Amount: amount, NewBalance: balance}, nil
}

// SpinRoulette draws one prize and settles the spin. The prize goes to
// the inventory, not to the star balance.
func (s *GameService) SpinRoulette(ctx context.Context, userId int64) (*SpinResult, error) {
	item, err := draw.Roulette()
	if err != nil {
		return nil, err
	}

	balance, err := s.gameStore.SpinRoulette(ctx, userId, draw.SpinCost, item.Name, item.Value, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &SpinResult{Item: item, Cost: draw.SpinCost, NewBalance: balance}, nil
}

func (s *GameService) Stats(ctx context.Context, userId int64) (*models.GameStats, error) {
	return s.gameStore.GetStats(ctx, userId)
}
