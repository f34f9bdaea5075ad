package service

import (
	"context"

	"github.com/starglow/casino-services/internal/comm"
	"github.com/starglow/casino-services/internal/rewardsvc/events"

	"github.com/google/uuid"
)

type AdminStats struct {
	TotalUsers       int64
	TotalWithdrawals int64
}

// AdminService covers the operations the bot exposes behind the admin
// menu. Authorization happens at the HTTP layer via the capability token.
type AdminService struct {
	userStore       UserStore
	withdrawalStore WithdrawalStore
	pub             events.Publisher
}

func NewAdminService(userStore UserStore, withdrawalStore WithdrawalStore, pub events.Publisher) *AdminService {
	return &AdminService{
		userStore:       userStore,
		withdrawalStore: withdrawalStore,
		pub:             pub,
	}
}

// AddStars credits a user unconditionally and announces the credit so the
// bot can notify them.
func (s *AdminService) AddStars(ctx context.Context, userId int64, amount int64) (int64, error) {
	balance, err := s.userStore.AddStars(ctx, userId, amount, uuid.NewString())
	if err != nil {
		return 0, err
	}

	s.pub.StarsCredited(comm.StarsCredited{
		UserID:     userId,
		Amount:     amount,
		NewBalance: balance,
	})

	return balance, nil
}

func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	users, err := s.userStore.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	withdrawals, err := s.withdrawalStore.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{TotalUsers: users, TotalWithdrawals: withdrawals}, nil
}
