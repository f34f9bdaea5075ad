package service

import (
	"context"
	"fmt"

	"github.com/starglow/casino-services/internal/rewardsvc/models"
)

const transactionHistoryLimit = 20

// UserService struct represents the user service layer
type UserService struct {
	userStore UserStore
	txStore   TransactionStore
}

// NewUserService creates a new UserService instance
func NewUserService(userStore UserStore, txStore TransactionStore) *UserService {
	return &UserService{
		userStore: userStore,
		txStore:   txStore,
	}
}

// Register creates the user row only if absent. Calling it again for a
// known user is a no-op.
func (s *UserService) Register(ctx context.Context, userId int64, username string) error {
	if username == "" {
		username = "Unknown"
	}
	if err := s.userStore.CreateIfAbsent(ctx, userId, username); err != nil {
		return fmt.Errorf("failed to register user %d: %w", userId, err)
	}
	return nil
}

func (s *UserService) GetUser(ctx context.Context, userId int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, userId)
}

func (s *UserService) Transactions(ctx context.Context, userId int64) ([]models.Transaction, error) {
	return s.txStore.ListRecentByUser(ctx, userId, transactionHistoryLimit)
}
