package service

import (
	"context"

	"github.com/starglow/casino-services/internal/comm"
	"github.com/starglow/casino-services/internal/rewardsvc/events"
	"github.com/starglow/casino-services/internal/rewardsvc/models"

	"github.com/google/uuid"
)

type WithdrawalService struct {
	withdrawalStore WithdrawalStore
	inventoryStore  InventoryStore
	pub             events.Publisher
}

func NewWithdrawalService(withdrawalStore WithdrawalStore, inventoryStore InventoryStore, pub events.Publisher) *WithdrawalService {
	return &WithdrawalService{
		withdrawalStore: withdrawalStore,
		inventoryStore:  inventoryStore,
		pub:             pub,
	}
}

func (s *WithdrawalService) Inventory(ctx context.Context, userId int64) ([]models.InventoryItem, error) {
	return s.inventoryStore.ListByUser(ctx, userId)
}

// Request converts an inventory item into a pending payout. The item is
// matched by name; the most recently won instance is removed.
func (s *WithdrawalService) Request(ctx context.Context, userId int64, username, itemName string, itemValue int64) (*models.Withdrawal, error) {
	if username == "" {
		username = "Unknown"
	}

	w, err := s.withdrawalStore.Create(ctx, userId, username, itemName, itemValue, uuid.NewString())
	if err != nil {
		return nil, err
	}

	s.pub.WithdrawalCreated(comm.WithdrawalCreated{
		ID:        w.ID,
		UserID:    w.UserId,
		Username:  w.Username,
		ItemName:  w.ItemName,
		ItemValue: w.ItemValue,
		CreatedAt: w.CreatedAt,
	})

	return w, nil
}

func (s *WithdrawalService) ListPending(ctx context.Context) ([]models.Withdrawal, error) {
	return s.withdrawalStore.ListPending(ctx)
}

func (s *WithdrawalService) Complete(ctx context.Context, id int64) error {
	return s.withdrawalStore.Complete(ctx, id)
}
