package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starglow/casino-services/internal/comm"
	"github.com/starglow/casino-services/internal/rewardsvc/draw"
	"github.com/starglow/casino-services/internal/rewardsvc/models"
	"github.com/starglow/casino-services/internal/rewardsvc/store"
)

type fakeUserStore struct {
	created   map[int64]string
	users     map[int64]*models.User
	addCalls  []addStarsCall
	userCount int64
}

type addStarsCall struct {
	userId int64
	amount int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		created: make(map[int64]string),
		users:   make(map[int64]*models.User),
	}
}

func (f *fakeUserStore) CreateIfAbsent(ctx context.Context, userId int64, username string) error {
	if _, ok := f.created[userId]; !ok {
		f.created[userId] = username
	}
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) AddStars(ctx context.Context, userId int64, amount int64, tref string) (int64, error) {
	u, ok := f.users[userId]
	if !ok {
		return 0, store.ErrUserNotFound
	}
	f.addCalls = append(f.addCalls, addStarsCall{userId: userId, amount: amount})
	u.Balance += amount
	return u.Balance, nil
}

func (f *fakeUserStore) CountUsers(ctx context.Context) (int64, error) {
	return f.userCount, nil
}

type fakeGameStore struct {
	claimErr    error
	balance     int64
	spinErr     error
	lastSpin    *spinCall
	lastClaim   *claimCall
	statsResult *models.GameStats
}

type spinCall struct {
	userId    int64
	cost      int64
	itemName  string
	itemValue int64
	tref      string
}

type claimCall struct {
	userId   int64
	amount   int64
	cooldown time.Duration
	tref     string
}

func (f *fakeGameStore) ClaimDailyBonus(ctx context.Context, userId int64, amount int64, cooldown time.Duration, tref string) (int64, error) {
	if f.claimErr != nil {
		return 0, f.claimErr
	}
	f.lastClaim = &claimCall{userId: userId, amount: amount, cooldown: cooldown, tref: tref}
	return f.balance + amount, nil
}

func (f *fakeGameStore) SpinRoulette(ctx context.Context, userId int64, cost int64, itemName string, itemValue int64, tref string) (int64, error) {
	if f.spinErr != nil {
		return 0, f.spinErr
	}
	f.lastSpin = &spinCall{userId: userId, cost: cost, itemName: itemName, itemValue: itemValue, tref: tref}
	return f.balance - cost, nil
}

func (f *fakeGameStore) GetStats(ctx context.Context, userId int64) (*models.GameStats, error) {
	return f.statsResult, nil
}

type fakeInventoryStore struct {
	items []models.InventoryItem
}

func (f *fakeInventoryStore) ListByUser(ctx context.Context, userId int64) ([]models.InventoryItem, error) {
	return f.items, nil
}

type fakeWithdrawalStore struct {
	createErr   error
	created     *models.Withdrawal
	pending     []models.Withdrawal
	completed   []int64
	completeErr error
	total       int64
}

func (f *fakeWithdrawalStore) Create(ctx context.Context, userId int64, username, itemName string, itemValue int64, tref string) (*models.Withdrawal, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &models.Withdrawal{
		ID:        42,
		UserId:    userId,
		Username:  username,
		ItemName:  itemName,
		ItemValue: itemValue,
		Status:    models.WithdrawalStatusPending,
		CreatedAt: time.Now(),
	}
	return f.created, nil
}

func (f *fakeWithdrawalStore) ListPending(ctx context.Context) ([]models.Withdrawal, error) {
	return f.pending, nil
}

func (f *fakeWithdrawalStore) Complete(ctx context.Context, id int64) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = append(f.completed, id)
	return nil
}

func (f *fakeWithdrawalStore) CountAll(ctx context.Context) (int64, error) {
	return f.total, nil
}

type fakeTransactionStore struct {
	txs       []models.Transaction
	lastLimit int
}

func (f *fakeTransactionStore) ListRecentByUser(ctx context.Context, userId int64, limit int) ([]models.Transaction, error) {
	f.lastLimit = limit
	return f.txs, nil
}

type recordingPublisher struct {
	withdrawals []comm.WithdrawalCreated
	credits     []comm.StarsCredited
}

func (p *recordingPublisher) WithdrawalCreated(ev comm.WithdrawalCreated) {
	p.withdrawals = append(p.withdrawals, ev)
}

func (p *recordingPublisher) StarsCredited(ev comm.StarsCredited) {
	p.credits = append(p.credits, ev)
}

func TestRegisterDefaultsUsername(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeTransactionStore{})

	err := svc.Register(context.Background(), 7, "")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", users.created[7])
}

func TestRegisterIsIdempotent(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeTransactionStore{})

	require.NoError(t, svc.Register(context.Background(), 7, "alice"))
	require.NoError(t, svc.Register(context.Background(), 7, "renamed"))

	assert.Equal(t, "alice", users.created[7])
}

func TestTransactionsUsesHistoryLimit(t *testing.T) {
	txs := &fakeTransactionStore{}
	svc := NewUserService(newFakeUserStore(), txs)

	_, err := svc.Transactions(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, transactionHistoryLimit, txs.lastLimit)
}

func TestDailyBonusDrawsFromTable(t *testing.T) {
	games := &fakeGameStore{balance: 100}
	svc := NewGameService(games)

	result, err := svc.DailyBonus(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, games.lastClaim)

	assert.Equal(t, DailyBonusCooldown, games.lastClaim.cooldown)
	assert.NotEmpty(t, games.lastClaim.tref)
	assert.Contains(t, []int64{5, 10, 25, 50}, result.Amount)
	assert.Equal(t, 100+result.Amount, result.NewBalance)
}

func TestDailyBonusCooldownPassesThrough(t *testing.T) {
	cooldownErr := &store.CooldownActiveError{Remaining: 3 * time.Hour}
	svc := NewGameService(&fakeGameStore{claimErr: cooldownErr})

	_, err := svc.DailyBonus(context.Background(), 7)

	var ce *store.CooldownActiveError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3*time.Hour, ce.Remaining)
}

func TestSpinRouletteChargesFixedCost(t *testing.T) {
	games := &fakeGameStore{balance: 100}
	svc := NewGameService(games)

	result, err := svc.SpinRoulette(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, games.lastSpin)

	assert.Equal(t, int64(draw.SpinCost), games.lastSpin.cost)
	assert.Equal(t, result.Item.Name, games.lastSpin.itemName)
	assert.Equal(t, result.Item.Value, games.lastSpin.itemValue)
	assert.Equal(t, int64(100-draw.SpinCost), result.NewBalance)
}

func TestSpinRouletteInsufficientBalance(t *testing.T) {
	svc := NewGameService(&fakeGameStore{spinErr: store.ErrInsufficientBalance})

	_, err := svc.SpinRoulette(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrInsufficientBalance)
}

func TestWithdrawalRequestPublishesEvent(t *testing.T) {
	withdrawals := &fakeWithdrawalStore{}
	pub := &recordingPublisher{}
	svc := NewWithdrawalService(withdrawals, &fakeInventoryStore{}, pub)

	w, err := svc.Request(context.Background(), 7, "alice", "Bear", 15)
	require.NoError(t, err)

	require.Len(t, pub.withdrawals, 1)
	assert.Equal(t, w.ID, pub.withdrawals[0].ID)
	assert.Equal(t, int64(7), pub.withdrawals[0].UserID)
	assert.Equal(t, "Bear", pub.withdrawals[0].ItemName)
	assert.Equal(t, int64(15), pub.withdrawals[0].ItemValue)
}

func TestWithdrawalRequestNoEventOnFailure(t *testing.T) {
	withdrawals := &fakeWithdrawalStore{createErr: store.ErrItemNotFound}
	pub := &recordingPublisher{}
	svc := NewWithdrawalService(withdrawals, &fakeInventoryStore{}, pub)

	_, err := svc.Request(context.Background(), 7, "alice", "Bear", 15)

	assert.ErrorIs(t, err, store.ErrItemNotFound)
	assert.Empty(t, pub.withdrawals)
}

func TestWithdrawalRequestDefaultsUsername(t *testing.T) {
	withdrawals := &fakeWithdrawalStore{}
	svc := NewWithdrawalService(withdrawals, &fakeInventoryStore{}, &recordingPublisher{})

	w, err := svc.Request(context.Background(), 7, "", "Bear", 15)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", w.Username)
}

func TestAddStarsPublishesCredit(t *testing.T) {
	users := newFakeUserStore()
	users.users[7] = &models.User{UserId: 7, Balance: 10}
	pub := &recordingPublisher{}
	svc := NewAdminService(users, &fakeWithdrawalStore{}, pub)

	balance, err := svc.AddStars(context.Background(), 7, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	require.Len(t, pub.credits, 1)
	assert.Equal(t, comm.StarsCredited{UserID: 7, Amount: 90, NewBalance: 100}, pub.credits[0])
}

func TestAddStarsUnknownUser(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewAdminService(newFakeUserStore(), &fakeWithdrawalStore{}, pub)

	_, err := svc.AddStars(context.Background(), 7, 90)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.Empty(t, pub.credits)
}

func TestAdminStats(t *testing.T) {
	users := newFakeUserStore()
	users.userCount = 12
	svc := NewAdminService(users, &fakeWithdrawalStore{total: 3}, &recordingPublisher{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{TotalUsers: 12, TotalWithdrawals: 3}, stats)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeTransactionStore{})

	_, err := svc.GetUser(context.Background(), 999)
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}
