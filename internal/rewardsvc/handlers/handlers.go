package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/starglow/casino-services/internal/rewardsvc/models"
	"github.com/starglow/casino-services/internal/rewardsvc/service"

	"github.com/go-chi/jwtauth"
)

// Service interfaces the endpoints depend on, implemented by the service
// package and stubbed in tests.

type UserService interface {
	Register(ctx context.Context, userId int64, username string) error
	GetUser(ctx context.Context, userId int64) (*models.User, error)
	Transactions(ctx context.Context, userId int64) ([]models.Transaction, error)
}

type GameService interface {
	DailyBonus(ctx context.Context, userId int64) (*service.DailyBonusResult, error)
	SpinRoulette(ctx context.Context, userId int64) (*service.SpinResult, error)
	Stats(ctx context.Context, userId int64) (*models.GameStats, error)
}

type WithdrawalService interface {
	Inventory(ctx context.Context, userId int64) ([]models.InventoryItem, error)
	Request(ctx context.Context, userId int64, username, itemName string, itemValue int64) (*models.Withdrawal, error)
	ListPending(ctx context.Context) ([]models.Withdrawal, error)
	Complete(ctx context.Context, id int64) error
}

type AdminService interface {
	AddStars(ctx context.Context, userId int64, amount int64) (int64, error)
	Stats(ctx context.Context) (*service.AdminStats, error)
}

type Handler struct {
	tokenAuth   *jwtauth.JWTAuth
	users       UserService
	games       GameService
	withdrawals WithdrawalService
	admin       AdminService
}

// NewHandler wires the endpoints over the given services. The secret
// signs and verifies the admin capability tokens.
func NewHandler(secret string, users UserService, games GameService, withdrawals WithdrawalService, admin AdminService) *Handler {
	return &Handler{
		tokenAuth:   jwtauth.New("HS256", []byte(secret), nil),
		users:       users,
		games:       games,
		withdrawals: withdrawals,
		admin:       admin,
	}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Star Casino Rewards API",
		"version": "1.0.0",
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
