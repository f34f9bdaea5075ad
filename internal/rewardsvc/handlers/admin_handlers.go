package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/starglow/casino-services/internal/rewardsvc/store"

	log "github.com/sirupsen/logrus"
)

type withdrawRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ItemName  string `json:"item_name"`
	ItemValue int64  `json:"item_value"`
}

func (h *Handler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.UserID == 0 || req.ItemName == "" || req.ItemValue == 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	withdrawal, err := h.withdrawals.Request(r.Context(), req.UserID, req.Username, req.ItemName, req.ItemValue)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrItemNotFound):
			respondError(w, http.StatusBadRequest, "Item not found in inventory")
		default:
			log.Errorf("Error in WithdrawHandler: %s", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Infof("Withdrawal created: ID %d - User %d (@%s) - %s (%d stars)",
		withdrawal.ID, req.UserID, req.Username, req.ItemName, req.ItemValue)
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "withdrawal_created",
		"id":      withdrawal.ID,
		"message": "Withdrawal request created! An administrator will contact you.",
	})
}

func (h *Handler) AdminWithdrawalsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.withdrawals.ListPending(r.Context())
	if err != nil {
		log.Errorf("Error in AdminWithdrawalsHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

type addStarsRequest struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

func (h *Handler) AdminAddStarsHandler(w http.ResponseWriter, r *http.Request) {
	var req addStarsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.UserID == 0 || req.Amount == 0 {
		respondError(w, http.StatusBadRequest, "User ID and amount are required")
		return
	}

	balance, err := h.admin.AddStars(r.Context(), req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrInsufficientBalance):
			respondError(w, http.StatusBadRequest, "Insufficient balance")
		default:
			log.Errorf("Error in AdminAddStarsHandler: %s", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Infof("Stars added by admin: User %d - %d stars", req.UserID, req.Amount)
	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "success",
		"new_balance": balance,
		"message":     fmt.Sprintf("Added %d stars to user %d", req.Amount, req.UserID),
	})
}

func (h *Handler) AdminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		log.Errorf("Error in AdminStatsHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"total_users":       stats.TotalUsers,
		"total_withdrawals": stats.TotalWithdrawals,
		"server_time":       time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) AdminCompleteWithdrawalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.withdrawals.Complete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrWithdrawalNotFound) {
			respondError(w, http.StatusNotFound, "Withdrawal not found")
			return
		}
		log.Errorf("Error in AdminCompleteWithdrawalHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Infof("Withdrawal %d marked as completed", id)
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Withdrawal completed",
	})
}
