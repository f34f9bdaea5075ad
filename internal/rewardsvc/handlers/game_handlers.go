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

type userIdRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *Handler) DailyBonusHandler(w http.ResponseWriter, r *http.Request) {
	var req userIdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	result, err := h.games.DailyBonus(r.Context(), req.UserID)
	if err != nil {
		var cooldown *store.CooldownActiveError
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.As(err, &cooldown):
			hours := int(cooldown.Remaining / time.Hour)
			minutes := int(cooldown.Remaining % time.Hour / time.Minute)
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf("Bonus already claimed. Next available in %dh %dm", hours, minutes))
		default:
			log.Errorf("Error in DailyBonusHandler: %s", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Infof("Daily bonus given: User %d - %d stars", req.UserID, result.Amount)
	respondJSON(w, http.StatusOK, map[string]any{
		"bonus":       result.Amount,
		"new_balance": result.NewBalance,
		"message":     fmt.Sprintf("🎁 You received %d stars!", result.Amount),
	})
}

func (h *Handler) SpinRouletteHandler(w http.ResponseWriter, r *http.Request) {
	var req userIdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	result, err := h.games.SpinRoulette(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrInsufficientBalance):
			respondError(w, http.StatusBadRequest, "Insufficient balance")
		default:
			log.Errorf("Error in SpinRouletteHandler: %s", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Infof("Roulette spin: User %d - Won %s (%d stars)", req.UserID, result.Item.Name, result.Item.Value)
	respondJSON(w, http.StatusOK, map[string]any{
		"won_item":    result.Item,
		"new_balance": result.NewBalance,
		"cost":        result.Cost,
		"message": fmt.Sprintf("🎉 Congratulations! You won %s (%d⭐)",
			result.Item.Name, result.Item.Value),
	})
}
