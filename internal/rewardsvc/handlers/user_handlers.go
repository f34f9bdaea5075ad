package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/starglow/casino-services/internal/rewardsvc/models"
	"github.com/starglow/casino-services/internal/rewardsvc/store"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

type registerRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := h.users.Register(r.Context(), req.UserID, req.Username); err != nil {
		log.Errorf("Error in RegisterHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Infof("User registered: %d - %s", req.UserID, req.Username)
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "User registered",
	})
}

type userResponse struct {
	models.User
	Stats *models.GameStats `json:"stats"`
}

func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userId, ok := urlParamInt64(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), userId)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Errorf("Error in GetUserHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	stats, err := h.games.Stats(r.Context(), userId)
	if err != nil {
		log.Errorf("Error in GetUserHandler stats: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, userResponse{User: *user, Stats: stats})
}

func (h *Handler) UserGameStatsHandler(w http.ResponseWriter, r *http.Request) {
	userId, ok := urlParamInt64(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.games.Stats(r.Context(), userId)
	if err != nil {
		log.Errorf("Error in UserGameStatsHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) UserTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	userId, ok := urlParamInt64(w, r, "id")
	if !ok {
		return
	}

	items, err := h.users.Transactions(r.Context(), userId)
	if err != nil {
		log.Errorf("Error in UserTransactionsHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) InventoryHandler(w http.ResponseWriter, r *http.Request) {
	userId, ok := urlParamInt64(w, r, "id")
	if !ok {
		return
	}

	items, err := h.withdrawals.Inventory(r.Context(), userId)
	if err != nil {
		log.Errorf("Error in InventoryHandler: %s", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func urlParamInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
