package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/", h.RootHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Post("/register", h.RegisterHandler)
		r.Get("/user/{id}", h.GetUserHandler)
		r.Get("/user/stats/{id}", h.UserGameStatsHandler)
		r.Get("/user/transactions/{id}", h.UserTransactionsHandler)
		r.Post("/daily-bonus", h.DailyBonusHandler)
		r.Post("/spin-roulette", h.SpinRouletteHandler)
		r.Get("/inventory/{id}", h.InventoryHandler)
		r.Post("/withdraw", h.WithdrawHandler)

		// Admin surface requires the capability token minted by the bot.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/admin/withdrawals", h.AdminWithdrawalsHandler)
			r.Post("/admin/add-stars", h.AdminAddStarsHandler)
			r.Get("/admin/stats", h.AdminStatsHandler)
			r.Post("/admin/complete-withdrawal/{id}", h.AdminCompleteWithdrawalHandler)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
