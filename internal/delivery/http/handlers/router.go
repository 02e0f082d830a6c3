package handlers

import (
	"net/http"

	"github.com/giftora/settlement-service/internal/delivery/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	settlementHandler *SettlementHandler,
	payoutHandler *PayoutHandler,
	settingsHandler *SettingsHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Identity)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole("admin"))
			r.Post("/settlement/run", settlementHandler.Run)
			r.Get("/payouts", payoutHandler.AdminPayouts)
			r.Get("/settings/commission", settingsHandler.GetCommission)
			r.Put("/settings/commission", settingsHandler.UpdateCommission)
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Use(middleware.RequireRole("vendor", "admin"))
			r.Get("/payouts", payoutHandler.VendorPayouts)
			r.Get("/orders/{id}", payoutHandler.VendorOrder)
		})
	})

	return r
}
