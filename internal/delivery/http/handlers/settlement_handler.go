package handlers

import (
	"log/slog"
	"net/http"

	"github.com/giftora/settlement-service/internal/delivery/http/middleware"
	"github.com/giftora/settlement-service/internal/usecase"
)

type SettlementHandler struct {
	settlementUsecase usecase.SettlementUsecase
}

func NewSettlementHandler(settlementUsecase usecase.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{settlementUsecase: settlementUsecase}
}

// Run triggers one settlement pass over the currently eligible vendor orders.
// The response is always a best-effort summary; per-item failures end up in
// the errors list, never in the HTTP status.
func (h *SettlementHandler) Run(w http.ResponseWriter, r *http.Request) {
	slog.Info("settlement pass triggered", "user_id", middleware.UserID(r.Context()))

	result, err := h.settlementUsecase.RunSettlementPass(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
