package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/giftora/settlement-service/internal/usecase"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase}
}

func (h *SettingsHandler) GetCommission(w http.ResponseWriter, r *http.Request) {
	percent, err := h.settingsUsecase.GetCommissionPercent()
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CommissionResponse{CommissionPercent: percent.String()})
}

func (h *SettingsHandler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	var req UpdateCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	percent, err := decimal.NewFromString(req.CommissionPercent)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_commission_percent", err.Error())
		return
	}

	if err := h.settingsUsecase.UpdateCommissionPercent(percent); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CommissionResponse{CommissionPercent: percent.String()})
}
