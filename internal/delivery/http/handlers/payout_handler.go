package handlers

import (
	"net/http"
	"strconv"

	"github.com/giftora/settlement-service/internal/delivery/http/middleware"
	"github.com/giftora/settlement-service/internal/usecase"
	payoutdto "github.com/giftora/settlement-service/internal/usecase/dto/payout"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler struct {
	payoutUsecase usecase.PayoutUsecase
}

func NewPayoutHandler(payoutUsecase usecase.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUsecase: payoutUsecase}
}

// VendorPayouts returns the caller's pending and received payout ledger.
func (h *PayoutHandler) VendorPayouts(w http.ResponseWriter, r *http.Request) {
	vendorID := middleware.UserID(r.Context())

	output, err := h.payoutUsecase.GetVendorPayouts(vendorID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// AdminPayouts returns the cross-vendor listing with search, name and status
// filters plus offset pagination.
func (h *PayoutHandler) AdminPayouts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	output, err := h.payoutUsecase.GetAdminPayouts(&payoutdto.AdminPayoutsInput{
		Search:     query.Get("search"),
		StoreName:  query.Get("store_name"),
		VendorName: query.Get("vendor_name"),
		Status:     query.Get("status"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// VendorOrder returns one vendor order with its settlement state. Vendors can
// only read their own rows; admins can read any.
func (h *PayoutHandler) VendorOrder(w http.ResponseWriter, r *http.Request) {
	vendorOrderID := chi.URLParam(r, "id")
	if vendorOrderID == "" {
		writeError(w, http.StatusBadRequest, "vendor_order_id_required", "")
		return
	}

	output, err := h.payoutUsecase.GetVendorOrder(vendorOrderID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	if middleware.UserRole(r.Context()) != "admin" && output.VendorID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden", "vendor order belongs to another vendor")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
