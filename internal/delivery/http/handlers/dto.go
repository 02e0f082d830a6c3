package handlers

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type CommissionResponse struct {
	CommissionPercent string `json:"commission_percent"`
}

type UpdateCommissionRequest struct {
	CommissionPercent string `json:"commission_percent"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, code, msg string) {
	writeJSON(w, statusCode, ErrorResponse{Error: code, Message: msg})
}

// writeUsecaseError maps the grpc status vocabulary used by the usecases onto
// HTTP statuses.
func writeUsecaseError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	switch st.Code() {
	case codes.InvalidArgument:
		writeError(w, http.StatusBadRequest, "invalid_argument", st.Message())
	case codes.NotFound:
		writeError(w, http.StatusNotFound, "not_found", st.Message())
	case codes.FailedPrecondition:
		writeError(w, http.StatusConflict, "failed_precondition", st.Message())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", st.Message())
	}
}
