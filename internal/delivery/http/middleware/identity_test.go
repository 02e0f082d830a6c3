package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedEndpoint(t *testing.T, roles ...string) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Identity(RequireRole(roles...)(inner))
}

func TestRequireRole(t *testing.T) {
	testCases := []struct {
		name       string
		userID     string
		userRole   string
		roles      []string
		wantStatus int
	}{
		{"missing headers", "", "", []string{"admin"}, http.StatusUnauthorized},
		{"missing role header", "user-1", "", []string{"admin"}, http.StatusUnauthorized},
		{"wrong role", "user-1", "vendor", []string{"admin"}, http.StatusForbidden},
		{"matching role", "user-1", "admin", []string{"admin"}, http.StatusOK},
		{"any of several roles", "user-1", "vendor", []string{"vendor", "admin"}, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/payouts", nil)
			if tc.userID != "" {
				req.Header.Set("X-User-ID", tc.userID)
			}
			if tc.userRole != "" {
				req.Header.Set("X-User-Role", tc.userRole)
			}

			rec := httptest.NewRecorder()
			protectedEndpoint(t, tc.roles...).ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestIdentityPopulatesContext(t *testing.T) {
	var gotID, gotRole string
	handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserID(r.Context())
		gotRole = UserRole(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "vendor-42")
	req.Header.Set("X-User-Role", "vendor")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "vendor-42", gotID)
	assert.Equal(t, "vendor", gotRole)
}
