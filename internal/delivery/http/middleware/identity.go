package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const (
	contextKeyUserID   contextKey = "user_id"
	contextKeyUserRole contextKey = "user_role"
)

// Identity trusts the upstream gateway: authentication happens before this
// service is reached, and the verdict arrives as headers.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextKeyUserID, r.Header.Get("X-User-ID"))
		ctx = context.WithValue(ctx, contextKeyUserRole, r.Header.Get("X-User-Role"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserID(r.Context())
			userRole := UserRole(r.Context())
			if userID == "" || userRole == "" {
				writeForbidden(w, http.StatusUnauthorized, "identity headers are required")
				return
			}
			for _, role := range roles {
				if userRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeForbidden(w, http.StatusForbidden, "insufficient role")
		})
	}
}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyUserID).(string)
	return id
}

func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(contextKeyUserRole).(string)
	return role
}

func writeForbidden(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
