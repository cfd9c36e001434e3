package middleware

import (
	"net/http"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// RequireRole rejects callers below min with 403. Anonymous callers get 401.
// Services still run their own access checks; this only guards whole route groups.
func RequireRole(min domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := access.IdentityFromCtx(r.Context())
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}
			if !id.Role.AtLeast(min) {
				writeError(w, http.StatusForbidden, "FORBIDDEN", min.String()+" access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
