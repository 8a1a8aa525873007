package middleware

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/person"
)

// RequireRole gates a route by reporting-line seniority: the viewer's
// role must rank at least as high as required. Viewers with an
// unrecognized role are rejected rather than guessed at.
func RequireRole(required person.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role, ok := person.ParseRole(user.Role)
			if !ok || !role.CanAccess(required) {
				slog.Warn("access denied: role below required rank",
					"user_id", user.ID,
					"role", user.Role,
					"required_role", required)
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
