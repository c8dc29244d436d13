package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/response"
)

func claimRole(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// RequireAdmin requires the admin role. Impersonation tokens carry the
// borrowed role in the role claim, so an admin acting as an intern is an
// intern here.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimRole(r) != user.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires a supervising role (service head or professional).
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := user.Profile{Role: claimRole(r)}
		if !role.IsStaff() {
			response.Forbidden(w, "Staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaffOrAdmin admits supervisors and admins.
func RequireStaffOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := claimRole(r)
		if role != user.RoleAdmin && !(user.Profile{Role: role}).IsStaff() {
			response.Forbidden(w, "Staff or admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireServiceHead requires the service head role.
func RequireServiceHead(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimRole(r) != user.RoleServiceHead {
			response.Forbidden(w, "Service head access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireIntern requires the intern role.
func RequireIntern(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimRole(r) != user.RoleIntern {
			response.Forbidden(w, "Intern access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
