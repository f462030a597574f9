package middleware

import (
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminRoleRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminRoleRequired)
			return
		}

		if role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires staff role
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStaffRoleRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrStaffRoleRequired)
			return
		}

		if role != string(user.RoleStaff) {
			response.HandleError(w, user.ErrStaffRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
