package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
	"github.com/hazari-app/hazari-backend-go/internal/handler/http/response"
)

// RequireContractor requires contractor role
func RequireContractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrContractorAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrContractorAccessRequired)
			return
		}

		if user.Role(roleStr) != user.RoleContractor {
			response.HandleError(w, user.ErrContractorAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireLabour requires labour role
func RequireLabour(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrLabourAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrLabourAccessRequired)
			return
		}

		if user.Role(roleStr) != user.RoleLabour {
			response.HandleError(w, user.ErrLabourAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
