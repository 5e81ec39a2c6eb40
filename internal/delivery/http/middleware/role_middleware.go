package middleware

import (
	"net/http"

	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from the
// verified JWT claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireAdminOrPantry gates the pantry dashboard endpoints
func RequireAdminOrPantry(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RolePantry)(next)
}

// RequireAdminOrDelivery gates the delivery dashboard endpoints
func RequireAdminOrDelivery(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleDelivery)(next)
}
