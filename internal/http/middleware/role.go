package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain"
)

// RequireStaff lets through active staff and superusers.
// Authenticate must run first.
func RequireStaff() gin.HandlerFunc {
	return require(func(a domain.Actor) bool { return a.IsStaff || a.IsSuperuser }, "staff access required")
}

// RequireSuperuser lets through superusers only.
func RequireSuperuser() gin.HandlerFunc {
	return require(func(a domain.Actor) bool { return a.IsSuperuser }, "superuser access required")
}

func require(allowed func(domain.Actor) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.Authenticated() {
			abort(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		if !allowed(actor) {
			abort(c, http.StatusForbidden, "forbidden", message)
			return
		}
		c.Next()
	}
}
