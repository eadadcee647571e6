package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain"
)

const (
	actorKey                = "actor"
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
)

// Authenticator resolves a bearer token to the acting user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

// Authenticate requires a valid bearer token and stores the actor in the context.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader(AuthorizationHeaderKey))
		if len(fields) != 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			abort(c, http.StatusUnauthorized, "unauthorized", "missing or malformed authorization header")
			return
		}
		actor, err := auth.Authenticate(c.Request.Context(), fields[1])
		if err != nil {
			if domain.IsUnauthorized(err) {
				abort(c, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}
			_ = c.Error(err)
			abort(c, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		SetActor(c, actor)
		c.Next()
	}
}

func SetActor(c *gin.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the authenticated actor, if any.
func GetActor(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
