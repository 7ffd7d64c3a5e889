package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/infrastructure/session"
	"github.com/plateforme/services-api/pkg/helpers"
	"github.com/plateforme/services-api/pkg/response"
)

const ctxActorKey = "actor"

// Session resolves the session cookie into an Actor once per request and
// stores it on the context. Requests without a valid session continue as
// anonymous; route groups decide what anonymous callers may do.
func Session(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			c.Set(ctxActorKey, policy.Anonymous())
			c.Next()
			return
		}
		data, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Set(ctxActorKey, policy.Anonymous())
			c.Next()
			return
		}
		c.Set(ctxActorKey, data.Actor())
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries an authenticated
// actor.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).Authenticated() {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor resolved by Session, or the anonymous actor
// when the middleware did not run.
func ActorFrom(c *gin.Context) policy.Actor {
	if v, ok := c.Get(ctxActorKey); ok {
		if a, ok := v.(policy.Actor); ok {
			return a
		}
	}
	return policy.Anonymous()
}
