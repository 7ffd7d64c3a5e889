package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/container"
	handlers "github.com/plateforme/services-api/internal/interface/http"
	"github.com/plateforme/services-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints take the tightest limits in the app.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/login/", loginLimiter, m.Handler.Login)
	rg.POST("/logout/", m.Handler.Logout)
}
