package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/container"
	handlers "github.com/plateforme/services-api/internal/interface/http"
	"github.com/plateforme/services-api/internal/interface/middleware"
)

type ClientModule struct {
	Handler *handlers.ClientHandler
}

func NewClientModule(h *handlers.ClientHandler) *ClientModule {
	return &ClientModule{Handler: h}
}

func (m *ClientModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP())

	// The directory listing and registration are open.
	rg.GET("/clients/", m.Handler.List)
	rg.POST("/clients/", registerLimiter, m.Handler.Create)

	auth := rg.Group("/clients")
	auth.Use(middleware.RequireAuth())
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByActor()),
	)
	{
		auth.GET("/:id/", m.Handler.Get)
		auth.PUT("/:id/", m.Handler.Update)
		auth.PATCH("/:id/", m.Handler.Update)
		auth.DELETE("/:id/", m.Handler.Delete)
	}
}
