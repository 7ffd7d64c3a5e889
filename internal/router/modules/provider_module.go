package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/container"
	handlers "github.com/plateforme/services-api/internal/interface/http"
	"github.com/plateforme/services-api/internal/interface/middleware"
)

type ProviderModule struct {
	Handler *handlers.ProviderHandler
}

func NewProviderModule(h *handlers.ProviderHandler) *ProviderModule {
	return &ProviderModule{Handler: h}
}

func (m *ProviderModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP())
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.GET("/providers/", m.Handler.List)
	rg.POST("/providers/", registerLimiter, m.Handler.Create)
	rg.GET("/providers/search", searchLimiter, m.Handler.Search)

	auth := rg.Group("/providers")
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
