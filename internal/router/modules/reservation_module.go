package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/container"
	handlers "github.com/plateforme/services-api/internal/interface/http"
	"github.com/plateforme/services-api/internal/interface/middleware"
)

type ReservationModule struct {
	Handler *handlers.ReservationHandler
}

func NewReservationModule(h *handlers.ReservationHandler) *ReservationModule {
	return &ReservationModule{Handler: h}
}

// Every reservation route requires a session; scoping down to the caller's
// own bookings happens in the service layer.
func (m *ReservationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/reservations")
	auth.Use(middleware.RequireAuth())
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByActor()),
	)
	{
		auth.GET("/", m.Handler.List)
		auth.POST("/", m.Handler.Create)
		auth.GET("/:id/", m.Handler.Get)
		auth.PUT("/:id/", m.Handler.Update)
		auth.PATCH("/:id/", m.Handler.Update)
		auth.DELETE("/:id/", m.Handler.Delete)
	}
}
