package router

import (
	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/internal/container"
	pginfra "github.com/plateforme/services-api/internal/infrastructure/postgres"
	handlers "github.com/plateforme/services-api/internal/interface/http"
	"github.com/plateforme/services-api/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	clients := pginfra.NewClientRepository(pool)
	providers := pginfra.NewProviderRepository(pool)
	reservations := pginfra.NewReservationRepository(pool)

	authSvc := application.NewAuthService(users, clients, providers, container.GetSessions(), logger)
	clientSvc := application.NewClientService(clients, logger)
	providerSvc := application.NewProviderService(providers, container.GetES(), container.GetConfig().ESProvidersIndex, logger)
	reservationSvc := application.NewReservationService(reservations, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, container.GetCookies(), logger)))
	r.Add(modules.NewClientModule(handlers.NewClientHandler(clientSvc, logger)))
	r.Add(modules.NewProviderModule(handlers.NewProviderHandler(providerSvc, logger)))
	r.Add(modules.NewReservationModule(handlers.NewReservationHandler(reservationSvc, logger)))
}
