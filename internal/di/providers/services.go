package providers

import (
	"github.com/samber/do/v2"

	"github.com/memorialapp/memorial-server/internal/auth"
	"github.com/memorialapp/memorial-server/internal/config"
	"github.com/memorialapp/memorial-server/internal/logger"
	"github.com/memorialapp/memorial-server/internal/service"
)

// ProvideSessionService provides the session management service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	sessionService := do.MustInvoke[*service.SessionService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, sessionService, log.Logger), nil
}

// ProvideWorksService provides the catalog service.
func ProvideWorksService(i do.Injector) (*service.WorksService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	firecrawlHandle := do.MustInvoke[*FirecrawlHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWorksService(
		storeHandle.Store,
		firecrawlHandle.Client,
		cfg.Firecrawl.Query,
		cfg.Firecrawl.Limit,
		log.Logger,
	), nil
}

// ProvideFavoritesService provides the favorites service.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(storeHandle.Store, log.Logger), nil
}

// ProvideTributesService provides the tribute wall service.
func ProvideTributesService(i do.Injector) (*service.TributesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTributesService(storeHandle.Store, log.Logger), nil
}

// ProvidePrayersService provides the prayer request service.
func ProvidePrayersService(i do.Injector) (*service.PrayersService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPrayersService(storeHandle.Store, log.Logger), nil
}
