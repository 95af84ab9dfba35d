package api

import (
	"github.com/memorialapp/memorial-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth      *service.AuthService
	Session   *service.SessionService
	Works     *service.WorksService
	Favorites *service.FavoritesService
	Tributes  *service.TributesService
	Prayers   *service.PrayersService
}
