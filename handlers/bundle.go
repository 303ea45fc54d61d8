package handlers

import (
	userRepoPkg "tourbook/database/repository/user"
	"tourbook/middleware"
)

// HandlerBundle groups the endpoint handlers and what the routes need to
// build their middleware.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache middleware.TokenHashCache

	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Bookings *BookingHandler
	Records  *RecordsHandler
}
