package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(nil),
		Catalog:  handlers.NewCatalogHandler(nil),
		Bookings: handlers.NewBookingHandler(nil),
		Records:  handlers.NewRecordsHandler(nil),
	})
	return r
}

func TestBookingRoutesRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, route := range newRouter().Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"POST /api/bookings/create-order",
		"POST /api/bookings/confirm-payment",
		"GET /api/bookings/mine",
		"POST /api/bookings/pay-remaining/:id",
		"GET /api/bookings/:id",
		"GET /api/bookings/:id/receipt",
		"GET /api/bookings/admin/all",
		"POST /api/auth/signup",
		"POST /api/auth/login",
		"GET /api/admin/users",
		"GET /api/packages",
		"POST /api/groups",
		"GET /api/tags",
		"POST /api/inquiries",
		"GET /api/reviews",
		"GET /health",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestProtectedRoutesRejectAnonymousCallers(t *testing.T) {
	r := newRouter()
	for _, path := range []string{"/api/bookings/mine", "/api/admin/users", "/api/tags"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
