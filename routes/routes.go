package routes

import (
	"time"

	"tourbook/handlers"
	"tourbook/middleware"
	"tourbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func authenticated(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.AuthCache)
}

func adminOnly() gin.HandlerFunc {
	return middleware.RequireRole(models.RoleAdmin)
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/forgot-password", hb.Auth.ForgotPasswordHandler)
		api.POST("/reset-password", hb.Auth.ResetPasswordHandler)

		protected := api.Group("")
		protected.Use(authenticated(hb))
		protected.GET("/me", hb.Auth.MeHandler)
		protected.POST("/logout", hb.Auth.LogoutHandler)
		protected.PUT("/:id", hb.Auth.UpdateUserHandler)
	}
}

// RegisterCatalogRoutes registers package, group and tag endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	packages := r.Group("/api/packages")
	{
		packages.GET("", hb.Catalog.ListPackagesHandler)
		packages.GET("/:id", authenticated(hb), hb.Catalog.GetPackageHandler)

		admin := packages.Group("")
		admin.Use(authenticated(hb), adminOnly())
		admin.POST("", hb.Catalog.CreatePackageHandler)
		admin.PUT("/:id", hb.Catalog.UpdatePackageHandler)
		admin.DELETE("/:id", hb.Catalog.DeletePackageHandler)
		admin.GET("/group/:groupId", hb.Catalog.PackagesByGroupHandler)
	}

	groups := r.Group("/api/groups")
	{
		groups.GET("", hb.Catalog.ListGroupsHandler)
		groups.GET("/:id", hb.Catalog.GetGroupHandler)

		admin := groups.Group("")
		admin.Use(authenticated(hb), adminOnly())
		admin.POST("", hb.Catalog.CreateGroupHandler)
		admin.PUT("/:id", hb.Catalog.UpdateGroupHandler)
		admin.DELETE("/:id", hb.Catalog.DeleteGroupHandler)
	}

	r.GET("/api/tags", authenticated(hb), hb.Catalog.ListTagsHandler)
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(authenticated(hb))
		bookingGroup.POST("/create-order", hb.Bookings.CreateOrderHandler)
		bookingGroup.POST("/confirm-payment", hb.Bookings.ConfirmPaymentHandler)
		bookingGroup.GET("/mine", hb.Bookings.MyBookingsHandler)
		bookingGroup.POST("/pay-remaining/:id", hb.Bookings.PayRemainingHandler)
		bookingGroup.GET("/admin/all", adminOnly(), hb.Bookings.AllBookingsHandler)
		bookingGroup.GET("/:id", hb.Bookings.GetBookingHandler)
		bookingGroup.GET("/:id/receipt", hb.Bookings.ReceiptHandler)
	}
}

// RegisterRecordsRoutes registers inquiry and review endpoints.
func RegisterRecordsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	inquiries := r.Group("/api/inquiries")
	{
		inquiries.POST("", hb.Records.CreateInquiryHandler)
		inquiries.GET("", authenticated(hb), adminOnly(), hb.Records.ListInquiriesHandler)
		inquiries.DELETE("/:id", authenticated(hb), adminOnly(), hb.Records.DeleteInquiryHandler)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.GET("", hb.Records.ListReviewsHandler)
		reviews.POST("", authenticated(hb), adminOnly(), hb.Records.CreateReviewHandler)
		reviews.DELETE("/:id", authenticated(hb), adminOnly(), hb.Records.DeleteReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(authenticated(hb), adminOnly())
		adminGroup.GET("/users", hb.Auth.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRecordsRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
