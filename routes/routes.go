package routes

import (
	"net/http"
	"strings"
	"time"

	"keshwala/handlers"
	"keshwala/middleware"
	"keshwala/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the page and its form posts.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle, formLimit gin.HandlerFunc) {
	r.GET("/", hb.IndexHandler)
	r.StaticFS("/static", web.Static())

	posts := r.Group("")
	posts.Use(formLimit)
	{
		posts.POST("/booking", hb.BookingHandler)
		posts.POST("/contact", hb.ContactHandler)
		posts.POST("/auth/signin", hb.SignInHandler)
		posts.POST("/auth/signup", hb.SignUpHandler)
		posts.POST("/auth/reset", hb.ResetHandler)
	}
}

// RegisterAuthRoutes registers session auth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, formLimit gin.HandlerFunc) {
	api := r.Group("/api/auth")
	{
		api.GET("/me", hb.MeHandler)
		api.GET("/events", hb.AuthEventsHandler)
		api.POST("/signout", hb.SignOutHandler)
		api.POST("/provider", formLimit, hb.ProviderHandler)
	}
}

// RegisterFormRoutes registers form instance state endpoints behind their
// own per-IP limit, separate from the form posts.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle, pollLimit gin.HandlerFunc) {
	api := r.Group("/api/forms")
	api.Use(pollLimit)
	{
		api.GET("/:kind/:id", hb.FormStatusHandler)
		api.POST("/:kind/:id/dismiss", hb.FormDismissHandler)
	}
}

// RegisterCatalogRoutes registers catalog listings and the visitor's bookings.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ServicesHandler)
		api.GET("/wigs", hb.WigsHandler)
		api.GET("/testimonials", hb.TestimonialsHandler)
		api.GET("/blog", hb.BlogPostsHandler)
		api.GET("/categories", hb.CategoriesHandler)

		// Protected routes (Require a signed-in session)
		api.GET("/bookings/mine", middleware.RequireUser(hb.AuthService), hb.MyBookingsHandler)
	}
}

// RegisterStorageRoutes registers upload endpoints and the in-process file server.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.RequireUser(hb.AuthService))
		api.POST("/images", hb.UploadImageHandler)
		api.DELETE("", hb.DeleteFileHandler)
	}
	r.GET("/files/*path", hb.ServeFileHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found", "details": c.Request.URL.Path})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// Form posts share a per-IP limit of maxPerMin requests per minute, and the
// form state polls get a limit of the same size.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowOrigins []string, maxPerMin int) {
	r.Use(cors.New(CORSConfig(allowOrigins)))

	formLimit := middleware.RateLimitMiddleware(maxPerMin)
	pollLimit := middleware.RateLimitMiddleware(maxPerMin)

	RegisterPageRoutes(r, hb, formLimit)
	RegisterAuthRoutes(r, hb, formLimit)
	RegisterFormRoutes(r, hb, pollLimit)
	RegisterCatalogRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}

// CORSConfig allows the given origins with credentials. Without an explicit
// origin any site may read the public API, but never with the visitor's
// session cookie.
func CORSConfig(allowOrigins []string) cors.Config {
	var origins []string
	for _, o := range allowOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Accept", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}
