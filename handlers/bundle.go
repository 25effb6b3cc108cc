package handlers

import (
	"keshwala/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthService auth.AuthService

	// Page
	IndexHandler gin.HandlerFunc

	// Form posts
	BookingHandler     gin.HandlerFunc
	ContactHandler     gin.HandlerFunc
	SignInHandler      gin.HandlerFunc
	SignUpHandler      gin.HandlerFunc
	ResetHandler       gin.HandlerFunc
	FormStatusHandler  gin.HandlerFunc
	FormDismissHandler gin.HandlerFunc

	// Auth endpoints
	MeHandler         gin.HandlerFunc
	ProviderHandler   gin.HandlerFunc
	SignOutHandler    gin.HandlerFunc
	AuthEventsHandler gin.HandlerFunc

	// Catalog endpoints
	ServicesHandler     gin.HandlerFunc
	WigsHandler         gin.HandlerFunc
	TestimonialsHandler gin.HandlerFunc
	BlogPostsHandler    gin.HandlerFunc
	CategoriesHandler   gin.HandlerFunc
	MyBookingsHandler   gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc
	DeleteFileHandler  gin.HandlerFunc
	ServeFileHandler   gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers' endpoints into a bundle.
func NewHandlerBundle(authSvc auth.AuthService, page *PageHandler, form *FormHandler, authH *AuthHandler, cat *CatalogHandler, store *StorageHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		AuthService: authSvc,

		IndexHandler: page.Index,

		BookingHandler:     form.Booking,
		ContactHandler:     form.Contact,
		SignInHandler:      form.SignIn,
		SignUpHandler:      form.SignUp,
		ResetHandler:       form.Reset,
		FormStatusHandler:  form.Status,
		FormDismissHandler: form.Dismiss,

		MeHandler:         authH.Me,
		ProviderHandler:   authH.Provider,
		SignOutHandler:    authH.SignOut,
		AuthEventsHandler: authH.Events,

		ServicesHandler:     cat.Services,
		WigsHandler:         cat.Wigs,
		TestimonialsHandler: cat.Testimonials,
		BlogPostsHandler:    cat.BlogPosts,
		CategoriesHandler:   cat.Categories,
		MyBookingsHandler:   cat.MyBookings,

		UploadImageHandler: store.UploadImageHandler,
		DeleteFileHandler:  store.DeleteFileHandler,
		ServeFileHandler:   store.ServeFileHandler,

		HealthHandler: health,
	}
}
