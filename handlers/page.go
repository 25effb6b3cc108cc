package handlers

import (
	"net/http"
	"time"

	"keshwala/middleware"
	"keshwala/models"
	"keshwala/services/auth"
	"keshwala/services/catalog"
	"keshwala/services/forms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WigsPerSlide is how many wigs the carousel shows at once.
const WigsPerSlide = 3

// PageData is everything the page template renders.
type PageData struct {
	Content catalog.Content
	User    *models.User

	Services          catalog.Listing[models.Service]
	ServiceCategories []models.Category
	ServiceCategory   string
	VisibleServices   []models.Service

	Wigs      catalog.Listing[models.Wig]
	WigSlides [][]models.Wig

	Testimonials catalog.Listing[models.Testimonial]

	Blog           catalog.Listing[models.BlogPost]
	BlogCategories []string
	BlogCategory   string
	VisiblePosts   []models.BlogPost

	Booking forms.Snapshot[forms.BookingInput]
	Contact forms.Snapshot[forms.ContactInput]
	SignIn  forms.Snapshot[forms.SignInInput]
	SignUp  forms.Snapshot[forms.SignUpInput]
	Reset   forms.Snapshot[forms.ResetInput]

	// AuthPanel is the open auth dialog: signin, signup, reset or empty.
	AuthPanel string
	Today     string
	Year      int
}

// PageHandler renders the single-page site.
type PageHandler struct {
	catalog *catalog.Catalog
	forms   *forms.Set
	auth    auth.AuthService
	content catalog.Content
	logger  *zap.Logger
	now     func() time.Time
}

// NewPageHandler creates a new PageHandler instance.
func NewPageHandler(cat *catalog.Catalog, set *forms.Set, authSvc auth.AuthService, content catalog.Content, logger *zap.Logger) *PageHandler {
	return &PageHandler{catalog: cat, forms: set, auth: authSvc, content: content, logger: logger, now: time.Now}
}

// Index renders the page. ?category= and ?blog= pick the filter chips,
// ?auth= opens the sign-in, sign-up or reset dialog.
func (h *PageHandler) Index(c *gin.Context) {
	data := h.pageData(c)
	switch panel := c.Query("auth"); panel {
	case forms.KindSignIn, forms.KindSignUp, forms.KindReset:
		data.AuthPanel = panel
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// render re-renders the page with the state of a just-submitted form.
func (h *PageHandler) render(c *gin.Context, status int, apply func(*PageData)) {
	data := h.pageData(c)
	apply(&data)
	c.HTML(status, "index.html", data)
}

func (h *PageHandler) pageData(c *gin.Context) PageData {
	ctx := c.Request.Context()
	now := h.now()

	services := h.catalog.Services(ctx)
	category := c.DefaultQuery("category", "all")
	wigs := h.catalog.Wigs(ctx)
	blog := h.catalog.BlogPosts(ctx)
	blogCategory := c.DefaultQuery("blog", "All")

	return PageData{
		Content:           h.content,
		User:              h.auth.CurrentUser(ctx, middleware.SessionID(c)),
		Services:          services,
		ServiceCategories: catalog.ServiceCategories,
		ServiceCategory:   category,
		VisibleServices:   catalog.FilterServices(services.Items, category),
		Wigs:              wigs,
		WigSlides:         catalog.Slides(wigs.Items, WigsPerSlide),
		Testimonials:      h.catalog.Testimonials(ctx),
		Blog:              blog,
		BlogCategories:    catalog.BlogCategories,
		BlogCategory:      blogCategory,
		VisiblePosts:      catalog.FilterBlogPosts(blog.Items, blogCategory),
		Booking:           h.forms.Booking.Open(),
		Contact:           h.forms.Contact.Open(),
		SignIn:            h.forms.SignIn.Open(),
		SignUp:            h.forms.SignUp.Open(),
		Reset:             h.forms.Reset.Open(),
		Today:             now.Format("2006-01-02"),
		Year:              now.Year(),
	}
}
