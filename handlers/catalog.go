package handlers

import (
	"net/http"

	"keshwala/models"
	"keshwala/services/catalog"
	"keshwala/services/documents"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the catalog listings and the visitor's bookings.
type CatalogHandler struct {
	catalog *catalog.Catalog
	docs    documents.DocumentService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(cat *catalog.Catalog, docs documents.DocumentService) *CatalogHandler {
	return &CatalogHandler{catalog: cat, docs: docs}
}

// Services lists services, optionally narrowed by ?category=.
func (h *CatalogHandler) Services(c *gin.Context) {
	l := h.catalog.Services(c.Request.Context())
	l.Items = catalog.FilterServices(l.Items, c.Query("category"))
	c.JSON(http.StatusOK, l)
}

func (h *CatalogHandler) Wigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Wigs(c.Request.Context()))
}

func (h *CatalogHandler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Testimonials(c.Request.Context()))
}

// BlogPosts lists posts, optionally narrowed by ?category=.
func (h *CatalogHandler) BlogPosts(c *gin.Context) {
	l := h.catalog.BlogPosts(c.Request.Context())
	l.Items = catalog.FilterBlogPosts(l.Items, c.Query("category"))
	c.JSON(http.StatusOK, l)
}

// Categories returns the filter chips of both sections.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.ServiceCategories, "blog": catalog.BlogCategories})
}

// MyBookings lists the bookings made while signed in. Requires RequireUser.
func (h *CatalogHandler) MyBookings(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	respond(c, http.StatusOK, h.docs.GetBookings(c.Request.Context(), user.UID))
}
