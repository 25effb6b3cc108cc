package catalog

import (
	"context"

	"keshwala/models"
	"keshwala/services/documents"
	"keshwala/services/result"

	"go.uber.org/zap"
)

// Source says where the items of a Listing came from.
type Source string

const (
	SourceBackend  Source = "backend"
	SourceFallback Source = "fallback"
)

// Listing is what a catalog section renders: either the stored items or the
// built-in set, never a mix and never nothing.
type Listing[T any] struct {
	Items  []T    `json:"items"`
	Source Source `json:"source"`
}

// Catalog reads the four catalog collections with a built-in fallback.
type Catalog struct {
	docs   documents.DocumentService
	logger *zap.Logger
}

// NewCatalog returns a Catalog reading through docs.
func NewCatalog(docs documents.DocumentService, logger *zap.Logger) *Catalog {
	return &Catalog{docs: docs, logger: logger}
}

func (c *Catalog) Services(ctx context.Context) Listing[models.Service] {
	return choose(c.logger, models.CollectionServices, c.docs.GetServices(ctx), FallbackServices)
}

func (c *Catalog) Wigs(ctx context.Context) Listing[models.Wig] {
	return choose(c.logger, models.CollectionWigs, c.docs.GetWigs(ctx), FallbackWigs)
}

func (c *Catalog) Testimonials(ctx context.Context) Listing[models.Testimonial] {
	return choose(c.logger, models.CollectionTestimonials, c.docs.GetTestimonials(ctx), FallbackTestimonials)
}

func (c *Catalog) BlogPosts(ctx context.Context) Listing[models.BlogPost] {
	return choose(c.logger, models.CollectionBlogPosts, c.docs.GetBlogPosts(ctx), FallbackBlogPosts)
}

func choose[T any](logger *zap.Logger, collection string, res result.Result[[]T], fallback func() []T) Listing[T] {
	return result.Match(res,
		func(items []T) Listing[T] {
			if len(items) == 0 {
				return Listing[T]{Items: fallback(), Source: SourceFallback}
			}
			return Listing[T]{Items: items, Source: SourceBackend}
		},
		func(e *result.Error) Listing[T] {
			logger.Debug("catalog read failed, using fallback", zap.String("collection", collection), zap.Error(e))
			return Listing[T]{Items: fallback(), Source: SourceFallback}
		},
	)
}

// ServiceCategories are the filter chips of the services section.
var ServiceCategories = []models.Category{
	{ID: "all", Name: "All Services"},
	{ID: "haircare", Name: "Haircare"},
	{ID: "wigs", Name: "Wigs"},
	{ID: "event", Name: "Event Styling"},
	{ID: "subscription", Name: "Subscriptions"},
}

// BlogCategories are the filter chips of the blog section.
var BlogCategories = []string{"All", "Hair Care", "Wig Care", "Bridal", "Tips"}

// FilterServices keeps services in category. "all" and "" keep everything.
func FilterServices(items []models.Service, category string) []models.Service {
	if category == "" || category == "all" {
		return items
	}
	out := make([]models.Service, 0, len(items))
	for _, s := range items {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// FilterBlogPosts keeps posts in category. "All" and "" keep everything.
func FilterBlogPosts(items []models.BlogPost, category string) []models.BlogPost {
	if category == "" || category == "All" {
		return items
	}
	out := make([]models.BlogPost, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Slides splits items into carousel pages of per items each.
func Slides[T any](items []T, per int) [][]T {
	if per <= 0 {
		per = 1
	}
	var out [][]T
	for i := 0; i < len(items); i += per {
		end := min(i+per, len(items))
		out = append(out, items[i:end])
	}
	return out
}
