package catalog

import (
	"context"
	"errors"
	"testing"

	"keshwala/database/repository/docstore"
	"keshwala/models"
	"keshwala/services/documents"

	"go.uber.org/zap"
)

type brokenStore struct{}

func (brokenStore) Add(context.Context, string, map[string]any) (string, error) {
	return "", errors.New("offline")
}
func (brokenStore) Query(context.Context, string, docstore.Query) ([]docstore.Document, error) {
	return nil, errors.New("offline")
}
func (brokenStore) Update(context.Context, string, string, map[string]any) error {
	return errors.New("offline")
}
func (brokenStore) Delete(context.Context, string, string) error { return errors.New("offline") }

func TestServicesFallbackXorBackend(t *testing.T) {
	ctx := context.Background()
	stocked := docstore.NewMemoryStore()
	stocked.Add(ctx, models.CollectionServices, map[string]any{"title": "Keratin Treatment", "category": "haircare"})

	tests := []struct {
		name   string
		store  docstore.Store
		source Source
		first  string
		count  int
	}{
		{"backend has items", stocked, SourceBackend, "Keratin Treatment", 1},
		{"backend empty", docstore.NewMemoryStore(), SourceFallback, "Hair Cut & Styling", 6},
		{"backend fails", brokenStore{}, SourceFallback, "Hair Cut & Styling", 6},
		{"backend not configured", nil, SourceFallback, "Hair Cut & Styling", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(documents.NewDocumentService(tt.store, zap.NewNop()), zap.NewNop())
			got := c.Services(ctx)
			if got.Source != tt.source || len(got.Items) != tt.count || got.Items[0].Title != tt.first {
				t.Fatalf("got %s with %d items (first %q)", got.Source, len(got.Items), got.Items[0].Title)
			}
		})
	}
}

func TestOtherListingsFallBack(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog(documents.NewDocumentService(nil, zap.NewNop()), zap.NewNop())
	if l := c.Wigs(ctx); l.Source != SourceFallback || len(l.Items) != 6 {
		t.Fatalf("wigs = %+v", l)
	}
	if l := c.Testimonials(ctx); l.Source != SourceFallback || len(l.Items) != 6 {
		t.Fatalf("testimonials = %+v", l)
	}
	if l := c.BlogPosts(ctx); l.Source != SourceFallback || len(l.Items) != 6 {
		t.Fatalf("blog = %+v", l)
	}
}

func TestFallbackIsCopied(t *testing.T) {
	a := FallbackServices()
	a[0].Title = "changed"
	if FallbackServices()[0].Title != "Hair Cut & Styling" {
		t.Fatal("fallback mutated through returned slice")
	}
}

func TestFilters(t *testing.T) {
	services := FallbackServices()
	tests := []struct {
		category string
		want     int
	}{
		{"all", 6}, {"", 6}, {"haircare", 2}, {"wigs", 2}, {"event", 1}, {"subscription", 1}, {"nails", 0},
	}
	for _, tt := range tests {
		if got := len(FilterServices(services, tt.category)); got != tt.want {
			t.Errorf("FilterServices(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}

	posts := FallbackBlogPosts()
	if n := len(FilterBlogPosts(posts, "Hair Care")); n != 3 {
		t.Errorf("Hair Care posts = %d", n)
	}
	if n := len(FilterBlogPosts(posts, "Tips")); n != 0 {
		t.Errorf("Tips posts = %d", n)
	}
	if n := len(FilterBlogPosts(posts, "All")); n != 6 {
		t.Errorf("All posts = %d", n)
	}
}

func TestSlides(t *testing.T) {
	slides := Slides(FallbackWigs(), 3)
	if len(slides) != 2 || len(slides[0]) != 3 || slides[1][0].Name != "Pixie Cut Wig" {
		t.Fatalf("slides = %v", slides)
	}
	if got := Slides([]int{1, 2, 3, 4}, 3); len(got) != 2 || len(got[1]) != 1 {
		t.Fatalf("uneven slides = %v", got)
	}
	if got := Slides[int](nil, 3); len(got) != 0 {
		t.Fatalf("empty slides = %v", got)
	}
}

func TestFloatingActions(t *testing.T) {
	got := FloatingActions("+91 98765 43210", "+919876543210")
	want := []string{"#booking", "tel:+919876543210", "https://wa.me/919876543210"}
	for i, a := range got {
		if a.Href != want[i] {
			t.Errorf("action %d href = %q, want %q", i, a.Href, want[i])
		}
	}
	if got[2].Target != "_blank" {
		t.Error("chat link should open in a new window")
	}
}

func TestSectionOrder(t *testing.T) {
	want := []string{"home", "services", "wigs", "how-it-works", "booking", "about", "blog", "testimonials", "contact", "footer"}
	for i, s := range SiteContent("+919876543210", "919876543210").Sections {
		if s.ID != want[i] {
			t.Fatalf("section %d = %q, want %q", i, s.ID, want[i])
		}
	}
}
