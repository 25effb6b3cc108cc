package docstore

import (
	"context"
	"testing"
	"time"
)

func seedTestimonials(t *testing.T, s *MemoryStore) {
	t.Helper()
	ctx := context.Background()
	for i, r := range []float64{4, 5, 3, 5, 4.5} {
		_, err := s.Add(ctx, "testimonials", map[string]any{
			"name":      string(rune('A' + i)),
			"rating":    r,
			"createdAt": time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func names(docs []Document) string {
	var s string
	for _, d := range docs {
		s += d.Data["name"].(string)
	}
	return s
}

func TestMemoryQueryOrdersAndLimits(t *testing.T) {
	s := NewMemoryStore()
	seedTestimonials(t, s)
	ctx := context.Background()

	tests := []struct {
		name        string
		constraints []Constraint
		want        string
	}{
		{"insertion order", nil, "ABCDE"},
		{"rating desc is stable", []Constraint{OrderBy("rating", Desc)}, "BDEAC"},
		{"createdAt desc", []Constraint{OrderBy("createdAt", Desc)}, "EDCBA"},
		{"rating desc limit", []Constraint{OrderBy("rating", Desc), Limit(2)}, "BD"},
		{"filter then order", []Constraint{Where("rating", OpGreaterEqual, 4.5), OrderBy("name", Asc)}, "BDE"},
		{"equality on int vs float", []Constraint{Where("rating", OpEqual, 5)}, "BD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := s.Query(ctx, "testimonials", Build(tt.constraints...))
			if err != nil {
				t.Fatal(err)
			}
			if got := names(docs); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryQueryEmptyCollection(t *testing.T) {
	docs, err := NewMemoryStore().Query(context.Background(), "services", Query{})
	if err != nil {
		t.Fatal(err)
	}
	if docs == nil || len(docs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", docs)
	}
}

func TestMemoryUpdateDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id, err := s.Add(ctx, "wigs", map[string]any{"name": "Bridal Wig"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Update(ctx, "wigs", id, map[string]any{"price": "₹12,000"}); err != nil {
		t.Fatal(err)
	}
	docs, _ := s.Query(ctx, "wigs", Query{})
	if docs[0].Data["price"] != "₹12,000" || docs[0].Data["name"] != "Bridal Wig" {
		t.Fatalf("update did not merge: %v", docs[0].Data)
	}

	if err := s.Update(ctx, "wigs", "missing", map[string]any{"x": 1}); !IsNotFound(err) {
		t.Fatalf("Update(missing) = %v, want ErrNotFound", err)
	}

	if err := s.Delete(ctx, "wigs", id); err != nil {
		t.Fatal(err)
	}
	if s.Len("wigs") != 0 {
		t.Fatalf("Len after delete = %d", s.Len("wigs"))
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	data := map[string]any{"name": "Hair Patch"}
	if _, err := s.Add(ctx, "wigs", data); err != nil {
		t.Fatal(err)
	}
	data["name"] = "mutated"

	docs, _ := s.Query(ctx, "wigs", Query{})
	docs[0].Data["name"] = "mutated again"

	again, _ := s.Query(ctx, "wigs", Query{})
	if again[0].Data["name"] != "Hair Patch" {
		t.Fatalf("store shares maps with callers: %v", again[0].Data)
	}
}
