package objectstore

import (
	"context"
	"strings"
	"testing"
)

func TestMemoryPutAndDelete(t *testing.T) {
	s := NewMemoryStore("http://localhost:8080/files")
	ctx := context.Background()

	obj, err := s.Put(ctx, "images/1700000000000_my photo.jpg", "image/jpeg", strings.NewReader("jpeg"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "http://localhost:8080/files/images/1700000000000_my%20photo.jpg"; obj.URL != want {
		t.Fatalf("URL = %q, want %q", obj.URL, want)
	}
	b, ct, ok := s.Get(obj.Path)
	if !ok || string(b) != "jpeg" || ct != "image/jpeg" {
		t.Fatalf("Get = %q %q %v", b, ct, ok)
	}

	if err := s.Delete(ctx, obj.Path); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, obj.Path); err == nil {
		t.Fatal("second delete should fail")
	}
}

func TestPublicID(t *testing.T) {
	tests := map[string]string{
		"wigs/1_lace.png": "wigs/1_lace",
		"images/noext":    "images/noext",
		"blog/a.b.c.webp": "blog/a.b.c",
	}
	for in, want := range tests {
		if got := publicID(in); got != want {
			t.Errorf("publicID(%q) = %q, want %q", in, got, want)
		}
	}
}
