package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"keshwala/database/repository/objectstore"
	"keshwala/services/result"

	"go.uber.org/zap"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

type brokenStore struct{}

func (brokenStore) Put(context.Context, string, string, io.Reader) (objectstore.Object, error) {
	return objectstore.Object{}, errors.New("quota exceeded")
}
func (brokenStore) Delete(context.Context, string) error { return errors.New("quota exceeded") }

func TestImagePath(t *testing.T) {
	at := time.UnixMilli(1736500000123)
	tests := []struct {
		folder, filename, want string
	}{
		{"", "bob.jpg", "images/1736500000123_bob.jpg"},
		{"wigs", "lace front.png", "wigs/1736500000123_lace front.png"},
		{"blog", "../../etc/passwd", "blog/1736500000123_passwd"},
		{"images", `C:\Users\me\pic.webp`, "images/1736500000123_pic.webp"},
	}
	for _, tt := range tests {
		if got := ImagePath(tt.folder, tt.filename, at); got != tt.want {
			t.Errorf("ImagePath(%q, %q) = %q, want %q", tt.folder, tt.filename, got, tt.want)
		}
	}
}

func TestUploadImageAndDelete(t *testing.T) {
	mem := objectstore.NewMemoryStore("http://localhost/files")
	svc := NewStorageService(mem, zap.NewNop()).WithClock(func() time.Time { return time.UnixMilli(42) })
	ctx := context.Background()

	up, rerr := svc.UploadImage(ctx, strings.NewReader(pngHeader+"pixels"), "cut.png", "", "").Unwrap()
	if rerr != nil {
		t.Fatal(rerr)
	}
	if up.Path != "images/42_cut.png" || up.URL != "http://localhost/files/images/42_cut.png" {
		t.Fatalf("upload = %+v", up)
	}
	if _, ct, ok := mem.Get(up.Path); !ok || ct != "image/png" {
		t.Fatalf("stored content type = %q, ok = %v", ct, ok)
	}

	if r := svc.DeleteFile(ctx, up.Path); !r.IsOk() {
		t.Fatal(r.Err())
	}
	if r := svc.DeleteFile(ctx, up.Path); r.IsOk() || r.Err().Kind != result.KindBackend {
		t.Fatalf("second delete = %v", r.Err())
	}
}

func TestStorageFailures(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		store   objectstore.Store
		kind    result.Kind
		message string
	}{
		{"not initialized", nil, result.KindUnavailable, NotInitialized},
		{"backend error", brokenStore{}, result.KindBackend, "quota exceeded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStorageService(tt.store, zap.NewNop())
			for _, e := range []*result.Error{
				svc.UploadFile(ctx, strings.NewReader("x"), "a/b.txt", "text/plain").Err(),
				svc.DeleteFile(ctx, "a/b.txt").Err(),
			} {
				if e == nil || e.Kind != tt.kind || e.Message != tt.message {
					t.Errorf("got %v, want %s %q", e, tt.kind, tt.message)
				}
			}
		})
	}
}

func TestAllowedFolder(t *testing.T) {
	if !AllowedFolder("wigs") || AllowedFolder("private") || AllowedFolder("") {
		t.Fatal("folder allow list mismatch")
	}
}
