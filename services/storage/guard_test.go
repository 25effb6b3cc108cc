package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"keshwala/database/repository/objectstore"

	"go.uber.org/zap"
)

func TestSniffImage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"png", pngHeader + "pixels", "image/png", false},
		{"gif", "GIF89a" + strings.Repeat("\x00", 10), "image/gif", false},
		{"html", "<!DOCTYPE html><script>alert(1)</script>", "text/html; charset=utf-8", true},
		{"svg", `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`, "text/xml; charset=utf-8", true},
		{"empty", "", "text/plain; charset=utf-8", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct, err := SniffImage(strings.NewReader(tt.content))
			if ct != tt.want {
				t.Errorf("content type = %q, want %q", ct, tt.want)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNotImage) {
					t.Fatalf("err = %v, want ErrNotImage", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			all, _ := io.ReadAll(body)
			if string(all) != tt.content {
				t.Fatalf("body = %q, want the full content back", all)
			}
		})
	}
}

func TestSniffKeepsLongContent(t *testing.T) {
	content := pngHeader + strings.Repeat("p", 4096)
	body, ct, err := Sniff(strings.NewReader(content))
	if err != nil || ct != "image/png" {
		t.Fatalf("Sniff = %q, %v", ct, err)
	}
	all, _ := io.ReadAll(body)
	if len(all) != len(content) {
		t.Fatalf("read %d bytes, want %d", len(all), len(content))
	}
}

func TestUploadFileDetectsTypeFromContent(t *testing.T) {
	mem := objectstore.NewMemoryStore("http://localhost/files")
	svc := NewStorageService(mem, zap.NewNop()).WithClock(func() time.Time { return time.UnixMilli(7) })

	up, rerr := svc.UploadImage(context.Background(), strings.NewReader("<html><script>x</script></html>"), "x.png", "", "").Unwrap()
	if rerr != nil {
		t.Fatal(rerr)
	}
	if _, ct, _ := mem.Get(up.Path); ct != "text/html; charset=utf-8" {
		t.Fatalf("stored content type = %q, want the sniffed type rather than the extension's", ct)
	}
}

func TestInImageFolder(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"wigs/1736500000123_bob.png", true},
		{"images/42_cut.png", true},
		{"catalog/hero.jpg", false},
		{"hero.jpg", false},
		{"wigs/", false},
		{"wigs/../catalog/hero.jpg", false},
		{"wigs/nested/pic.png", false},
		{"./wigs/pic.png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := InImageFolder(tt.path); got != tt.want {
			t.Errorf("InImageFolder(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOwners(t *testing.T) {
	o := NewOwners()
	o.Record("wigs/1_a.png", "uid-asha")

	if !o.Owns("wigs/1_a.png", "uid-asha") {
		t.Fatal("uploader does not own the file")
	}
	if o.Owns("wigs/1_a.png", "uid-other") || o.Owns("wigs/1_a.png", "") || o.Owns("wigs/2_b.png", "uid-asha") {
		t.Fatal("ownership granted to the wrong account or file")
	}
	o.Forget("wigs/1_a.png")
	if o.Owns("wigs/1_a.png", "uid-asha") {
		t.Fatal("forgotten record still owned")
	}
}
