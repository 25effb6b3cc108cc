package objectstore

import (
	"context"
	"io"
)

// Object is a stored file.
type Object struct {
	Path string // exact path inside the bucket
	URL  string // publicly resolvable URL
}

// Store is a hosted file store addressed by path.
type Store interface {
	Put(ctx context.Context, path, contentType string, r io.Reader) (Object, error)
	Delete(ctx context.Context, path string) error
}
