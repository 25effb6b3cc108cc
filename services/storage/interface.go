package storage

import (
	"context"
	"io"

	"keshwala/services/result"
)

// Upload describes a stored file.
type Upload struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// StorageService is the gateway to the hosted file store.
type StorageService interface {
	UploadFile(ctx context.Context, r io.Reader, path, contentType string) result.Result[Upload]
	UploadImage(ctx context.Context, r io.Reader, filename, folder, contentType string) result.Result[Upload]
	DeleteFile(ctx context.Context, path string) result.Result[struct{}]
}
