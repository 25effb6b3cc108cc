package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"keshwala/database/repository/objectstore"
	"keshwala/services/result"

	"go.uber.org/zap"
)

const (
	// NotInitialized is the failure message when no file store is configured.
	NotInitialized = "Storage not initialized"
	// DefaultFolder receives images uploaded without a folder.
	DefaultFolder = "images"
)

// ImageFolders are the folders visitors may upload images into.
var ImageFolders = []string{"images", "wigs", "blog", "testimonials"}

// DefaultStorageService implements StorageService over an objectstore.Store.
type DefaultStorageService struct {
	store  objectstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewStorageService returns a gateway over store. A nil store yields a
// gateway whose every call fails with NotInitialized.
func NewStorageService(store objectstore.Store, logger *zap.Logger) *DefaultStorageService {
	return &DefaultStorageService{store: store, logger: logger, now: time.Now}
}

// WithClock replaces the time source used to prefix image names.
func (s *DefaultStorageService) WithClock(now func() time.Time) *DefaultStorageService {
	s.now = now
	return s
}

// UploadFile stores r at exactly path. An empty contentType is detected from
// the content.
func (s *DefaultStorageService) UploadFile(ctx context.Context, r io.Reader, p, contentType string) result.Result[Upload] {
	if s.store == nil {
		return result.Unavailable[Upload](NotInitialized)
	}
	if contentType == "" {
		body, sniffed, err := Sniff(r)
		if err != nil {
			return result.Backend[Upload](fmt.Errorf("read %s: %w", p, err))
		}
		r, contentType = body, sniffed
	}
	obj, err := s.store.Put(ctx, p, contentType, r)
	if err != nil {
		s.logger.Warn("UploadFile failed", zap.String("path", p), zap.Error(err))
		return result.Backend[Upload](err)
	}
	return result.Ok(Upload{URL: obj.URL, Path: obj.Path})
}

// UploadImage stores r under folder as <unix millis>_<filename> so repeated
// uploads of the same name never collide.
func (s *DefaultStorageService) UploadImage(ctx context.Context, r io.Reader, filename, folder, contentType string) result.Result[Upload] {
	return s.UploadFile(ctx, r, ImagePath(folder, filename, s.now()), contentType)
}

func (s *DefaultStorageService) DeleteFile(ctx context.Context, p string) result.Result[struct{}] {
	if s.store == nil {
		return result.Unavailable[struct{}](NotInitialized)
	}
	if err := s.store.Delete(ctx, p); err != nil {
		s.logger.Warn("DeleteFile failed", zap.String("path", p), zap.Error(err))
		return result.Backend[struct{}](err)
	}
	return result.Ok(struct{}{})
}

// ImagePath builds the storage path for an uploaded image.
func ImagePath(folder, filename string, at time.Time) string {
	if folder == "" {
		folder = DefaultFolder
	}
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return fmt.Sprintf("%s/%d_%s", folder, at.UnixMilli(), filename)
}

// AllowedFolder reports whether folder may receive visitor uploads.
func AllowedFolder(folder string) bool {
	for _, f := range ImageFolders {
		if f == folder {
			return true
		}
	}
	return false
}
