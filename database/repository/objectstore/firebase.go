package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type firebaseStore struct {
	client     *storage.Client
	bucketName string
}

// NewFirebaseStore returns a Store backed by a Firebase Storage bucket.
func NewFirebaseStore(client *storage.Client, bucketName string) Store {
	return &firebaseStore{client: client, bucketName: bucketName}
}

func (s *firebaseStore) Put(ctx context.Context, path, contentType string, r io.Reader) (Object, error) {
	obj := s.client.Bucket(s.bucketName).Object(path)
	w := obj.NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	// Firebase download URLs are authorised by this token rather than an ACL.
	token := uuid.NewString()
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return Object{}, fmt.Errorf("firebase storage: copy %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return Object{}, fmt.Errorf("firebase storage: close writer for %s: %w", path, err)
	}
	return Object{Path: path, URL: downloadURL(s.bucketName, path, token)}, nil
}

func (s *firebaseStore) Delete(ctx context.Context, path string) error {
	if err := s.client.Bucket(s.bucketName).Object(path).Delete(ctx); err != nil {
		return fmt.Errorf("firebase storage: delete %s: %w", path, err)
	}
	return nil
}

func downloadURL(bucket, path, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(path), token)
}
