package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore returns a Store backed by Cloudinary. Paths become public
// IDs with the file extension stripped, which is how Cloudinary names assets.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (Store, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to initialize: %w", err)
	}
	return &cloudinaryStore{cld: cld}, nil
}

func publicID(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

func (s *cloudinaryStore) Put(ctx context.Context, p, _ string, r io.Reader) (Object, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:  publicID(p),
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return Object{}, fmt.Errorf("cloudinary: upload %s: %w", p, err)
	}
	if res.Error.Message != "" {
		return Object{}, fmt.Errorf("cloudinary: upload %s: %s", p, res.Error.Message)
	}
	if res.SecureURL == "" {
		return Object{}, fmt.Errorf("cloudinary: upload %s: no URL returned", p)
	}
	return Object{Path: p, URL: res.SecureURL}, nil
}

func (s *cloudinaryStore) Delete(ctx context.Context, p string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID(p)})
	if err != nil {
		return fmt.Errorf("cloudinary: delete %s: %w", p, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary: delete %s: %s", p, res.Error.Message)
	}
	return nil
}
