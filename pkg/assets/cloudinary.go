package assets

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads and destroys product images on Cloudinary.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a store from a cloudinary:// URL. Uploads land
// in the given folder.
func NewCloudinaryStore(url, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Cloudinary: %w", err)
	}
	return &CloudinaryStore{
		cld:    cld,
		folder: folder,
	}, nil
}

// Upload sends the image source (a URL, file path or data URI) to the asset
// host and returns the secure URL and the opaque asset ID needed for later
// deletion.
func (s *CloudinaryStore) Upload(ctx context.Context, source string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, source, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, result.PublicID, nil
}

// Destroy removes an asset by its opaque ID.
func (s *CloudinaryStore) Destroy(ctx context.Context, id string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id}); err != nil {
		return fmt.Errorf("failed to destroy image %s: %w", id, err)
	}
	return nil
}
