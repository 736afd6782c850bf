package storage

import (
	"context"
	"fmt"
)

// ContentTypePNG is the only artifact type the exporter produces
const ContentTypePNG = "image/png"

// ArtifactStore handles storage of rendered export artifacts
type ArtifactStore interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) error
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
	DownloadFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error
}

// validateContentType validates that the content type is supported
func validateContentType(contentType string) error {
	validTypes := map[string]bool{
		ContentTypePNG: true,
	}

	if !validTypes[contentType] {
		return fmt.Errorf("invalid content type: %s. Supported types: %s", contentType, ContentTypePNG)
	}

	return nil
}
