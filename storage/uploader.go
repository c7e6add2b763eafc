package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// GetPublicURL returns "" when the bucket has no public base URL.
	GetPublicURL(key string) string

	PresignGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ExportKey builds the object key of a fixture export: exports/<tournament>/<slug>-<utc timestamp>.csv.
func ExportKey(tournamentID int, slug string, at time.Time) string {
	return fmt.Sprintf("exports/%d/%s-%s.csv", tournamentID, slug, at.UTC().Format("20060102T150405Z"))
}
