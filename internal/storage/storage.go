package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned diagnostic URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ResponseArchive stores raw generative responses so parse failures can be
// diagnosed after the fact. Archiving is best-effort: the generation flow
// never fails because the archive is unavailable.
type ResponseArchive interface {
	// ArchiveResponse stores the raw response text under the given object key.
	ArchiveResponse(ctx context.Context, objectKey string, raw string) error

	// GeneratePresignedDownloadURL creates a temporary URL for retrieving an
	// archived response.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an archived response.
	DeleteObject(ctx context.Context, objectKey string) error
}
