package storage

import "context"

// ArchiveService stores call audio clips for later review.
type ArchiveService interface {
	ArchiveCallAudio(ctx context.Context, localFilePath, sessionID string) (string, error)
	DeleteClip(ctx context.Context, publicID string) error
}
