package service

import "context"

// MediaStorage stores uploaded bytes and returns a stable public URL.
// The domain persists only the URL; where the bytes live is an infra concern.
type MediaStorage interface {
	// Upload writes the data under a generated key and returns its URL.
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
