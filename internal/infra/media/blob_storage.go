// Package media stores uploaded files in a blob bucket and hands back
// stable public URLs.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"homepros/config"
	"homepros/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the blob drivers selectable through Media.BucketURL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and registers its shutdown hook.
func NewBlobStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the bytes under a collision-free key and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := buildObjectKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	s.logger.Info("Media uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// buildObjectKey prefixes a random UUID so repeated uploads of the same
// filename never collide.
func buildObjectKey(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "upload"
	}

	return fmt.Sprintf("uploads/%d/%s-%s", time.Now().UTC().Year(), uuid.NewString(), base)
}
