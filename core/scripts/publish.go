package scripts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"forum-provider/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publish uploads the named scripts from a local directory into bucket under prefix,
// creating the bucket when it is missing. It returns the number of objects written.
func Publish(ctx context.Context, client storage.Client, bucket, prefix, root string, names []string, logger *zap.Logger) (int, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return 0, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	written := 0
	for _, name := range names {
		if err := putFile(ctx, client, bucket, storage.ObjectKey(prefix, name), filepath.Join(root, filepath.FromSlash(name))); err != nil {
			return written, err
		}
		written++
		logger.Debug("Published script", zap.String("script", name))
	}
	return written, nil
}

func putFile(ctx context.Context, client storage.Client, bucket, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat script %s: %w", path, err)
	}

	_, err = client.PutObject(ctx, bucket, key, f, info.Size(), minio.PutObjectOptions{ContentType: "application/sql"})
	if err != nil {
		return fmt.Errorf("put script %s: %w", key, err)
	}
	return nil
}
