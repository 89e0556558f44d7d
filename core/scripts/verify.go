package scripts

import (
	"context"
	"fmt"

	"forum-provider/core/storage"

	"github.com/minio/minio-go/v7"
)

// MissingInBucket returns the names whose objects are absent from bucket under prefix.
func MissingInBucket(ctx context.Context, client storage.Client, bucket, prefix string, names []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var missing []string
	for _, name := range names {
		key := storage.ObjectKey(prefix, name)
		opts := minio.ListObjectsOptions{
			Prefix:    key,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("list %s: %w", key, obj.Err)
			}
			if obj.Key == key {
				found = true
			}
		}

		if !found {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
