// Package storage is the object-storage client used to publish and fetch SQL scripts.
//
// It wraps the MinIO Go client behind the Client interface so script sources can be
// tested against core/storage/mocks. Both AWS S3 and self-hosted MinIO work.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
