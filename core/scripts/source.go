package scripts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"forum-provider/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens scripts by their slash-separated relative path.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource reads scripts from a directory tree.
type DirSource struct {
	Root string
}

// Open opens Root/name.
func (d DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(d.Root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", name, err)
	}
	return f, nil
}

// BucketSource reads scripts from an object-storage bucket.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Open fetches Prefix/name from Bucket.
func (b BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := storage.ObjectKey(b.Prefix, name)
	obj, err := b.Client.GetObject(ctx, b.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get script %s/%s: %w", b.Bucket, key, err)
	}
	return obj, nil
}

func read(ctx context.Context, src Source, name string) (string, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read script %s: %w", name, err)
	}
	return string(body), nil
}
