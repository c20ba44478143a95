package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

const cacheControl = "public, max-age=86400"

type gcsBackend struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewCloudStorage returns an ObjectStore writing to a GCS bucket, usually the
// one handed out by the firebase app.
func NewCloudStorage(bucket *storage.BucketHandle, bucketName string, opts Options) *ObjectStore {
	return newObjectStore(&gcsBackend{bucket: bucket, bucketName: bucketName}, opts)
}

func (b *gcsBackend) Bucket() string {
	return b.bucketName
}

func (b *gcsBackend) Put(ctx context.Context, name string, data []byte, attrs objectAttrs) error {
	wc := b.bucket.Object(name).NewWriter(ctx)
	wc.ContentType = attrs.ContentType
	wc.CacheControl = cacheControl
	if attrs.Public {
		wc.PredefinedACL = "publicRead"
	}
	// Parts are already bounded by the store's chunk size; send each in one request.
	wc.ChunkSize = 0

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

func (b *gcsBackend) Compose(ctx context.Context, dst string, srcs []string, attrs objectAttrs) error {
	handles := make([]*storage.ObjectHandle, len(srcs))
	for i, src := range srcs {
		handles[i] = b.bucket.Object(src)
	}
	composer := b.bucket.Object(dst).ComposerFrom(handles...)
	composer.ContentType = attrs.ContentType
	composer.CacheControl = cacheControl
	if attrs.Public {
		composer.PredefinedACL = "publicRead"
	}
	if _, err := composer.Run(ctx); err != nil {
		return fmt.Errorf("failed to compose object: %w", err)
	}
	return nil
}

func (b *gcsBackend) Delete(ctx context.Context, name string) error {
	return b.bucket.Object(name).Delete(ctx)
}

func isNotExist(err error) bool {
	return errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, errMemoryObjectNotExist)
}
