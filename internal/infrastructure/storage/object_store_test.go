package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/infrastructure/metrics"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type flakyBucket struct {
	*MemoryBucket
	failPut     string
	failCompose bool
	puts        atomic.Int32
	composes    atomic.Int32
}

func (f *flakyBucket) Put(ctx context.Context, name string, data []byte, attrs objectAttrs) error {
	f.puts.Add(1)
	if f.failPut != "" && strings.Contains(name, f.failPut) {
		return errors.New("network down")
	}
	return f.MemoryBucket.Put(ctx, name, data, attrs)
}

func (f *flakyBucket) Compose(ctx context.Context, dst string, srcs []string, attrs objectAttrs) error {
	f.composes.Add(1)
	if f.failCompose {
		return errors.New("compose rejected")
	}
	return f.MemoryBucket.Compose(ctx, dst, srcs, attrs)
}

func newTestStore(b backend, chunk int64, maxCompose int) *ObjectStore {
	return newObjectStore(b, Options{
		PublicBaseURL: "https://cdn.example.com/",
		ChunkSize:     chunk,
		MaxCompose:    maxCompose,
		PublicRead:    true,
	})
}

func TestUploadSmallPayloadUsesSinglePut(t *testing.T) {
	bucket := &flakyBucket{MemoryBucket: NewMemoryBucket("nanocart")}
	store := newTestStore(bucket, 1024, 32)

	url, err := store.Upload(context.Background(), "/Nanocart/categories/c1", pngHeader, "")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/nanocart/Nanocart/categories/c1", url)
	assert.EqualValues(t, 1, bucket.puts.Load())
	assert.EqualValues(t, 0, bucket.composes.Load())

	data, contentType, ok := bucket.Object("Nanocart/categories/c1")
	require.True(t, ok)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", contentType)
}

func TestUploadLargePayloadComposesParts(t *testing.T) {
	bucket := &flakyBucket{MemoryBucket: NewMemoryBucket("nanocart")}
	store := newTestStore(bucket, 4, 32)
	payload := []byte("0123456789")

	_, err := store.Upload(context.Background(), "big/object", payload, "application/octet-stream")
	require.NoError(t, err)

	assert.EqualValues(t, 3, bucket.puts.Load())
	assert.EqualValues(t, 1, bucket.composes.Load())
	assert.Equal(t, []string{"big/object"}, bucket.Names(), "parts are removed after compose")

	data, _, _ := bucket.Object("big/object")
	assert.Equal(t, payload, data)
}

func TestUploadComposesInRoundsPastComposeLimit(t *testing.T) {
	bucket := NewMemoryBucket("nanocart")
	store := newTestStore(bucket, 1, 2)
	payload := []byte("abcdefg")

	_, err := store.Upload(context.Background(), "k", payload, "text/plain")
	require.NoError(t, err)

	data, _, _ := bucket.Object("k")
	assert.Equal(t, payload, data)
	assert.Equal(t, []string{"k"}, bucket.Names())
}

func TestUploadPayloadEqualToChunkSizeIsChunked(t *testing.T) {
	bucket := &flakyBucket{MemoryBucket: NewMemoryBucket("nanocart")}
	store := newTestStore(bucket, 4, 32)

	_, err := store.Upload(context.Background(), "k", []byte("abcd"), "text/plain")
	require.NoError(t, err)
	assert.EqualValues(t, 1, bucket.composes.Load())
}

func TestUploadPartFailureAbortsAndCleansUp(t *testing.T) {
	bucket := &flakyBucket{MemoryBucket: NewMemoryBucket("nanocart"), failPut: "part-00002"}
	store := newTestStore(bucket, 2, 32)

	_, err := store.Upload(context.Background(), "k", []byte("abcdefgh"), "text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
	assert.Empty(t, bucket.Names(), "no part may outlive an aborted upload")
	assert.EqualValues(t, 0, bucket.composes.Load())
}

func TestUploadComposeFailureAbortsAndCleansUp(t *testing.T) {
	bucket := &flakyBucket{MemoryBucket: NewMemoryBucket("nanocart"), failCompose: true}
	store := newTestStore(bucket, 2, 32)

	_, err := store.Upload(context.Background(), "k", []byte("abcdefgh"), "text/plain")
	require.Error(t, err)
	assert.Empty(t, bucket.Names())
}

func TestUploadRejectsEmptyInput(t *testing.T) {
	store := newTestStore(NewMemoryBucket("b"), 4, 32)

	_, err := store.Upload(context.Background(), "", []byte("x"), "")
	assert.Error(t, err)

	_, err = store.Upload(context.Background(), "k", nil, "")
	assert.Error(t, err)
}

func TestDeleteParsesPublicURL(t *testing.T) {
	bucket := NewMemoryBucket("nanocart")
	store := newTestStore(bucket, 1024, 32)

	url, err := store.Upload(context.Background(), "partner/p1/shop.png", pngHeader, "")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), url))
	assert.Empty(t, bucket.Names())

	assert.Error(t, store.Delete(context.Background(), "https://elsewhere.example.com/nanocart/x"))
	assert.Error(t, store.Delete(context.Background(), url), "object already gone")
}

func TestReplaceUploadsEvenWhenOldDeleteFails(t *testing.T) {
	bucket := NewMemoryBucket("nanocart")
	store := newTestStore(bucket, 1024, 32)

	url, err := store.Replace(context.Background(), "https://elsewhere.example.com/foreign.png", "partner/p1", pngHeader, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/nanocart/partner/p1", url)

	newURL, err := store.Replace(context.Background(), url, "partner/p1-v2", pngHeader, "image/png")
	require.NoError(t, err)
	assert.Equal(t, []string{"partner/p1-v2"}, bucket.Names())
	assert.NotEqual(t, url, newURL)
}

func TestStoreRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewStorageMetrics(reg)
	store := newObjectStore(NewMemoryBucket("b"), Options{ChunkSize: 4, Metrics: m})

	_, err := store.Upload(context.Background(), "small", []byte("ab"), "text/plain")
	require.NoError(t, err)
	_, err = store.Upload(context.Background(), "large", bytes.Repeat([]byte("x"), 9), "text/plain")
	require.NoError(t, err)

	// one series per mode
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "object_store_uploads_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "object_store_uploaded_bytes_total"))

	require.NoError(t, store.Delete(context.Background(), store.URL("small")))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "object_store_deletes_total"))
}

func TestSplitParts(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, SplitParts(10, 4))
	assert.Equal(t, [][2]int{{0, 4}}, SplitParts(4, 4))
	assert.Nil(t, SplitParts(0, 4))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngHeader))
	assert.False(t, IsImage([]byte("plain text, not an image")))
	assert.Equal(t, "text/plain", DetectContentType([]byte("hello")))
}
