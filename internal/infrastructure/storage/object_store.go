package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"nanocart/internal/infrastructure/metrics"
	"nanocart/pkg/logger"
)

const (
	DefaultChunkSize  = 5 * 1024 * 1024
	DefaultMaxCompose = 32
)

type objectAttrs struct {
	ContentType string
	Public      bool
}

// backend is the minimal surface the store needs from a bucket.
type backend interface {
	Put(ctx context.Context, name string, data []byte, attrs objectAttrs) error
	Compose(ctx context.Context, dst string, srcs []string, attrs objectAttrs) error
	Delete(ctx context.Context, name string) error
	Bucket() string
}

type Options struct {
	PublicBaseURL string
	ChunkSize     int64
	MaxCompose    int
	PublicRead    bool
	Metrics       *metrics.StorageMetrics
}

// ObjectStore uploads small payloads in one put and large ones as concurrently
// written parts that are composed into the final object.
type ObjectStore struct {
	backend    backend
	baseURL    string
	chunkSize  int
	maxCompose int
	public     bool
	metrics    *metrics.StorageMetrics
}

func newObjectStore(b backend, opts Options) *ObjectStore {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.MaxCompose < 2 {
		opts.MaxCompose = DefaultMaxCompose
	}
	if opts.PublicBaseURL == "" {
		opts.PublicBaseURL = "https://storage.googleapis.com"
	}
	return &ObjectStore{
		backend:    b,
		baseURL:    strings.TrimRight(opts.PublicBaseURL, "/"),
		chunkSize:  int(opts.ChunkSize),
		maxCompose: opts.MaxCompose,
		public:     opts.PublicRead,
		metrics:    opts.Metrics,
	}
}

func (s *ObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload for %s", key)
	}
	if contentType == "" {
		contentType = DetectContentType(data)
	}
	attrs := objectAttrs{ContentType: contentType, Public: s.public}

	if len(data) < s.chunkSize {
		err := s.backend.Put(ctx, key, data, attrs)
		s.metrics.Upload("single", len(data), err)
		if err != nil {
			return "", fmt.Errorf("uploading %s: %w", key, err)
		}
		return s.URL(key), nil
	}

	err := s.uploadChunked(ctx, key, data, attrs)
	s.metrics.Upload("chunked", len(data), err)
	if err != nil {
		return "", err
	}
	return s.URL(key), nil
}

// SplitParts returns the [start, end) byte ranges of size split into partSize chunks.
func SplitParts(size, partSize int) [][2]int {
	if size <= 0 || partSize <= 0 {
		return nil
	}
	parts := make([][2]int, 0, (size+partSize-1)/partSize)
	for start := 0; start < size; start += partSize {
		parts = append(parts, [2]int{start, min(start+partSize, size)})
	}
	return parts
}

func (s *ObjectStore) uploadChunked(ctx context.Context, key string, data []byte, attrs objectAttrs) error {
	uploadID := uuid.NewString()
	ranges := SplitParts(len(data), s.chunkSize)
	partNames := make([]string, len(ranges))
	for i := range ranges {
		partNames[i] = fmt.Sprintf("%s.upload-%s.part-%05d", key, uploadID, i+1)
	}
	partAttrs := objectAttrs{ContentType: attrs.ContentType}

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		name, chunk := partNames[i], data[r[0]:r[1]]
		g.Go(func() error {
			if err := s.backend.Put(gctx, name, chunk, partAttrs); err != nil {
				return fmt.Errorf("uploading part %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.abort(ctx, partNames)
		return err
	}

	intermediates, err := s.composeAll(ctx, key, partNames, attrs)
	if err != nil {
		s.abort(ctx, append(partNames, intermediates...))
		return err
	}

	s.abort(ctx, append(partNames, intermediates...))
	logger.Debug("composed %s from %d parts", key, len(partNames))
	return nil
}

// composeAll folds srcs into dst, going through intermediate objects whenever
// there are more sources than a single compose call accepts.
func (s *ObjectStore) composeAll(ctx context.Context, dst string, srcs []string, attrs objectAttrs) ([]string, error) {
	var intermediates []string
	partAttrs := objectAttrs{ContentType: attrs.ContentType}

	for round := 0; len(srcs) > s.maxCompose; round++ {
		next := make([]string, 0, (len(srcs)+s.maxCompose-1)/s.maxCompose)
		for i := 0; i < len(srcs); i += s.maxCompose {
			batch := srcs[i:min(i+s.maxCompose, len(srcs))]
			if len(batch) == 1 {
				next = append(next, batch[0])
				continue
			}
			name := fmt.Sprintf("%s.compose-%d-%d", dst, round, i/s.maxCompose)
			intermediates = append(intermediates, name)
			if err := s.backend.Compose(ctx, name, batch, partAttrs); err != nil {
				return intermediates, fmt.Errorf("composing %s: %w", name, err)
			}
			next = append(next, name)
		}
		srcs = next
	}

	if err := s.backend.Compose(ctx, dst, srcs, attrs); err != nil {
		return intermediates, fmt.Errorf("composing %s: %w", dst, err)
	}
	return intermediates, nil
}

// abort removes temporary objects. Failures are logged; a leaked part only costs storage.
func (s *ObjectStore) abort(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.backend.Delete(context.WithoutCancel(ctx), name); err != nil && !isNotExist(err) {
			logger.Warn("cleaning up temporary object %s: %v", name, err)
		}
	}
}

func (s *ObjectStore) Delete(ctx context.Context, url string) error {
	key, err := s.KeyFromURL(url)
	if err != nil {
		s.metrics.Delete(err)
		return err
	}
	err = s.backend.Delete(ctx, key)
	s.metrics.Delete(err)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

func (s *ObjectStore) Replace(ctx context.Context, oldURL, key string, data []byte, contentType string) (string, error) {
	if oldURL != "" {
		if err := s.Delete(ctx, oldURL); err != nil {
			logger.Warn("replacing %s: old object not deleted: %v", oldURL, err)
		}
	}
	return s.Upload(ctx, key, data, contentType)
}

// URL is the public address of key: <base>/<bucket>/<key>.
func (s *ObjectStore) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.backend.Bucket(), key)
}

func (s *ObjectStore) KeyFromURL(url string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", s.baseURL, s.backend.Bucket())
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", fmt.Errorf("url %q does not belong to bucket %s", url, s.backend.Bucket())
	}
	return url[len(prefix):], nil
}

// DetectContentType sniffs data, dropping any parameters such as charset.
func DetectContentType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/avif", "image/heic"}

// IsImage reports whether the sniffed content of data is an accepted image type.
func IsImage(data []byte) bool {
	mt := mimetype.Detect(data)
	for _, allowed := range imageTypes {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}
