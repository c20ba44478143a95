package storage

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
)

var errMemoryObjectNotExist = errors.New("storage: object doesn't exist")

// MemoryBucket keeps objects in process. It backs STORAGE_DRIVER=memory and tests.
type MemoryBucket struct {
	name string

	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryBucket(name string) *MemoryBucket {
	return &MemoryBucket{name: name, objects: make(map[string]memoryObject)}
}

// NewMemoryStorage returns an ObjectStore over bucket.
func NewMemoryStorage(bucket *MemoryBucket, opts Options) *ObjectStore {
	return newObjectStore(bucket, opts)
}

func (m *MemoryBucket) Bucket() string {
	return m.name
}

func (m *MemoryBucket) Put(ctx context.Context, name string, data []byte, attrs objectAttrs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = memoryObject{data: bytes.Clone(data), contentType: attrs.ContentType}
	return nil
}

func (m *MemoryBucket) Compose(ctx context.Context, dst string, srcs []string, attrs objectAttrs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var buf bytes.Buffer
	for _, src := range srcs {
		obj, ok := m.objects[src]
		if !ok {
			return errMemoryObjectNotExist
		}
		buf.Write(obj.data)
	}
	m.objects[dst] = memoryObject{data: buf.Bytes(), contentType: attrs.ContentType}
	return nil
}

func (m *MemoryBucket) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[name]; !ok {
		return errMemoryObjectNotExist
	}
	delete(m.objects, name)
	return nil
}

// Object returns a copy of the stored bytes and content type for name.
func (m *MemoryBucket) Object(name string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[name]
	if !ok {
		return nil, "", false
	}
	return bytes.Clone(obj.data), obj.contentType, true
}

// Names lists stored object names in sorted order.
func (m *MemoryBucket) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
