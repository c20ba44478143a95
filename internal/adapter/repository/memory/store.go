// Package memory implements the domain repositories in process. It backs
// STORE_DRIVER=memory for local runs and the usecase and handler tests.
package memory

import (
	"sort"
	"sync"

	"nanocart/pkg/errors"
)

// table is a concurrency-safe map of copies; callers never share stored values.
type table[T any] struct {
	mu       sync.RWMutex
	rows     map[string]*T
	resource string
	clone    func(*T) *T
}

func newTable[T any](resource string, clone func(*T) *T) *table[T] {
	if clone == nil {
		clone = func(v *T) *T {
			c := *v
			return &c
		}
	}
	return &table[T]{rows: make(map[string]*T), resource: resource, clone: clone}
}

func (t *table[T]) put(id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = t.clone(v)
}

// insert fails when id is already present.
func (t *table[T]) insert(id string, v *T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.rows[id] = t.clone(v)
	return true
}

func (t *table[T]) get(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, errors.NotFound(t.resource, nil)
	}
	return t.clone(v), nil
}

func (t *table[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

// find returns copies of every row matching keep, ordered by less.
func (t *table[T]) find(keep func(*T) bool, less func(a, b *T) bool) []*T {
	t.mu.RLock()
	out := []*T{}
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	t.mu.RUnlock()

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func (t *table[T]) first(keep func(*T) bool, less func(a, b *T) bool) (*T, error) {
	rows := t.find(keep, less)
	if len(rows) == 0 {
		return nil, errors.NotFound(t.resource, nil)
	}
	return rows[0], nil
}

// update applies fn to the stored row under the write lock.
func (t *table[T]) update(id string, fn func(*T) error) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, errors.NotFound(t.resource, nil)
	}
	working := t.clone(v)
	if err := fn(working); err != nil {
		return nil, err
	}
	t.rows[id] = working
	return t.clone(working), nil
}

func page[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return []*T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
