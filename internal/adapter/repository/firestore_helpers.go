package repository

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nanocart/pkg/errors"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// getDoc loads ref into a T, translating a missing document into a NOT_FOUND AppError.
func getDoc[T any](ctx context.Context, ref *firestore.DocumentRef, resource string) (*T, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound(resource, nil)
		}
		return nil, err
	}

	var out T
	if err := doc.DataTo(&out); err != nil {
		return nil, fmt.Errorf("decoding %s %s: %w", resource, ref.ID, err)
	}
	return &out, nil
}

// firstDoc returns the first match of query or a NOT_FOUND AppError.
func firstDoc[T any](ctx context.Context, query firestore.Query, resource string) (*T, error) {
	iter := query.Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound(resource, nil)
	}
	if err != nil {
		return nil, err
	}

	var out T
	if err := doc.DataTo(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func collect[T any](iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}

// count runs a server-side count aggregation over query.
func count(ctx context.Context, query firestore.Query) (int64, error) {
	result, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := result["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected count result %T", result["total"])
	}
	return v.GetIntegerValue(), nil
}

// updateFields patches fields on an existing document.
func updateFields(ctx context.Context, ref *firestore.DocumentRef, resource string, updates []firestore.Update) error {
	_, err := ref.Update(ctx, updates)
	if isNotFound(err) {
		return errors.NotFound(resource, nil)
	}
	return err
}

// page slices an already-ordered result set.
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

func sortNewestFirst[T any](items []*T, createdAt func(*T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}
