package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	itemsCollection       = "items"
	itemDetailsCollection = "item_details"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	item.PrepareForSave()
	_, err := r.client.Collection(itemsCollection).Doc(item.ID).Set(ctx, item)
	return err
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return getDoc[entity.Item](ctx, r.client.Collection(itemsCollection).Doc(id), "Item")
}

// FindAll narrows by category and subcategory in the query. Firestore allows a
// single array-contains per query, so only the first filter tag is pushed down
// and the remaining tags are checked here.
func (r *firestoreItemRepository) FindAll(ctx context.Context, q repository.ItemQuery) ([]*entity.Item, error) {
	query := r.client.Collection(itemsCollection).Query
	if q.CategoryID != "" {
		query = query.Where("categoryId", "==", q.CategoryID)
	}
	if q.SubCategoryID != "" {
		query = query.Where("subCategoryId", "==", q.SubCategoryID)
	}

	tags := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		tags = append(tags, entity.FilterTag(f.Key, f.Value))
	}
	if len(tags) > 0 {
		query = query.Where("filterTags", "array-contains", tags[0])
	}

	items, err := collect[entity.Item](query.Documents(ctx))
	if err != nil {
		return nil, err
	}

	matched := items[:0]
	for _, item := range items {
		if hasAllTags(item.FilterTags, tags) {
			matched = append(matched, item)
		}
	}

	sortNewestFirst(matched, func(i *entity.Item) int64 { return i.CreatedAt.UnixNano() })
	return matched, nil
}

func (r *firestoreItemRepository) List(ctx context.Context, q repository.ItemQuery, limit, offset int) ([]*entity.Item, int64, error) {
	items, err := r.FindAll(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return page(items, limit, offset), int64(len(items)), nil
}

func (r *firestoreItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.PrepareForSave()
	item.UpdatedAt = time.Now()
	_, err := r.client.Collection(itemsCollection).Doc(item.ID).Set(ctx, item)
	return err
}

func (r *firestoreItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(itemsCollection).Doc(id).Delete(ctx)
	return err
}

func (r *firestoreItemRepository) SetHasDetail(ctx context.Context, id string, hasDetail bool) error {
	return r.patch(ctx, id, "isItemDetail", hasDetail)
}

func (r *firestoreItemRepository) SetUserAverageRating(ctx context.Context, id string, rating float64) error {
	return r.patch(ctx, id, "userAverageRating", rating)
}

func (r *firestoreItemRepository) SetPartnerAverageRating(ctx context.Context, id string, rating float64) error {
	return r.patch(ctx, id, "partnerAverageRating", rating)
}

func (r *firestoreItemRepository) patch(ctx context.Context, id, field string, value interface{}) error {
	return updateFields(ctx, r.client.Collection(itemsCollection).Doc(id), "Item", []firestore.Update{
		{Path: field, Value: value},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func hasAllTags(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

type firestoreItemDetailRepository struct {
	client *firestore.Client
}

func NewFirestoreItemDetailRepository(client *firestore.Client) repository.ItemDetailRepository {
	return &firestoreItemDetailRepository{
		client: client,
	}
}

func (r *firestoreItemDetailRepository) Create(ctx context.Context, detail *entity.ItemDetail) error {
	_, err := r.client.Collection(itemDetailsCollection).Doc(detail.ID).Set(ctx, detail)
	return err
}

func (r *firestoreItemDetailRepository) GetByID(ctx context.Context, id string) (*entity.ItemDetail, error) {
	return getDoc[entity.ItemDetail](ctx, r.client.Collection(itemDetailsCollection).Doc(id), "ItemDetail")
}

func (r *firestoreItemDetailRepository) GetByItemID(ctx context.Context, itemID string) (*entity.ItemDetail, error) {
	query := r.client.Collection(itemDetailsCollection).Where("itemId", "==", itemID)
	return firstDoc[entity.ItemDetail](ctx, query, "ItemDetail")
}

func (r *firestoreItemDetailRepository) Update(ctx context.Context, detail *entity.ItemDetail) error {
	detail.UpdatedAt = time.Now()
	_, err := r.client.Collection(itemDetailsCollection).Doc(detail.ID).Set(ctx, detail)
	return err
}

func (r *firestoreItemDetailRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(itemDetailsCollection).Doc(id).Delete(ctx)
	return err
}
