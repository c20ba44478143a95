package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	categoriesCollection    = "categories"
	subCategoriesCollection = "sub_categories"
	filtersCollection       = "filters"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.client.Collection(categoriesCollection).Doc(category.ID).Set(ctx, category)
	return err
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return getDoc[entity.Category](ctx, r.client.Collection(categoriesCollection).Doc(id), "Category")
}

func (r *firestoreCategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	query := r.client.Collection(categoriesCollection).Where("name", "==", name)
	return firstDoc[entity.Category](ctx, query, "Category")
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection(categoriesCollection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	return collect[entity.Category](iter)
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	_, err := r.client.Collection(categoriesCollection).Doc(category.ID).Set(ctx, category)
	return err
}

func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(categoriesCollection).Doc(id).Delete(ctx)
	return err
}

type firestoreSubCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreSubCategoryRepository(client *firestore.Client) repository.SubCategoryRepository {
	return &firestoreSubCategoryRepository{
		client: client,
	}
}

func (r *firestoreSubCategoryRepository) Create(ctx context.Context, sub *entity.SubCategory) error {
	_, err := r.client.Collection(subCategoriesCollection).Doc(sub.ID).Set(ctx, sub)
	return err
}

func (r *firestoreSubCategoryRepository) GetByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	return getDoc[entity.SubCategory](ctx, r.client.Collection(subCategoriesCollection).Doc(id), "SubCategory")
}

func (r *firestoreSubCategoryRepository) GetByName(ctx context.Context, name string) (*entity.SubCategory, error) {
	query := r.client.Collection(subCategoriesCollection).Where("name", "==", name)
	return firstDoc[entity.SubCategory](ctx, query, "SubCategory")
}

func (r *firestoreSubCategoryRepository) List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, int64, error) {
	query := r.client.Collection(subCategoriesCollection).Query
	if categoryID != "" {
		query = query.Where("categoryId", "==", categoryID)
	}

	total, err := count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	subs, err := collect[entity.SubCategory](query.Documents(ctx))
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *firestoreSubCategoryRepository) ListAllByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	iter := r.client.Collection(subCategoriesCollection).Where("categoryId", "==", categoryID).Documents(ctx)
	return collect[entity.SubCategory](iter)
}

func (r *firestoreSubCategoryRepository) Update(ctx context.Context, sub *entity.SubCategory) error {
	sub.UpdatedAt = time.Now()
	_, err := r.client.Collection(subCategoriesCollection).Doc(sub.ID).Set(ctx, sub)
	return err
}

func (r *firestoreSubCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(subCategoriesCollection).Doc(id).Delete(ctx)
	return err
}

type firestoreFilterRepository struct {
	client *firestore.Client
}

func NewFirestoreFilterRepository(client *firestore.Client) repository.FilterRepository {
	return &firestoreFilterRepository{
		client: client,
	}
}

func (r *firestoreFilterRepository) Create(ctx context.Context, filter *entity.Filter) error {
	_, err := r.client.Collection(filtersCollection).Doc(filter.ID).Set(ctx, filter)
	return err
}

func (r *firestoreFilterRepository) GetByID(ctx context.Context, id string) (*entity.Filter, error) {
	return getDoc[entity.Filter](ctx, r.client.Collection(filtersCollection).Doc(id), "Filter")
}

func (r *firestoreFilterRepository) List(ctx context.Context) ([]*entity.Filter, error) {
	iter := r.client.Collection(filtersCollection).OrderBy("key", firestore.Asc).Documents(ctx)
	return collect[entity.Filter](iter)
}

func (r *firestoreFilterRepository) Update(ctx context.Context, filter *entity.Filter) error {
	filter.UpdatedAt = time.Now()
	_, err := r.client.Collection(filtersCollection).Doc(filter.ID).Set(ctx, filter)
	return err
}

func (r *firestoreFilterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(filtersCollection).Doc(id).Delete(ctx)
	return err
}
