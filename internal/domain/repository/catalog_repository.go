package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *entity.SubCategory) error
	GetByID(ctx context.Context, id string) (*entity.SubCategory, error)
	GetByName(ctx context.Context, name string) (*entity.SubCategory, error)
	// List pages over all subcategories, or those of categoryID when it is set.
	List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, int64, error)
	ListAllByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	Update(ctx context.Context, subCategory *entity.SubCategory) error
	Delete(ctx context.Context, id string) error
}

// ItemQuery narrows item listings. Empty fields do not constrain; Filters are ANDed.
type ItemQuery struct {
	CategoryID    string
	SubCategoryID string
	Filters       []entity.ItemFilter
}

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, query ItemQuery, limit, offset int) ([]*entity.Item, int64, error)
	FindAll(ctx context.Context, query ItemQuery) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error

	SetHasDetail(ctx context.Context, id string, hasDetail bool) error
	SetUserAverageRating(ctx context.Context, id string, rating float64) error
	SetPartnerAverageRating(ctx context.Context, id string, rating float64) error
}

type ItemDetailRepository interface {
	Create(ctx context.Context, detail *entity.ItemDetail) error
	GetByID(ctx context.Context, id string) (*entity.ItemDetail, error)
	GetByItemID(ctx context.Context, itemID string) (*entity.ItemDetail, error)
	Update(ctx context.Context, detail *entity.ItemDetail) error
	Delete(ctx context.Context, id string) error
}

type FilterRepository interface {
	Create(ctx context.Context, filter *entity.Filter) error
	GetByID(ctx context.Context, id string) (*entity.Filter, error)
	List(ctx context.Context) ([]*entity.Filter, error)
	Update(ctx context.Context, filter *entity.Filter) error
	Delete(ctx context.Context, id string) error
}
