package memory

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

func olderFirst[T any](createdAt func(*T) time.Time) func(a, b *T) bool {
	return func(a, b *T) bool { return createdAt(a).Before(createdAt(b)) }
}

func newerFirst[T any](createdAt func(*T) time.Time) func(a, b *T) bool {
	return func(a, b *T) bool { return createdAt(a).After(createdAt(b)) }
}

type categoryRepository struct {
	categories *table[entity.Category]
}

func NewCategoryRepository() repository.CategoryRepository {
	return &categoryRepository{categories: newTable[entity.Category]("Category", nil)}
}

func (r *categoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.categories.put(c.ID, c)
	return nil
}

func (r *categoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories.get(id)
}

func (r *categoryRepository) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return r.categories.first(func(c *entity.Category) bool { return c.Name == name }, nil)
}

func (r *categoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	return r.categories.find(nil, olderFirst(func(c *entity.Category) time.Time { return c.CreatedAt })), nil
}

func (r *categoryRepository) Update(_ context.Context, c *entity.Category) error {
	c.UpdatedAt = time.Now()
	r.categories.put(c.ID, c)
	return nil
}

func (r *categoryRepository) Delete(_ context.Context, id string) error {
	r.categories.remove(id)
	return nil
}

type subCategoryRepository struct {
	subs *table[entity.SubCategory]
}

func NewSubCategoryRepository() repository.SubCategoryRepository {
	return &subCategoryRepository{subs: newTable[entity.SubCategory]("SubCategory", nil)}
}

func (r *subCategoryRepository) Create(_ context.Context, s *entity.SubCategory) error {
	r.subs.put(s.ID, s)
	return nil
}

func (r *subCategoryRepository) GetByID(_ context.Context, id string) (*entity.SubCategory, error) {
	return r.subs.get(id)
}

func (r *subCategoryRepository) GetByName(_ context.Context, name string) (*entity.SubCategory, error) {
	return r.subs.first(func(s *entity.SubCategory) bool { return s.Name == name }, nil)
}

func (r *subCategoryRepository) List(_ context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, int64, error) {
	all := r.subs.find(func(s *entity.SubCategory) bool {
		return categoryID == "" || s.CategoryID == categoryID
	}, olderFirst(func(s *entity.SubCategory) time.Time { return s.CreatedAt }))
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *subCategoryRepository) ListAllByCategory(_ context.Context, categoryID string) ([]*entity.SubCategory, error) {
	return r.subs.find(func(s *entity.SubCategory) bool { return s.CategoryID == categoryID }, nil), nil
}

func (r *subCategoryRepository) Update(_ context.Context, s *entity.SubCategory) error {
	s.UpdatedAt = time.Now()
	r.subs.put(s.ID, s)
	return nil
}

func (r *subCategoryRepository) Delete(_ context.Context, id string) error {
	r.subs.remove(id)
	return nil
}

type filterRepository struct {
	filters *table[entity.Filter]
}

func NewFilterRepository() repository.FilterRepository {
	return &filterRepository{filters: newTable[entity.Filter]("Filter", func(f *entity.Filter) *entity.Filter {
		c := *f
		c.Values = cloneSlice(f.Values)
		return &c
	})}
}

func (r *filterRepository) Create(_ context.Context, f *entity.Filter) error {
	r.filters.put(f.ID, f)
	return nil
}

func (r *filterRepository) GetByID(_ context.Context, id string) (*entity.Filter, error) {
	return r.filters.get(id)
}

func (r *filterRepository) List(_ context.Context) ([]*entity.Filter, error) {
	return r.filters.find(nil, func(a, b *entity.Filter) bool { return a.Key < b.Key }), nil
}

func (r *filterRepository) Update(_ context.Context, f *entity.Filter) error {
	f.UpdatedAt = time.Now()
	r.filters.put(f.ID, f)
	return nil
}

func (r *filterRepository) Delete(_ context.Context, id string) error {
	r.filters.remove(id)
	return nil
}

func cloneItem(i *entity.Item) *entity.Item {
	c := *i
	if i.DiscountedPrice != nil {
		d := *i.DiscountedPrice
		c.DiscountedPrice = &d
	}
	c.Filters = cloneSlice(i.Filters)
	c.FilterTags = cloneSlice(i.FilterTags)
	return &c
}

type itemRepository struct {
	items *table[entity.Item]
}

func NewItemRepository() repository.ItemRepository {
	return &itemRepository{items: newTable[entity.Item]("Item", cloneItem)}
}

func (r *itemRepository) Create(_ context.Context, item *entity.Item) error {
	item.PrepareForSave()
	r.items.put(item.ID, item)
	return nil
}

func (r *itemRepository) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.items.get(id)
}

func (r *itemRepository) FindAll(_ context.Context, q repository.ItemQuery) ([]*entity.Item, error) {
	return r.items.find(func(i *entity.Item) bool {
		if q.CategoryID != "" && i.CategoryID != q.CategoryID {
			return false
		}
		if q.SubCategoryID != "" && i.SubCategoryID != q.SubCategoryID {
			return false
		}
		for _, f := range q.Filters {
			if !containsString(i.FilterTags, entity.FilterTag(f.Key, f.Value)) {
				return false
			}
		}
		return true
	}, newerFirst(func(i *entity.Item) time.Time { return i.CreatedAt })), nil
}

func (r *itemRepository) List(ctx context.Context, q repository.ItemQuery, limit, offset int) ([]*entity.Item, int64, error) {
	all, _ := r.FindAll(ctx, q)
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *itemRepository) Update(_ context.Context, item *entity.Item) error {
	item.PrepareForSave()
	item.UpdatedAt = time.Now()
	r.items.put(item.ID, item)
	return nil
}

func (r *itemRepository) Delete(_ context.Context, id string) error {
	r.items.remove(id)
	return nil
}

func (r *itemRepository) SetHasDetail(_ context.Context, id string, hasDetail bool) error {
	_, err := r.items.update(id, func(i *entity.Item) error {
		i.IsItemDetail = hasDetail
		i.UpdatedAt = time.Now()
		return nil
	})
	return err
}

func (r *itemRepository) SetUserAverageRating(_ context.Context, id string, rating float64) error {
	_, err := r.items.update(id, func(i *entity.Item) error {
		i.UserAverageRating = rating
		i.UpdatedAt = time.Now()
		return nil
	})
	return err
}

func (r *itemRepository) SetPartnerAverageRating(_ context.Context, id string, rating float64) error {
	_, err := r.items.update(id, func(i *entity.Item) error {
		i.PartnerAverageRating = rating
		i.UpdatedAt = time.Now()
		return nil
	})
	return err
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneItemDetail(d *entity.ItemDetail) *entity.ItemDetail {
	c := *d
	c.ImagesByColor = make([]entity.ColorVariant, len(d.ImagesByColor))
	for i, v := range d.ImagesByColor {
		c.ImagesByColor[i] = entity.ColorVariant{
			Color:  v.Color,
			Images: cloneSlice(v.Images),
			Sizes:  cloneSlice(v.Sizes),
		}
	}
	c.SizeChart = cloneSlice(d.SizeChart)
	c.HowToMeasure = cloneSlice(d.HowToMeasure)
	c.PPQ = cloneSlice(d.PPQ)
	c.DeliveryPincode = cloneSlice(d.DeliveryPincode)
	return &c
}

type itemDetailRepository struct {
	details *table[entity.ItemDetail]
}

func NewItemDetailRepository() repository.ItemDetailRepository {
	return &itemDetailRepository{details: newTable[entity.ItemDetail]("ItemDetail", cloneItemDetail)}
}

func (r *itemDetailRepository) Create(_ context.Context, d *entity.ItemDetail) error {
	r.details.put(d.ID, d)
	return nil
}

func (r *itemDetailRepository) GetByID(_ context.Context, id string) (*entity.ItemDetail, error) {
	return r.details.get(id)
}

func (r *itemDetailRepository) GetByItemID(_ context.Context, itemID string) (*entity.ItemDetail, error) {
	return r.details.first(func(d *entity.ItemDetail) bool { return d.ItemID == itemID }, nil)
}

func (r *itemDetailRepository) Update(_ context.Context, d *entity.ItemDetail) error {
	d.UpdatedAt = time.Now()
	r.details.put(d.ID, d)
	return nil
}

func (r *itemDetailRepository) Delete(_ context.Context, id string) error {
	r.details.remove(id)
	return nil
}
