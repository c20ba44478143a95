package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/utils"
)

type ItemUseCase struct {
	itemRepo        repository.ItemRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	store           service.ObjectStore
	cascade         *catalogCascade
	now             func() time.Time
}

func NewItemUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	itemDetailRepo repository.ItemDetailRepository,
	store service.ObjectStore,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		store:           store,
		cascade: &catalogCascade{
			subCategoryRepo: subCategoryRepo,
			itemRepo:        itemRepo,
			itemDetailRepo:  itemDetailRepo,
			store:           store,
		},
		now: time.Now,
	}
}

type CreateItemInput struct {
	Name            string              `json:"name" validate:"required"`
	Description     string              `json:"description"`
	MRP             float64             `json:"MRP" validate:"required,gt=0"`
	TotalStock      int                 `json:"totalStock" validate:"gte=0"`
	DiscountedPrice *float64            `json:"discountedPrice"`
	CategoryID      string              `json:"categoryId" validate:"required"`
	SubCategoryID   string              `json:"subCategoryId" validate:"required"`
	Filters         []entity.ItemFilter `json:"filters"`
}

type UpdateItemInput struct {
	Name            *string              `json:"name"`
	Description     *string              `json:"description"`
	MRP             *float64             `json:"MRP"`
	TotalStock      *int                 `json:"totalStock"`
	DiscountedPrice *float64             `json:"discountedPrice"`
	CategoryID      *string              `json:"categoryId"`
	SubCategoryID   *string              `json:"subCategoryId"`
	Filters         *[]entity.ItemFilter `json:"filters"`
}

func itemFolder(categoryID, subCategoryID, itemID string) string {
	return fmt.Sprintf("Nanocart/categories/%s/subCategories/%s/item/%s", categoryID, subCategoryID, itemID)
}

// NormalizeFilters lower-cases keys, trims values and drops incomplete pairs.
func NormalizeFilters(filters []entity.ItemFilter) []entity.ItemFilter {
	out := make([]entity.ItemFilter, 0, len(filters))
	for _, f := range filters {
		key := strings.ToLower(strings.TrimSpace(f.Key))
		value := strings.TrimSpace(f.Value)
		if key == "" || value == "" {
			continue
		}
		out = append(out, entity.ItemFilter{Key: key, Value: value})
	}
	return out
}

func validatePricing(mrp float64, discounted *float64) error {
	if mrp <= 0 {
		return errors.BadRequest("MRP must be greater than 0", nil)
	}
	if discounted != nil {
		if *discounted < 0 {
			return errors.BadRequest("Discounted price cannot be negative", nil)
		}
		if *discounted > mrp {
			return errors.BadRequest("Discounted price cannot exceed MRP", nil)
		}
	}
	return nil
}

// checkPlacement verifies the category and subcategory exist and belong together.
func (uc *ItemUseCase) checkPlacement(ctx context.Context, categoryID, subCategoryID string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return notFoundAs(err, errors.BadRequest("Category not found", nil), "Failed to load category")
	}
	sub, err := uc.subCategoryRepo.GetByID(ctx, subCategoryID)
	if err != nil {
		return notFoundAs(err, errors.BadRequest("SubCategory not found", nil), "Failed to load subcategory")
	}
	if sub.CategoryID != categoryID {
		return errors.BadRequest("SubCategory does not belong to the given category", nil)
	}
	return nil
}

func (uc *ItemUseCase) Create(ctx context.Context, input CreateItemInput, image *service.File) (*entity.Item, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.BadRequest("Image is required", nil)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Item name is required", nil)
	}
	if input.TotalStock < 0 {
		return nil, errors.BadRequest("Total stock cannot be negative", nil)
	}
	if err := validatePricing(input.MRP, input.DiscountedPrice); err != nil {
		return nil, err
	}
	if err := uc.checkPlacement(ctx, input.CategoryID, input.SubCategoryID); err != nil {
		return nil, err
	}

	now := uc.now()
	item := &entity.Item{
		ID:              generateUUID(),
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		MRP:             input.MRP,
		TotalStock:      input.TotalStock,
		DiscountedPrice: input.DiscountedPrice,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
		Filters:         NormalizeFilters(input.Filters),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	url, err := uc.store.Upload(ctx, service.ObjectKey(itemFolder(item.CategoryID, item.SubCategoryID, item.ID), image.FileName, now), image.Data, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload item image", err)
	}
	item.Image = url

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, wrap(err, "Failed to create item")
	}
	return item, nil
}

func (uc *ItemUseCase) Update(ctx context.Context, id string, input UpdateItemInput, image *service.File) (*entity.Item, error) {
	item, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, errors.BadRequest("Item name cannot be empty", nil)
		}
		item.Name = strings.TrimSpace(*input.Name)
	}
	setString(&item.Description, input.Description)
	if input.MRP != nil {
		item.MRP = *input.MRP
	}
	if input.TotalStock != nil {
		if *input.TotalStock < 0 {
			return nil, errors.BadRequest("Total stock cannot be negative", nil)
		}
		item.TotalStock = *input.TotalStock
	}
	if input.DiscountedPrice != nil {
		item.DiscountedPrice = input.DiscountedPrice
	}
	if err := validatePricing(item.MRP, item.DiscountedPrice); err != nil {
		return nil, err
	}

	categoryID, subCategoryID := item.CategoryID, item.SubCategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}
	if input.SubCategoryID != nil {
		subCategoryID = *input.SubCategoryID
	}
	if categoryID != item.CategoryID || subCategoryID != item.SubCategoryID {
		if err := uc.checkPlacement(ctx, categoryID, subCategoryID); err != nil {
			return nil, err
		}
		// Stored images keep their keys under the old placement; they are
		// addressed by URL, so deletes still find them.
		item.CategoryID, item.SubCategoryID = categoryID, subCategoryID
	}

	if input.Filters != nil {
		item.Filters = NormalizeFilters(*input.Filters)
	}

	if image != nil && len(image.Data) > 0 {
		key := service.ObjectKey(itemFolder(item.CategoryID, item.SubCategoryID, item.ID), image.FileName, uc.now())
		url, err := uc.store.Replace(ctx, item.Image, key, image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload item image", err)
		}
		item.Image = url
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, wrap(err, "Failed to update item")
	}
	return item, nil
}

// Delete removes the item, its item detail and every image either of them holds.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.cascade.deleteItem(ctx, item); err != nil {
		return wrap(err, "Failed to delete item")
	}
	return nil
}

func (uc *ItemUseCase) Get(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Item not found"), "Failed to load item")
	}
	return item, nil
}

// List pages over items matching query. An empty result is NOT_FOUND.
func (uc *ItemUseCase) List(ctx context.Context, query repository.ItemQuery, page utils.PaginationParams) ([]*entity.Item, int64, error) {
	items, total, err := uc.itemRepo.List(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, wrap(err, "Failed to list items")
	}
	if len(items) == 0 {
		return nil, 0, errors.NotFoundMessage("No items found")
	}
	return items, total, nil
}

// Filter returns the items carrying every filter pair; an empty result is not an error.
func (uc *ItemUseCase) Filter(ctx context.Context, filters []entity.ItemFilter, page utils.PaginationParams) ([]*entity.Item, int64, error) {
	items, total, err := uc.itemRepo.List(ctx, repository.ItemQuery{Filters: NormalizeFilters(filters)}, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, wrap(err, "Failed to filter items")
	}
	return items, total, nil
}
