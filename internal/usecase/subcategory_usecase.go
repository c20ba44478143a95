package usecase

import (
	"context"
	"fmt"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/utils"
)

type SubCategoryUseCase struct {
	subCategoryRepo repository.SubCategoryRepository
	categoryRepo    repository.CategoryRepository
	store           service.ObjectStore
	cascade         *catalogCascade
	now             func() time.Time
}

func NewSubCategoryUseCase(
	subCategoryRepo repository.SubCategoryRepository,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
	store service.ObjectStore,
) *SubCategoryUseCase {
	return &SubCategoryUseCase{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
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

type CreateSubCategoryInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
	CategoryID  string `json:"categoryId" form:"categoryId" validate:"required"`
}

type UpdateSubCategoryInput struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	CategoryID  *string `json:"categoryId" form:"categoryId"`
}

func subCategoryImageFolder(categoryID, subCategoryID string) string {
	return fmt.Sprintf("Nanocart/categories/%s/subCategories/%s", categoryID, subCategoryID)
}

func (uc *SubCategoryUseCase) ensureUniqueName(ctx context.Context, name, selfID string) error {
	existing, err := uc.subCategoryRepo.GetByName(ctx, name)
	if err == nil && existing.ID != selfID {
		return errors.Conflict("SubCategory with this name already exists")
	}
	if err != nil && !isNotFound(err) {
		return wrap(err, "Failed to check subcategory name")
	}
	return nil
}

func (uc *SubCategoryUseCase) requireCategory(ctx context.Context, categoryID string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return notFoundAs(err, errors.BadRequest("Category not found", nil), "Failed to load category")
	}
	return nil
}

func (uc *SubCategoryUseCase) Create(ctx context.Context, input CreateSubCategoryInput, image *service.File) (*entity.SubCategory, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.BadRequest("Image is required", nil)
	}
	name := utils.NormalizeName(input.Name)
	if name == "" {
		return nil, errors.BadRequest("SubCategory name is required", nil)
	}
	if err := uc.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	now := uc.now()
	sub := &entity.SubCategory{
		ID:          generateUUID(),
		Name:        name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	url, err := uc.store.Upload(ctx, service.ObjectKey(subCategoryImageFolder(sub.CategoryID, sub.ID), image.FileName, now), image.Data, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload subcategory image", err)
	}
	sub.Image = url

	if err := uc.subCategoryRepo.Create(ctx, sub); err != nil {
		return nil, wrap(err, "Failed to create subcategory")
	}
	return sub, nil
}

func (uc *SubCategoryUseCase) Update(ctx context.Context, id string, input UpdateSubCategoryInput, image *service.File) (*entity.SubCategory, error) {
	sub, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := utils.NormalizeName(*input.Name)
		if name == "" {
			return nil, errors.BadRequest("SubCategory name cannot be empty", nil)
		}
		if name != sub.Name {
			if err := uc.ensureUniqueName(ctx, name, sub.ID); err != nil {
				return nil, err
			}
			sub.Name = name
		}
	}
	if input.CategoryID != nil && *input.CategoryID != sub.CategoryID {
		if err := uc.requireCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		sub.CategoryID = *input.CategoryID
	}
	setString(&sub.Description, input.Description)

	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Replace(ctx, sub.Image, service.ObjectKey(subCategoryImageFolder(sub.CategoryID, sub.ID), image.FileName, uc.now()), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload subcategory image", err)
		}
		sub.Image = url
	}

	if err := uc.subCategoryRepo.Update(ctx, sub); err != nil {
		return nil, wrap(err, "Failed to update subcategory")
	}
	return sub, nil
}

func (uc *SubCategoryUseCase) Delete(ctx context.Context, id string) error {
	sub, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.cascade.deleteSubCategory(ctx, sub); err != nil {
		return wrap(err, "Failed to delete subcategory")
	}
	return nil
}

func (uc *SubCategoryUseCase) Get(ctx context.Context, id string) (*entity.SubCategory, error) {
	sub, err := uc.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("SubCategory not found"), "Failed to load subcategory")
	}
	return sub, nil
}

// List pages over subcategories, restricted to categoryID when set. An empty page is NOT_FOUND.
func (uc *SubCategoryUseCase) List(ctx context.Context, categoryID string, page utils.PaginationParams) ([]*entity.SubCategory, int64, error) {
	subs, total, err := uc.subCategoryRepo.List(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, wrap(err, "Failed to list subcategories")
	}
	if len(subs) == 0 {
		return nil, 0, errors.NotFoundMessage("No subcategories found")
	}
	return subs, total, nil
}
