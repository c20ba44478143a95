package usecase

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/utils"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	store        service.ObjectStore
	cascade      *catalogCascade
	now          func() time.Time
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
	store service.ObjectStore,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		store:        store,
		cascade: &catalogCascade{
			subCategoryRepo: subCategoryRepo,
			itemRepo:        itemRepo,
			itemDetailRepo:  itemDetailRepo,
			store:           store,
		},
		now: time.Now,
	}
}

type CreateCategoryInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

func categoryImageFolder(categoryID string) string {
	return "Nanocart/categories/" + categoryID
}

// ensureUniqueName rejects name when another category (not selfID) already uses it.
func (uc *CategoryUseCase) ensureUniqueName(ctx context.Context, name, selfID string) error {
	existing, err := uc.categoryRepo.GetByName(ctx, name)
	if err == nil && existing.ID != selfID {
		return errors.Conflict("Category with this name already exists")
	}
	if err != nil && !isNotFound(err) {
		return wrap(err, "Failed to check category name")
	}
	return nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput, image *service.File) (*entity.Category, error) {
	name := utils.NormalizeName(input.Name)
	if name == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}
	if err := uc.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	now := uc.now()
	category := &entity.Category{
		ID:          generateUUID(),
		Name:        name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Upload(ctx, service.ObjectKey(categoryImageFolder(category.ID), image.FileName, now), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload category image", err)
		}
		category.Image = url
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, wrap(err, "Failed to create category")
	}
	return category, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id string, input UpdateCategoryInput, image *service.File) (*entity.Category, error) {
	category, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := utils.NormalizeName(*input.Name)
		if name == "" {
			return nil, errors.BadRequest("Category name cannot be empty", nil)
		}
		if name != category.Name {
			if err := uc.ensureUniqueName(ctx, name, category.ID); err != nil {
				return nil, err
			}
			category.Name = name
		}
	}
	setString(&category.Description, input.Description)

	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Replace(ctx, category.Image, service.ObjectKey(categoryImageFolder(category.ID), image.FileName, uc.now()), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload category image", err)
		}
		category.Image = url
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, wrap(err, "Failed to update category")
	}
	return category, nil
}

// Delete removes the category together with its subcategories, items, item
// details and all of their images.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.cascade.deleteCategoryChildren(ctx, category); err != nil {
		return wrap(err, "Failed to delete category contents")
	}
	uc.cascade.deleteImage(ctx, category.Image)

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return wrap(err, "Failed to delete category")
	}
	return nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Category not found"), "Failed to load category")
	}
	return category, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, wrap(err, "Failed to list categories")
	}
	return categories, nil
}
