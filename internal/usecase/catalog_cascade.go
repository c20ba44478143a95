package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/logger"
)

// catalogCascade deletes catalog documents top-down, removing every stored
// image exactly once before the document that references it. It stops at the
// first repository error and does not undo earlier deletes.
type catalogCascade struct {
	subCategoryRepo repository.SubCategoryRepository
	itemRepo        repository.ItemRepository
	itemDetailRepo  repository.ItemDetailRepository
	store           service.ObjectStore
}

func (c *catalogCascade) deleteImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := c.store.Delete(ctx, url); err != nil {
		logger.Warn("Failed to delete image %s: %v", url, err)
	}
}

func (c *catalogCascade) deleteItemDetail(ctx context.Context, detail *entity.ItemDetail) error {
	for _, url := range detail.ImageURLs() {
		c.deleteImage(ctx, url)
	}
	return c.itemDetailRepo.Delete(ctx, detail.ID)
}

func (c *catalogCascade) deleteItem(ctx context.Context, item *entity.Item) error {
	detail, err := c.itemDetailRepo.GetByItemID(ctx, item.ID)
	switch {
	case err == nil:
		if err := c.deleteItemDetail(ctx, detail); err != nil {
			return err
		}
	case !isNotFound(err):
		return err
	}

	c.deleteImage(ctx, item.Image)
	return c.itemRepo.Delete(ctx, item.ID)
}

func (c *catalogCascade) deleteItems(ctx context.Context, query repository.ItemQuery) (int, error) {
	items, err := c.itemRepo.FindAll(ctx, query)
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		if err := c.deleteItem(ctx, item); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

func (c *catalogCascade) deleteSubCategory(ctx context.Context, sub *entity.SubCategory) error {
	n, err := c.deleteItems(ctx, repository.ItemQuery{SubCategoryID: sub.ID})
	if err != nil {
		return err
	}
	c.deleteImage(ctx, sub.Image)
	if err := c.subCategoryRepo.Delete(ctx, sub.ID); err != nil {
		return err
	}
	logger.Info("Deleted subcategory %s with %d items", sub.ID, n)
	return nil
}

// deleteCategoryChildren removes everything below category but not the category itself.
func (c *catalogCascade) deleteCategoryChildren(ctx context.Context, category *entity.Category) error {
	var (
		subs  []*entity.SubCategory
		items []*entity.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subs, err = c.subCategoryRepo.ListAllByCategory(gctx, category.ID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = c.itemRepo.FindAll(gctx, repository.ItemQuery{CategoryID: category.ID})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, item := range items {
		if err := c.deleteItem(ctx, item); err != nil {
			return err
		}
	}
	for _, sub := range subs {
		c.deleteImage(ctx, sub.Image)
		if err := c.subCategoryRepo.Delete(ctx, sub.ID); err != nil {
			return err
		}
	}

	logger.Info("Deleted category %s: %d subcategories, %d items", category.ID, len(subs), len(items))
	return nil
}
