package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/utils"
)

func TestCategoryCreateNormalizesName(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "  sHOES "}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", category.Name)
	assert.Equal(t, category.Name, utils.NormalizeName(category.Name))
	f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryDuplicateNameIsConflictWithoutUpload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := f.categoryUC()

	_, err := uc.Create(ctx, CreateCategoryInput{Name: "shoes"}, nil)
	require.NoError(t, err)

	_, err = uc.Create(ctx, CreateCategoryInput{Name: "SHOES"}, imageFile("c.png"))
	requireStatus(t, err, http.StatusConflict)
	f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubCategoryRules(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := f.subCategoryUC()

	_, err := uc.Create(ctx, CreateSubCategoryInput{Name: "running", CategoryID: "missing"}, imageFile("s.png"))
	requireStatus(t, err, http.StatusBadRequest)

	_, err = uc.Create(ctx, CreateSubCategoryInput{Name: "running", CategoryID: "missing"}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	category, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "shoes"}, nil)
	require.NoError(t, err)

	_, _, err = uc.List(ctx, category.ID, utils.PaginationParams{Page: 1, Limit: 5})
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.Create(ctx, CreateSubCategoryInput{Name: "running", CategoryID: category.ID}, imageFile("s.png"))
	require.NoError(t, err)
	uploads := len(f.store.uploadedKeys())

	_, err = uc.Create(ctx, CreateSubCategoryInput{Name: "RUNNING", CategoryID: category.ID}, imageFile("s.png"))
	requireStatus(t, err, http.StatusConflict)
	assert.Len(t, f.store.uploadedKeys(), uploads)

	subs, total, err := uc.List(ctx, category.ID, utils.PaginationParams{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, subs, 1)
}

func TestItemPricing(t *testing.T) {
	f := newFixture()
	item := f.catalog(t)

	assert.Equal(t, 20.0, item.DiscountPercentage)
	assert.False(t, item.IsItemDetail)
	assert.True(t, strings.HasPrefix(item.Image, cdn+"Nanocart/categories/"+item.CategoryID+"/subCategories/"+item.SubCategoryID+"/item/"+item.ID+"/"))

	_, err := f.itemUC().Create(context.Background(), CreateItemInput{
		Name:            "Too cheap",
		MRP:             100,
		DiscountedPrice: floatPtr(150),
		CategoryID:      item.CategoryID,
		SubCategoryID:   item.SubCategoryID,
	}, imageFile("x.png"))
	requireStatus(t, err, http.StatusBadRequest)
}

func TestItemFilterANDsPairs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	base := f.catalog(t)
	uc := f.itemUC()

	mk := func(name string, filters ...entity.ItemFilter) {
		_, err := uc.Create(ctx, CreateItemInput{
			Name: name, MRP: 10, CategoryID: base.CategoryID, SubCategoryID: base.SubCategoryID, Filters: filters,
		}, imageFile(name+".png"))
		require.NoError(t, err)
	}
	mk("a", entity.ItemFilter{Key: "Fabric", Value: "cotton"}, entity.ItemFilter{Key: "fit", Value: "slim"})
	mk("b", entity.ItemFilter{Key: "fabric", Value: "cotton"})
	mk("c", entity.ItemFilter{Key: "fit", Value: "slim"})

	items, total, err := uc.Filter(ctx, []entity.ItemFilter{{Key: "fabric", Value: "cotton"}, {Key: "fit", Value: "slim"}}, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "a", items[0].Name)

	items, _, err = uc.Filter(ctx, []entity.ItemFilter{{Key: "fabric", Value: "silk"}}, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, _, err = uc.List(ctx, repository.ItemQuery{SubCategoryID: "nothing-here"}, utils.PaginationParams{Page: 1, Limit: 10})
	requireStatus(t, err, http.StatusNotFound)
}

func TestCategoryDeleteCascadesWithOneDeletePerImage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "apparel"}, imageFile("cat.png"))
	require.NoError(t, err)

	images := 1
	var firstItem *entity.Item
	for _, subName := range []string{"tops", "bottoms"} {
		sub, err := f.subCategoryUC().Create(ctx, CreateSubCategoryInput{Name: subName, CategoryID: category.ID}, imageFile(subName+".png"))
		require.NoError(t, err)
		images++
		for _, itemName := range []string{"one", "two"} {
			item, err := f.itemUC().Create(ctx, CreateItemInput{
				Name: subName + itemName, MRP: 50, CategoryID: category.ID, SubCategoryID: sub.ID,
			}, imageFile(itemName+".png"))
			require.NoError(t, err)
			images++
			if firstItem == nil {
				firstItem = item
			}
		}
	}

	_, err = f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID: firstItem.ID,
		ImagesByColor: []ColorBlockInput{
			{Color: "Red", Sizes: []entity.SizeStock{{Size: "M", SKUID: "R-M", Stock: 1}}},
			{Color: "Blue", Sizes: []entity.SizeStock{{Size: "M", SKUID: "B-M", Stock: 1}}},
		},
	}, []service.File{pngFile("red", "1.png"), pngFile("red", "2.png"), pngFile("Blue", "1.jpg"), pngFile("blue", "2.jpg")})
	require.NoError(t, err)
	images += 4

	require.NoError(t, f.categoryUC().Delete(ctx, category.ID))

	f.store.AssertNumberOfCalls(t, "Delete", images)
	deleted := map[string]bool{}
	for _, c := range f.store.Calls {
		if c.Method == "Delete" {
			url := c.Arguments.String(1)
			assert.False(t, deleted[url], "image %s deleted twice", url)
			deleted[url] = true
		}
	}

	_, err = f.categoryUC().Get(ctx, category.ID)
	requireStatus(t, err, http.StatusNotFound)
	left, err := f.items.FindAll(ctx, repository.ItemQuery{CategoryID: category.ID})
	require.NoError(t, err)
	assert.Empty(t, left)
	subs, err := f.subs.ListAllByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
	_, err = f.details.GetByItemID(ctx, firstItem.ID)
	requireCode(t, err, "NOT_FOUND")
}

func TestFilterUseCase(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewFilterUseCase(f.filters)

	filter, err := uc.Create(ctx, FilterInput{Key: " Fabric ", Values: []string{"cotton", " cotton", "", "silk"}})
	require.NoError(t, err)
	assert.Equal(t, "fabric", filter.Key)
	assert.Equal(t, []string{"cotton", "silk"}, filter.Values)

	_, err = uc.Create(ctx, FilterInput{Key: "FABRIC", Values: []string{"wool"}})
	requireStatus(t, err, http.StatusConflict)

	_, err = uc.Create(ctx, FilterInput{Key: "fit", Values: []string{" "}})
	requireStatus(t, err, http.StatusBadRequest)

	updated, err := uc.Update(ctx, filter.ID, FilterInput{Key: "fabric", Values: []string{"linen"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"linen"}, updated.Values)

	require.NoError(t, uc.Delete(ctx, filter.ID))
	requireStatus(t, uc.Delete(ctx, filter.ID), http.StatusNotFound)
}

func TestCategoryImageSharesCatalogKeyPrefix(t *testing.T) {
	f := newFixture()
	item := f.catalog(t)

	category, err := f.categoryUC().Get(context.Background(), item.CategoryID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(category.Image, cdn+"Nanocart/categories/"+category.ID+"/"), category.Image)
	assert.True(t, strings.HasPrefix(item.Image, cdn+"Nanocart/categories/"+category.ID+"/"), item.Image)
}

func TestItemMoveKeepsStoredImages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	oldImage := item.Image

	bags, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "bags"}, nil)
	require.NoError(t, err)
	totes, err := f.subCategoryUC().Create(ctx, CreateSubCategoryInput{Name: "totes", CategoryID: bags.ID}, imageFile("totes.png"))
	require.NoError(t, err)

	moved, err := f.itemUC().Update(ctx, item.ID, UpdateItemInput{CategoryID: &bags.ID, SubCategoryID: &totes.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, bags.ID, moved.CategoryID)
	assert.Equal(t, oldImage, moved.Image)

	require.NoError(t, f.itemUC().Delete(ctx, item.ID))
	f.store.AssertCalled(t, "Delete", mock.Anything, oldImage)
}
