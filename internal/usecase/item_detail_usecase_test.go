package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
)

func TestItemDetailCreateStoresImagesPerColor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)

	detail, err := f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID: item.ID,
		ImagesByColor: []ColorBlockInput{
			{Color: "Red", Sizes: []entity.SizeStock{{Size: "M", SKUID: "SKU1", Stock: 10}}},
			{Color: "Navy Blue"},
		},
	}, []service.File{pngFile("RED", "a.PNG"), pngFile("red", "b.jpg")})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultReturnPolicy, detail.ReturnPolicy)
	require.Len(t, detail.ImagesByColor, 2)

	red := detail.ImagesByColor[0]
	assert.Equal(t, "Red", red.Color)
	require.Len(t, red.Images, 2)
	prefix := fmt.Sprintf("%sNanocart/categories/%s/subCategories/%s/item/%s/itemDetails/%s/red/",
		cdn, item.CategoryID, item.SubCategoryID, item.ID, detail.ID)
	assert.Equal(t, prefix+"red_image_1.png", red.Images[0].URL)
	assert.Equal(t, 1, red.Images[0].Priority)
	assert.Equal(t, prefix+"red_image_2.jpg", red.Images[1].URL)
	assert.Equal(t, 2, red.Images[1].Priority)

	assert.Empty(t, detail.ImagesByColor[1].Images)
	assert.NotNil(t, detail.ImagesByColor[1].Sizes)

	stored, err := f.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsItemDetail)
}

func TestItemDetailRejectsSixImagesBeforeUpload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	before := len(f.store.uploadedKeys())

	files := make([]service.File, 6)
	for i := range files {
		files[i] = pngFile("red", fmt.Sprintf("%d.png", i))
	}
	_, err := f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID:        item.ID,
		ImagesByColor: []ColorBlockInput{{Color: "red"}},
	}, files)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Len(t, f.store.uploadedKeys(), before)

	_, err = f.details.GetByItemID(ctx, item.ID)
	requireCode(t, err, "NOT_FOUND")
}

func TestItemDetailUniquePerItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	f.detail(t, item)

	_, err := f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID:        item.ID,
		ImagesByColor: []ColorBlockInput{{Color: "Green"}},
	}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID:        "missing",
		ImagesByColor: []ColorBlockInput{{Color: "Green"}},
	}, nil)
	requireStatus(t, err, http.StatusNotFound)
}

func TestItemDetailRejectsFilesForUndeclaredColor(t *testing.T) {
	f := newFixture()
	item := f.catalog(t)

	_, err := f.itemDetailUC().Create(context.Background(), CreateItemDetailInput{
		ItemID:        item.ID,
		ImagesByColor: []ColorBlockInput{{Color: "Red"}},
	}, []service.File{pngFile("green", "g.png")})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestItemDetailUpdateReplacesOnlyTouchedColors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	detail := f.detail(t, item)
	oldRed := detail.ImagesByColor[0].Images[0].URL

	updated, err := f.itemDetailUC().Update(ctx, detail.ID, UpdateItemDetailInput{
		ImagesByColor: []ColorBlockInput{{Color: "Black", Sizes: []entity.SizeStock{{Size: "L", SKUID: "SKU9", Stock: 2}}}},
	}, []service.File{pngFile("red", "new.png"), pngFile("black", "b.png")})
	require.NoError(t, err)

	f.store.AssertCalled(t, "Delete", mock.Anything, oldRed)
	f.store.AssertNumberOfCalls(t, "Delete", 1)

	red, ok := updated.FindColor("red", true)
	require.True(t, ok)
	require.Len(t, red.Images, 1)
	assert.True(t, strings.HasSuffix(red.Images[0].URL, "/red/red_image_1.png"))
	assert.True(t, red.HasSize("M", "SKU1"), "sizes of a color without a block are kept")

	black, ok := updated.FindColor("Black", false)
	require.True(t, ok)
	assert.Len(t, black.Images, 1)
}

func TestItemDetailDeleteClearsFlagAndImages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	detail := f.detail(t, item)

	require.NoError(t, f.itemDetailUC().Delete(ctx, detail.ID))
	f.store.AssertNumberOfCalls(t, "Delete", 1)

	stored, err := f.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsItemDetail)

	_, err = f.itemDetailUC().GetByItemID(ctx, item.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestGroupColorFiles(t *testing.T) {
	groups, err := GroupColorFiles([]service.File{pngFile(" Red", "1.png"), pngFile("RED", "2.png"), pngFile("blue", "1.png")})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Len(t, groups["red"].files, 2)

	_, err = GroupColorFiles([]service.File{pngFile("red", "noext")})
	requireStatus(t, err, http.StatusBadRequest)
}
