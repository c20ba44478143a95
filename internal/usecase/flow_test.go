package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
)

func TestCatalogToCartFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "shoes"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", category.Name)

	sub, err := f.subCategoryUC().Create(ctx, CreateSubCategoryInput{Name: "sneakers", CategoryID: category.ID}, imageFile("s.png"))
	require.NoError(t, err)

	item, err := f.itemUC().Create(ctx, CreateItemInput{
		Name: "Court", MRP: 1000, DiscountedPrice: floatPtr(800), CategoryID: category.ID, SubCategoryID: sub.ID,
	}, imageFile("i.png"))
	require.NoError(t, err)
	assert.Equal(t, 20.0, item.DiscountPercentage)

	_, err = f.itemDetailUC().Create(ctx, CreateItemDetailInput{
		ItemID:        item.ID,
		ImagesByColor: []ColorBlockInput{{Color: "Red", Sizes: []entity.SizeStock{{Size: "M", SKUID: "SKU1", Stock: 10}}}},
	}, []service.File{pngFile("red", "front.png")})
	require.NoError(t, err)

	stored, err := f.itemUC().Get(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsItemDetail)

	user := f.user(t, "9876543210")
	cart, err := f.userCartUC().AddItem(ctx, user.ID, CartLineInput{ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}
