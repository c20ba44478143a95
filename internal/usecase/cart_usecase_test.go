package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCartMergesMatchingLines(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	f.detail(t, item)
	user := f.user(t, "9000000001")
	uc := f.userCartUC()

	line := CartLineInput{ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU1", Quantity: 2}
	_, err := uc.AddItem(ctx, user.ID, line)
	require.NoError(t, err)

	line.Color = "RED"
	line.Quantity = 0
	cart, err := uc.AddItem(ctx, user.ID, line)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity, "missing quantity defaults to 1")
}

func TestUserCartValidatesVariant(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	user := f.user(t, "9000000001")
	uc := f.userCartUC()

	_, err := uc.AddItem(ctx, user.ID, CartLineInput{ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU1"})
	requireStatus(t, err, http.StatusNotFound)

	f.detail(t, item)
	cases := map[string]CartLineInput{
		"unknown color": {ItemID: item.ID, Color: "green", Size: "M", SKUID: "SKU1"},
		"unknown size":  {ItemID: item.ID, Color: "red", Size: "XL", SKUID: "SKU1"},
		"sku mismatch":  {ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU2"},
		"negative":      {ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU1", Quantity: -1},
	}
	for name, in := range cases {
		_, err := uc.AddItem(ctx, user.ID, in)
		assert.Equal(t, http.StatusBadRequest, errorStatus(err), name)
	}

	_, err = uc.AddItem(ctx, "ghost", CartLineInput{ItemID: item.ID, Color: "red", Size: "M", SKUID: "SKU1"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestUserCartQuantitySteps(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	f.detail(t, item)
	user := f.user(t, "9000000001")
	uc := f.userCartUC()

	line := CartLineInput{ItemID: item.ID, Color: "Red", Size: "M", SKUID: "SKU1", Quantity: 2}
	_, err := uc.AddItem(ctx, user.ID, line)
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, user.ID, UpdateQuantityInput{CartLineInput: line, Action: "DECREASE"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = uc.UpdateQuantity(ctx, user.ID, UpdateQuantityInput{CartLineInput: line, Action: "decrease"})
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "decrease from 1 removes the line")

	_, err = uc.UpdateQuantity(ctx, user.ID, UpdateQuantityInput{CartLineInput: line, Action: "double"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = uc.RemoveItem(ctx, user.ID, line)
	requireStatus(t, err, http.StatusNotFound)
}

func TestUserCartGetEmpty(t *testing.T) {
	f := newFixture()
	cart, err := f.userCartUC().Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestPartnerCartMatchesColorExactly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	detail := f.detail(t, item)
	partner := f.partner(t, "9000000002")
	uc := NewPartnerCartUseCase(f.partnerCarts, f.partners, f.details)

	_, err := uc.Get(ctx, partner.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.AddItem(ctx, partner.ID, CartLineInput{ItemDetailID: detail.ID, Color: "Red", Size: "M", SKUID: "SKU1"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem(ctx, partner.ID, CartLineInput{ItemDetailID: detail.ID, Color: "Red", Size: "M", SKUID: "SKU1", Quantity: 5})
	require.NoError(t, err)
	cart, err := uc.AddItem(ctx, partner.ID, CartLineInput{ItemDetailID: detail.ID, Color: "red", Size: "M", SKUID: "SKU1", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2, "colors differing in case are separate lines")

	cart, err = uc.RemoveItem(ctx, partner.ID, CartLineInput{ItemDetailID: detail.ID, Color: "Red", Size: "M", SKUID: "SKU1"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "red", cart.Items[0].Color)
}

func TestWishlists(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.catalog(t)
	detail := f.detail(t, item)
	user := f.user(t, "9000000001")
	partner := f.partner(t, "9000000002")

	users := NewUserWishlistUseCase(memoryWishlist(), f.users, f.items, f.details)
	empty, err := users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	_, err = users.Add(ctx, user.ID, WishlistInput{ItemID: item.ID, Color: "RED"})
	require.NoError(t, err)
	_, err = users.Add(ctx, user.ID, WishlistInput{ItemID: item.ID, Color: "red"})
	requireStatus(t, err, http.StatusBadRequest)
	_, err = users.Add(ctx, user.ID, WishlistInput{ItemID: item.ID, Color: "green"})
	requireStatus(t, err, http.StatusBadRequest)
	list, err := users.Remove(ctx, user.ID, WishlistInput{ItemID: item.ID, Color: "Red"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	partners := NewPartnerWishlistUseCase(memoryWishlist(), f.partners, f.details)
	_, err = partners.Get(ctx, partner.ID)
	requireStatus(t, err, http.StatusNotFound)
	_, err = partners.Add(ctx, partner.ID, WishlistInput{ItemDetailID: detail.ID, Color: "red"})
	requireStatus(t, err, http.StatusBadRequest)
	_, err = partners.Add(ctx, partner.ID, WishlistInput{ItemDetailID: detail.ID, Color: "Red"})
	require.NoError(t, err)
	_, err = partners.Remove(ctx, partner.ID, WishlistInput{ItemDetailID: detail.ID, Color: "red"})
	requireStatus(t, err, http.StatusNotFound)
}
