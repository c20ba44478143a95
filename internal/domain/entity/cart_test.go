package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userKey(color string) LineKey {
	return LineKey{Ref: "item-1", Color: color, Size: "M", SKUID: "SKU1", FoldColor: true}
}

func TestCartAddLineMergesMatchingLines(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(userKey("red"), CartLine{ItemID: "item-1", Color: "red", Size: "M", SKUID: "SKU1", Quantity: 2})
	cart.AddLine(userKey("RED"), CartLine{ItemID: "item-1", Color: "RED", Size: "M", SKUID: "SKU1", Quantity: 3})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddLineExactColorKeepsSeparateLines(t *testing.T) {
	cart := &Cart{}
	exact := func(color string) LineKey {
		return LineKey{Ref: "detail-1", Color: color, Size: "M", SKUID: "SKU1"}
	}
	cart.AddLine(exact("red"), CartLine{ItemDetailID: "detail-1", Color: "red", Size: "M", SKUID: "SKU1", Quantity: 1})
	cart.AddLine(exact("Red"), CartLine{ItemDetailID: "detail-1", Color: "Red", Size: "M", SKUID: "SKU1", Quantity: 1})

	assert.Len(t, cart.Items, 2)
}

func TestCartRemoveLines(t *testing.T) {
	cart := &Cart{Items: []CartLine{
		{ItemID: "item-1", Color: "red", Size: "M", SKUID: "SKU1", Quantity: 1},
		{ItemID: "item-1", Color: "blue", Size: "M", SKUID: "SKU2", Quantity: 1},
	}}

	assert.Equal(t, 1, cart.RemoveLines(userKey("Red")))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "blue", cart.Items[0].Color)
	assert.Equal(t, 0, cart.RemoveLines(userKey("red")))
}

func TestCartStep(t *testing.T) {
	cart := &Cart{Items: []CartLine{{ItemID: "item-1", Color: "red", Size: "M", SKUID: "SKU1", Quantity: 2}}}

	assert.True(t, cart.Step(userKey("red"), true))
	assert.Equal(t, 3, cart.Items[0].Quantity)

	assert.True(t, cart.Step(userKey("red"), false))
	assert.True(t, cart.Step(userKey("red"), false))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	assert.True(t, cart.Step(userKey("red"), false))
	assert.Empty(t, cart.Items)

	assert.False(t, cart.Step(userKey("red"), true))
}

func TestWishlistContainsAndRemove(t *testing.T) {
	w := &Wishlist{Items: []WishlistLine{{ItemID: "item-1", Color: "Red"}}}

	assert.True(t, w.Contains("item-1", "red", true))
	assert.False(t, w.Contains("item-1", "red", false))
	assert.False(t, w.Remove("item-1", "red", false))
	assert.True(t, w.Remove("item-1", "red", true))
	assert.Empty(t, w.Items)
}
