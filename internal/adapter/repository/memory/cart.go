package memory

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

type cartRepository struct {
	carts *table[entity.Cart]
}

func NewCartRepository() repository.CartRepository {
	return &cartRepository{carts: newTable[entity.Cart]("Cart", func(c *entity.Cart) *entity.Cart {
		cp := *c
		cp.Items = cloneSlice(c.Items)
		return &cp
	})}
}

func (r *cartRepository) Get(_ context.Context, ownerID string) (*entity.Cart, error) {
	return r.carts.get(ownerID)
}

func (r *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	r.carts.put(cart.OwnerID, cart)
	return nil
}

type wishlistRepository struct {
	wishlists *table[entity.Wishlist]
}

func NewWishlistRepository() repository.WishlistRepository {
	return &wishlistRepository{wishlists: newTable[entity.Wishlist]("Wishlist", func(w *entity.Wishlist) *entity.Wishlist {
		cp := *w
		cp.Items = cloneSlice(w.Items)
		return &cp
	})}
}

func (r *wishlistRepository) Get(_ context.Context, ownerID string) (*entity.Wishlist, error) {
	return r.wishlists.get(ownerID)
}

func (r *wishlistRepository) Save(_ context.Context, w *entity.Wishlist) error {
	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
	r.wishlists.put(w.OwnerID, w)
	return nil
}
