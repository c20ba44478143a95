package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

// CartRepository keeps one cart document per owner. Get returns a NOT_FOUND
// AppError when the owner has no cart yet.
type CartRepository interface {
	Get(ctx context.Context, ownerID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
}

type WishlistRepository interface {
	Get(ctx context.Context, ownerID string) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
