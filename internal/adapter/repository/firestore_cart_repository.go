package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	UserCartsCollection        = "user_carts"
	PartnerCartsCollection     = "partner_carts"
	UserWishlistsCollection    = "user_wishlists"
	PartnerWishlistsCollection = "partner_wishlists"
)

// firestoreCartRepository keeps one document per owner in collection; user and
// partner carts live in different collections.
type firestoreCartRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreCartRepository(client *firestore.Client, collection string) repository.CartRepository {
	return &firestoreCartRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreCartRepository) Get(ctx context.Context, ownerID string) (*entity.Cart, error) {
	cart, err := getDoc[entity.Cart](ctx, r.client.Collection(r.collection).Doc(ownerID), "Cart")
	if err != nil {
		return nil, err
	}
	cart.OwnerID = ownerID
	return cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	_, err := r.client.Collection(r.collection).Doc(cart.OwnerID).Set(ctx, cart)
	return err
}

type firestoreWishlistRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreWishlistRepository(client *firestore.Client, collection string) repository.WishlistRepository {
	return &firestoreWishlistRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreWishlistRepository) Get(ctx context.Context, ownerID string) (*entity.Wishlist, error) {
	wishlist, err := getDoc[entity.Wishlist](ctx, r.client.Collection(r.collection).Doc(ownerID), "Wishlist")
	if err != nil {
		return nil, err
	}
	wishlist.OwnerID = ownerID
	return wishlist, nil
}

func (r *firestoreWishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	now := time.Now()
	if wishlist.CreatedAt.IsZero() {
		wishlist.CreatedAt = now
	}
	wishlist.UpdatedAt = now
	_, err := r.client.Collection(r.collection).Doc(wishlist.OwnerID).Set(ctx, wishlist)
	return err
}
