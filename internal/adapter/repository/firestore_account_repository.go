package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	addressesCollection = "user_addresses"
	ordersCollection    = "orders"
	tbybCollection      = "tbyb"
)

type firestoreAddressRepository struct {
	client *firestore.Client
}

func NewFirestoreAddressRepository(client *firestore.Client) repository.AddressRepository {
	return &firestoreAddressRepository{
		client: client,
	}
}

func (r *firestoreAddressRepository) Get(ctx context.Context, userID string) (*entity.UserAddress, error) {
	return getDoc[entity.UserAddress](ctx, r.client.Collection(addressesCollection).Doc(userID), "Address")
}

func (r *firestoreAddressRepository) Save(ctx context.Context, address *entity.UserAddress) error {
	now := time.Now()
	if address.CreatedAt.IsZero() {
		address.CreatedAt = now
	}
	address.UpdatedAt = now
	_, err := r.client.Collection(addressesCollection).Doc(address.UserID).Set(ctx, address)
	return err
}

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	return err
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return getDoc[entity.Order](ctx, r.client.Collection(ordersCollection).Doc(id), "Order")
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).Where("userId", "==", userID).Documents(ctx)
	orders, err := collect[entity.Order](iter)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders, func(o *entity.Order) int64 { return o.CreatedAt.UnixNano() })
	return orders, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()
	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	return err
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Delete(ctx)
	return err
}

type firestoreTBYBRepository struct {
	client *firestore.Client
}

func NewFirestoreTBYBRepository(client *firestore.Client) repository.TBYBRepository {
	return &firestoreTBYBRepository{
		client: client,
	}
}

func (r *firestoreTBYBRepository) Get(ctx context.Context, userID string) (*entity.TBYB, error) {
	return getDoc[entity.TBYB](ctx, r.client.Collection(tbybCollection).Doc(userID), "TBYB")
}

func (r *firestoreTBYBRepository) Save(ctx context.Context, tbyb *entity.TBYB) error {
	_, err := r.client.Collection(tbybCollection).Doc(tbyb.UserID).Set(ctx, tbyb)
	return err
}
