package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

type AddressRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserAddress, error)
	Save(ctx context.Context, address *entity.UserAddress) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}

type TBYBRepository interface {
	Get(ctx context.Context, userID string) (*entity.TBYB, error)
	Save(ctx context.Context, tbyb *entity.TBYB) error
}
