package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	Get(ctx context.Context, partnerID string) (*entity.Wallet, error)
	// Mutate reads the wallet, applies fn and writes it back atomically. An error
	// from fn aborts without writing.
	Mutate(ctx context.Context, partnerID string, fn func(*entity.Wallet) error) (*entity.Wallet, error)
}
