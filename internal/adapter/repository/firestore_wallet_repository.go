package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

const walletsCollection = "wallets"

type firestoreWalletRepository struct {
	client *firestore.Client
}

// NewFirestoreWalletRepository keys wallets by partner id.
func NewFirestoreWalletRepository(client *firestore.Client) repository.WalletRepository {
	return &firestoreWalletRepository{
		client: client,
	}
}

func (r *firestoreWalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	_, err := r.client.Collection(walletsCollection).Doc(wallet.PartnerID).Create(ctx, wallet)
	if isAlreadyExists(err) {
		return errors.BadRequest("Wallet already exists for this partner", err)
	}
	return err
}

func (r *firestoreWalletRepository) Get(ctx context.Context, partnerID string) (*entity.Wallet, error) {
	return getDoc[entity.Wallet](ctx, r.client.Collection(walletsCollection).Doc(partnerID), "Wallet")
}

func (r *firestoreWalletRepository) Mutate(ctx context.Context, partnerID string, fn func(*entity.Wallet) error) (*entity.Wallet, error) {
	docRef := r.client.Collection(walletsCollection).Doc(partnerID)

	var updated entity.Wallet
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Wallet", nil)
			}
			return err
		}

		var wallet entity.Wallet
		if err := doc.DataTo(&wallet); err != nil {
			return err
		}

		if err := fn(&wallet); err != nil {
			return err
		}
		wallet.UpdatedAt = time.Now()
		updated = wallet

		return tx.Set(docRef, wallet)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
