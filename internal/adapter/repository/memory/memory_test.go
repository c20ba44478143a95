package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	apperrors "nanocart/pkg/errors"
)

func TestGetMissingIsNotFound(t *testing.T) {
	_, err := NewUserRepository().GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	_, err = NewCartRepository().Get(context.Background(), "nope")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestStoredValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository()
	cart := &entity.Cart{OwnerID: "u1", UserID: "u1", Items: []entity.CartLine{{ItemID: "i1", Quantity: 1}}}
	require.NoError(t, repo.Save(ctx, cart))

	cart.Items[0].Quantity = 99
	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)

	got.Items[0].Quantity = 50
	again, _ := repo.Get(ctx, "u1")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestItemFindAllAndsFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	base := time.Now()
	items := []*entity.Item{
		{ID: "a", CategoryID: "c", Filters: []entity.ItemFilter{{Key: "fabric", Value: "cotton"}, {Key: "fit", Value: "slim"}}, CreatedAt: base},
		{ID: "b", CategoryID: "c", Filters: []entity.ItemFilter{{Key: "fabric", Value: "cotton"}}, CreatedAt: base.Add(time.Second)},
		{ID: "c", CategoryID: "other", Filters: []entity.ItemFilter{{Key: "fabric", Value: "cotton"}, {Key: "fit", Value: "slim"}}, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, it := range items {
		require.NoError(t, repo.Create(ctx, it))
	}

	got, err := repo.FindAll(ctx, repository.ItemQuery{Filters: []entity.ItemFilter{{Key: "fabric", Value: "cotton"}}})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID, "newest first")

	got, _ = repo.FindAll(ctx, repository.ItemQuery{CategoryID: "c", Filters: []entity.ItemFilter{
		{Key: "fabric", Value: "cotton"}, {Key: "fit", Value: "slim"},
	}})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	paged, total, err := repo.List(ctx, repository.ItemQuery{}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, paged, 1)
	assert.Equal(t, "a", paged[0].ID)
}

func TestWalletMutateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository()
	require.NoError(t, repo.Create(ctx, &entity.Wallet{PartnerID: "p1", TotalBalance: 100, IsActive: true}))

	err := repo.Create(ctx, &entity.Wallet{PartnerID: "p1"})
	assert.Equal(t, 400, apperrors.StatusOf(err))

	_, err = repo.Mutate(ctx, "p1", func(w *entity.Wallet) error {
		w.TotalBalance = 0
		return errors.New("rejected")
	})
	require.Error(t, err)

	w, _ := repo.Get(ctx, "p1")
	assert.EqualValues(t, 100, w.TotalBalance)

	w, err = repo.Mutate(ctx, "p1", func(w *entity.Wallet) error {
		w.TotalBalance += 50
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 150, w.TotalBalance)

	_, err = repo.Mutate(ctx, "missing", func(*entity.Wallet) error { return nil })
	assert.Equal(t, 404, apperrors.StatusOf(err))
}

func TestOTPMarkVerified(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPRepository()
	require.NoError(t, repo.Upsert(ctx, &entity.PhoneOTP{PhoneNumber: "9999999999", OTP: "123456"}))
	require.NoError(t, repo.MarkVerified(ctx, "9999999999"))

	otp, err := repo.Get(ctx, "9999999999")
	require.NoError(t, err)
	assert.True(t, otp.IsVerified)

	assert.Error(t, repo.MarkVerified(ctx, "0000000000"))
}
