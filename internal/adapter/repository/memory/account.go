package memory

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

type walletRepository struct {
	wallets *table[entity.Wallet]
}

func NewWalletRepository() repository.WalletRepository {
	return &walletRepository{wallets: newTable[entity.Wallet]("Wallet", func(w *entity.Wallet) *entity.Wallet {
		c := *w
		c.Transactions = cloneSlice(w.Transactions)
		return &c
	})}
}

func (r *walletRepository) Create(_ context.Context, wallet *entity.Wallet) error {
	if !r.wallets.insert(wallet.PartnerID, wallet) {
		return errors.BadRequest("Wallet already exists for this partner", nil)
	}
	return nil
}

func (r *walletRepository) Get(_ context.Context, partnerID string) (*entity.Wallet, error) {
	return r.wallets.get(partnerID)
}

func (r *walletRepository) Mutate(_ context.Context, partnerID string, fn func(*entity.Wallet) error) (*entity.Wallet, error) {
	return r.wallets.update(partnerID, func(w *entity.Wallet) error {
		if err := fn(w); err != nil {
			return err
		}
		w.UpdatedAt = time.Now()
		return nil
	})
}

type addressRepository struct {
	addresses *table[entity.UserAddress]
}

func NewAddressRepository() repository.AddressRepository {
	return &addressRepository{addresses: newTable[entity.UserAddress]("Address", func(a *entity.UserAddress) *entity.UserAddress {
		c := *a
		c.AddressDetail = cloneSlice(a.AddressDetail)
		return &c
	})}
}

func (r *addressRepository) Get(_ context.Context, userID string) (*entity.UserAddress, error) {
	return r.addresses.get(userID)
}

func (r *addressRepository) Save(_ context.Context, a *entity.UserAddress) error {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.addresses.put(a.UserID, a)
	return nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = cloneSlice(o.Items)
	if o.Refund != nil {
		rf := *o.Refund
		c.Refund = &rf
	}
	if o.Exchange != nil {
		ex := *o.Exchange
		c.Exchange = &ex
	}
	return &c
}

type orderRepository struct {
	orders *table[entity.Order]
}

func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{orders: newTable[entity.Order]("Order", cloneOrder)}
}

func (r *orderRepository) Create(_ context.Context, o *entity.Order) error {
	r.orders.put(o.ID, o)
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.orders.get(id)
}

func (r *orderRepository) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	return r.orders.find(func(o *entity.Order) bool { return o.UserID == userID },
		newerFirst(func(o *entity.Order) time.Time { return o.CreatedAt })), nil
}

func (r *orderRepository) Update(_ context.Context, o *entity.Order) error {
	o.UpdatedAt = time.Now()
	r.orders.put(o.ID, o)
	return nil
}

func (r *orderRepository) Delete(_ context.Context, id string) error {
	r.orders.remove(id)
	return nil
}

type tbybRepository struct {
	entries *table[entity.TBYB]
}

func NewTBYBRepository() repository.TBYBRepository {
	return &tbybRepository{entries: newTable[entity.TBYB]("TBYB", func(t *entity.TBYB) *entity.TBYB {
		c := *t
		c.Images = cloneSlice(t.Images)
		return &c
	})}
}

func (r *tbybRepository) Get(_ context.Context, userID string) (*entity.TBYB, error) {
	return r.entries.get(userID)
}

func (r *tbybRepository) Save(_ context.Context, t *entity.TBYB) error {
	r.entries.put(t.UserID, t)
	return nil
}
