package usecase

import (
	"context"
	"strings"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

type CartLineInput struct {
	ItemID       string `json:"itemId"`
	ItemDetailID string `json:"itemDetailId"`
	Color        string `json:"color" validate:"required"`
	Size         string `json:"size" validate:"required"`
	SKUID        string `json:"skuId" validate:"required"`
	Quantity     int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	CartLineInput
	Action string `json:"action" validate:"required"`
}

func parseAction(action string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionIncrease:
		return true, nil
	case ActionDecrease:
		return false, nil
	default:
		return false, errors.BadRequest("Invalid action. Use 'increase' or 'decrease'", nil)
	}
}

// UserCartUseCase keys lines by item id and validates the variant against the
// item's detail, comparing colors case-insensitively.
type UserCartUseCase struct {
	cartRepo       repository.CartRepository
	userRepo       repository.UserRepository
	itemRepo       repository.ItemRepository
	itemDetailRepo repository.ItemDetailRepository
	now            func() time.Time
}

func NewUserCartUseCase(
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
) *UserCartUseCase {
	return &UserCartUseCase{
		cartRepo:       cartRepo,
		userRepo:       userRepo,
		itemRepo:       itemRepo,
		itemDetailRepo: itemDetailRepo,
		now:            time.Now,
	}
}

func userLineKey(input CartLineInput) entity.LineKey {
	return entity.LineKey{Ref: input.ItemID, Color: input.Color, Size: input.Size, SKUID: input.SKUID, FoldColor: true}
}

func (uc *UserCartUseCase) AddItem(ctx context.Context, userID string, input CartLineInput) (*entity.Cart, error) {
	if input.ItemID == "" {
		return nil, errors.BadRequest("itemId is required", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
	}
	if _, err := uc.itemRepo.GetByID(ctx, input.ItemID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Item not found"), "Failed to load item")
	}
	detail, err := uc.itemDetailRepo.GetByItemID(ctx, input.ItemID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}

	variant, ok := detail.FindColor(input.Color, true)
	if !ok {
		return nil, errors.BadRequest("Color not available for this item", nil)
	}
	if !variant.HasSize(input.Size, input.SKUID) {
		return nil, errors.BadRequest("Size or SKU not available for this color", nil)
	}

	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load cart")
		}
		cart = &entity.Cart{OwnerID: userID, UserID: userID}
	}

	cart.AddLine(userLineKey(input), entity.CartLine{
		ItemID:   input.ItemID,
		Color:    input.Color,
		Size:     input.Size,
		SKUID:    input.SKUID,
		Quantity: input.Quantity,
		AddedAt:  uc.now(),
	})

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

func (uc *UserCartUseCase) RemoveItem(ctx context.Context, userID string, input CartLineInput) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Cart not found"), "Failed to load cart")
	}
	if cart.RemoveLines(userLineKey(input)) == 0 {
		return nil, errors.NotFoundMessage("Item not found in cart")
	}
	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

func (uc *UserCartUseCase) UpdateQuantity(ctx context.Context, userID string, input UpdateQuantityInput) (*entity.Cart, error) {
	increase, err := parseAction(input.Action)
	if err != nil {
		return nil, err
	}
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Cart not found"), "Failed to load cart")
	}
	if !cart.Step(userLineKey(input.CartLineInput), increase) {
		return nil, errors.NotFoundMessage("Item not found in cart")
	}
	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

// Get returns an empty cart rather than NOT_FOUND for users without one.
func (uc *UserCartUseCase) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if isNotFound(err) {
		return &entity.Cart{OwnerID: userID, UserID: userID, Items: []entity.CartLine{}}, nil
	}
	if err != nil {
		return nil, wrap(err, "Failed to load cart")
	}
	return cart, nil
}

// PartnerCartUseCase keys lines by item detail id and trusts the variant
// identifiers it is given; colors match exactly.
type PartnerCartUseCase struct {
	cartRepo       repository.CartRepository
	partnerRepo    repository.PartnerRepository
	itemDetailRepo repository.ItemDetailRepository
	now            func() time.Time
}

func NewPartnerCartUseCase(
	cartRepo repository.CartRepository,
	partnerRepo repository.PartnerRepository,
	itemDetailRepo repository.ItemDetailRepository,
) *PartnerCartUseCase {
	return &PartnerCartUseCase{
		cartRepo:       cartRepo,
		partnerRepo:    partnerRepo,
		itemDetailRepo: itemDetailRepo,
		now:            time.Now,
	}
}

func partnerLineKey(input CartLineInput) entity.LineKey {
	return entity.LineKey{Ref: input.ItemDetailID, Color: input.Color, Size: input.Size, SKUID: input.SKUID}
}

func (uc *PartnerCartUseCase) AddItem(ctx context.Context, partnerID string, input CartLineInput) (*entity.Cart, error) {
	if input.ItemDetailID == "" {
		return nil, errors.BadRequest("itemDetailId is required", nil)
	}
	if input.Quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	if _, err := uc.partnerRepo.GetByID(ctx, partnerID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
	}
	if _, err := uc.itemDetailRepo.GetByID(ctx, input.ItemDetailID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}

	cart, err := uc.cartRepo.Get(ctx, partnerID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load cart")
		}
		cart = &entity.Cart{OwnerID: partnerID, PartnerID: partnerID}
	}

	cart.AddLine(partnerLineKey(input), entity.CartLine{
		ItemDetailID: input.ItemDetailID,
		Color:        input.Color,
		Size:         input.Size,
		SKUID:        input.SKUID,
		Quantity:     input.Quantity,
		AddedAt:      uc.now(),
	})

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

func (uc *PartnerCartUseCase) RemoveItem(ctx context.Context, partnerID string, input CartLineInput) (*entity.Cart, error) {
	cart, err := uc.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if cart.RemoveLines(partnerLineKey(input)) == 0 {
		return nil, errors.NotFoundMessage("Item not found in cart")
	}
	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

func (uc *PartnerCartUseCase) UpdateQuantity(ctx context.Context, partnerID string, input UpdateQuantityInput) (*entity.Cart, error) {
	increase, err := parseAction(input.Action)
	if err != nil {
		return nil, err
	}
	cart, err := uc.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !cart.Step(partnerLineKey(input.CartLineInput), increase) {
		return nil, errors.NotFoundMessage("Item not found in cart")
	}
	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, wrap(err, "Failed to save cart")
	}
	return cart, nil
}

func (uc *PartnerCartUseCase) Get(ctx context.Context, partnerID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Cart not found"), "Failed to load cart")
	}
	return cart, nil
}
