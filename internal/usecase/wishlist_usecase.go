package usecase

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

type WishlistInput struct {
	ItemID       string `json:"itemId"`
	ItemDetailID string `json:"itemDetailId"`
	Color        string `json:"color" validate:"required"`
}

type UserWishlistUseCase struct {
	wishlistRepo   repository.WishlistRepository
	userRepo       repository.UserRepository
	itemRepo       repository.ItemRepository
	itemDetailRepo repository.ItemDetailRepository
	now            func() time.Time
}

func NewUserWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
) *UserWishlistUseCase {
	return &UserWishlistUseCase{
		wishlistRepo:   wishlistRepo,
		userRepo:       userRepo,
		itemRepo:       itemRepo,
		itemDetailRepo: itemDetailRepo,
		now:            time.Now,
	}
}

func (uc *UserWishlistUseCase) Add(ctx context.Context, userID string, input WishlistInput) (*entity.Wishlist, error) {
	if input.ItemID == "" {
		return nil, errors.BadRequest("itemId is required", nil)
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
	if _, ok := detail.FindColor(input.Color, true); !ok {
		return nil, errors.BadRequest("Color not available for this item", nil)
	}

	wishlist, err := uc.wishlistRepo.Get(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load wishlist")
		}
		wishlist = &entity.Wishlist{OwnerID: userID, UserID: userID}
	}
	if wishlist.Contains(input.ItemID, input.Color, true) {
		return nil, errors.BadRequest("Item already in wishlist", nil)
	}

	wishlist.Items = append(wishlist.Items, entity.WishlistLine{ItemID: input.ItemID, Color: input.Color, AddedAt: uc.now()})
	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, wrap(err, "Failed to save wishlist")
	}
	return wishlist, nil
}

func (uc *UserWishlistUseCase) Remove(ctx context.Context, userID string, input WishlistInput) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.Get(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Wishlist not found"), "Failed to load wishlist")
	}
	if !wishlist.Remove(input.ItemID, input.Color, true) {
		return nil, errors.NotFoundMessage("Item not found in wishlist")
	}
	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, wrap(err, "Failed to save wishlist")
	}
	return wishlist, nil
}

func (uc *UserWishlistUseCase) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.Get(ctx, userID)
	if isNotFound(err) {
		return &entity.Wishlist{OwnerID: userID, UserID: userID, Items: []entity.WishlistLine{}}, nil
	}
	if err != nil {
		return nil, wrap(err, "Failed to load wishlist")
	}
	return wishlist, nil
}

type PartnerWishlistUseCase struct {
	wishlistRepo   repository.WishlistRepository
	partnerRepo    repository.PartnerRepository
	itemDetailRepo repository.ItemDetailRepository
	now            func() time.Time
}

func NewPartnerWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	partnerRepo repository.PartnerRepository,
	itemDetailRepo repository.ItemDetailRepository,
) *PartnerWishlistUseCase {
	return &PartnerWishlistUseCase{
		wishlistRepo:   wishlistRepo,
		partnerRepo:    partnerRepo,
		itemDetailRepo: itemDetailRepo,
		now:            time.Now,
	}
}

func (uc *PartnerWishlistUseCase) Add(ctx context.Context, partnerID string, input WishlistInput) (*entity.Wishlist, error) {
	if input.ItemDetailID == "" {
		return nil, errors.BadRequest("itemDetailId is required", nil)
	}
	if _, err := uc.partnerRepo.GetByID(ctx, partnerID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, input.ItemDetailID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}
	if _, ok := detail.FindColor(input.Color, false); !ok {
		return nil, errors.BadRequest("Color not available for this item", nil)
	}

	wishlist, err := uc.wishlistRepo.Get(ctx, partnerID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load wishlist")
		}
		wishlist = &entity.Wishlist{OwnerID: partnerID, PartnerID: partnerID}
	}
	if wishlist.Contains(input.ItemDetailID, input.Color, false) {
		return nil, errors.BadRequest("Item already in wishlist", nil)
	}

	wishlist.Items = append(wishlist.Items, entity.WishlistLine{ItemDetailID: input.ItemDetailID, Color: input.Color, AddedAt: uc.now()})
	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, wrap(err, "Failed to save wishlist")
	}
	return wishlist, nil
}

func (uc *PartnerWishlistUseCase) Remove(ctx context.Context, partnerID string, input WishlistInput) (*entity.Wishlist, error) {
	wishlist, err := uc.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !wishlist.Remove(input.ItemDetailID, input.Color, false) {
		return nil, errors.NotFoundMessage("Item not found in wishlist")
	}
	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, wrap(err, "Failed to save wishlist")
	}
	return wishlist, nil
}

func (uc *PartnerWishlistUseCase) Get(ctx context.Context, partnerID string) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.Get(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Wishlist not found"), "Failed to load wishlist")
	}
	return wishlist, nil
}
