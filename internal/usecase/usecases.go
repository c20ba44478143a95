package usecase

import (
	"time"

	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
)

// Dependencies is what NewUseCases needs from the outside world.
type Dependencies struct {
	Repos     repository.Set
	Store     service.ObjectStore
	Tokens    service.TokenService
	OTPs      service.OTPGenerator
	OTPTTL    time.Duration
	ExposeOTP bool
}

// UseCases is every use case the HTTP layer calls into.
type UseCases struct {
	Auth            *AuthUseCase
	Partner         *PartnerUseCase
	Category        *CategoryUseCase
	SubCategory     *SubCategoryUseCase
	Item            *ItemUseCase
	ItemDetail      *ItemDetailUseCase
	Filter          *FilterUseCase
	UserCart        *UserCartUseCase
	PartnerCart     *PartnerCartUseCase
	UserWishlist    *UserWishlistUseCase
	PartnerWishlist *PartnerWishlistUseCase
	UserReview      *UserReviewUseCase
	PartnerReview   *PartnerReviewUseCase
	Wallet          *WalletUseCase
	Address         *AddressUseCase
	Order           *OrderUseCase
	TBYB            *TBYBUseCase
}

func NewUseCases(deps Dependencies) UseCases {
	r := deps.Repos
	return UseCases{
		Auth:            NewAuthUseCase(r.Users, r.Partners, r.OTPs, deps.Tokens, deps.OTPs, deps.OTPTTL, deps.ExposeOTP),
		Partner:         NewPartnerUseCase(r.Partners, r.Users, deps.Store, deps.Tokens),
		Category:        NewCategoryUseCase(r.Categories, r.SubCategories, r.Items, r.ItemDetails, deps.Store),
		SubCategory:     NewSubCategoryUseCase(r.SubCategories, r.Categories, r.Items, r.ItemDetails, deps.Store),
		Item:            NewItemUseCase(r.Items, r.Categories, r.SubCategories, r.ItemDetails, deps.Store),
		ItemDetail:      NewItemDetailUseCase(r.ItemDetails, r.Items, deps.Store),
		Filter:          NewFilterUseCase(r.Filters),
		UserCart:        NewUserCartUseCase(r.UserCarts, r.Users, r.Items, r.ItemDetails),
		PartnerCart:     NewPartnerCartUseCase(r.PartnerCarts, r.Partners, r.ItemDetails),
		UserWishlist:    NewUserWishlistUseCase(r.UserWishlists, r.Users, r.Items, r.ItemDetails),
		PartnerWishlist: NewPartnerWishlistUseCase(r.PartnerWishlists, r.Partners, r.ItemDetails),
		UserReview:      NewUserReviewUseCase(r.UserReviews, r.Users, r.Items, r.ItemDetails, deps.Store),
		PartnerReview:   NewPartnerReviewUseCase(r.PartnerReviews, r.Items, r.ItemDetails, deps.Store),
		Wallet:          NewWalletUseCase(r.Wallets, r.Partners),
		Address:         NewAddressUseCase(r.Addresses, r.Users),
		Order:           NewOrderUseCase(r.Orders, r.ItemDetails),
		TBYB:            NewTBYBUseCase(r.TBYB, deps.Store),
	}
}
