package memory

import "nanocart/internal/domain/repository"

// NewSet returns empty in-memory repositories for every collection.
func NewSet() repository.Set {
	return repository.Set{
		Users:            NewUserRepository(),
		Partners:         NewPartnerRepository(),
		OTPs:             NewOTPRepository(),
		Categories:       NewCategoryRepository(),
		SubCategories:    NewSubCategoryRepository(),
		Items:            NewItemRepository(),
		ItemDetails:      NewItemDetailRepository(),
		Filters:          NewFilterRepository(),
		UserCarts:        NewCartRepository(),
		PartnerCarts:     NewCartRepository(),
		UserWishlists:    NewWishlistRepository(),
		PartnerWishlists: NewWishlistRepository(),
		UserReviews:      NewUserReviewRepository(),
		PartnerReviews:   NewPartnerReviewRepository(),
		Wallets:          NewWalletRepository(),
		Addresses:        NewAddressRepository(),
		Orders:           NewOrderRepository(),
		TBYB:             NewTBYBRepository(),
	}
}
