package handler

import (
	"nanocart/internal/usecase"
)

var (
	authHandler        *AuthHandler
	partnerHandler     *PartnerHandler
	categoryHandler    *CategoryHandler
	subCategoryHandler *SubCategoryHandler
	itemHandler        *ItemHandler
	itemDetailHandler  *ItemDetailHandler
	filterHandler      *FilterHandler
	cartHandler        *CartHandler
	wishlistHandler    *WishlistHandler
	reviewHandler      *ReviewHandler
	walletHandler      *WalletHandler
	addressHandler     *AddressHandler
	orderHandler       *OrderHandler
	tbybHandler        *TBYBHandler
)

func Setup(uc usecase.UseCases, limits UploadLimits) {
	if limits.MaxFileSize > 0 {
		uploadLimits.MaxFileSize = limits.MaxFileSize
	}
	if limits.MaxFiles > 0 {
		uploadLimits.MaxFiles = limits.MaxFiles
	}

	authHandler = NewAuthHandler(uc.Auth)
	partnerHandler = NewPartnerHandler(uc.Partner)
	categoryHandler = NewCategoryHandler(uc.Category)
	subCategoryHandler = NewSubCategoryHandler(uc.SubCategory)
	itemHandler = NewItemHandler(uc.Item)
	itemDetailHandler = NewItemDetailHandler(uc.ItemDetail)
	filterHandler = NewFilterHandler(uc.Filter)
	cartHandler = NewCartHandler(uc.UserCart, uc.PartnerCart)
	wishlistHandler = NewWishlistHandler(uc.UserWishlist, uc.PartnerWishlist)
	reviewHandler = NewReviewHandler(uc.UserReview, uc.PartnerReview)
	walletHandler = NewWalletHandler(uc.Wallet)
	addressHandler = NewAddressHandler(uc.Address)
	orderHandler = NewOrderHandler(uc.Order)
	tbybHandler = NewTBYBHandler(uc.TBYB)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetPartnerHandler() *PartnerHandler {
	return partnerHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetSubCategoryHandler() *SubCategoryHandler {
	return subCategoryHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetItemDetailHandler() *ItemDetailHandler {
	return itemDetailHandler
}

func GetFilterHandler() *FilterHandler {
	return filterHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetWalletHandler() *WalletHandler {
	return walletHandler
}

func GetAddressHandler() *AddressHandler {
	return addressHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetTBYBHandler() *TBYBHandler {
	return tbybHandler
}
