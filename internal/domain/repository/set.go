package repository

// Set groups one implementation of every repository the application needs.
type Set struct {
	Users            UserRepository
	Partners         PartnerRepository
	OTPs             OTPRepository
	Categories       CategoryRepository
	SubCategories    SubCategoryRepository
	Items            ItemRepository
	ItemDetails      ItemDetailRepository
	Filters          FilterRepository
	UserCarts        CartRepository
	PartnerCarts     CartRepository
	UserWishlists    WishlistRepository
	PartnerWishlists WishlistRepository
	UserReviews      UserReviewRepository
	PartnerReviews   PartnerReviewRepository
	Wallets          WalletRepository
	Addresses        AddressRepository
	Orders           OrderRepository
	TBYB             TBYBRepository
}
