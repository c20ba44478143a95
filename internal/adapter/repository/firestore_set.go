package repository

import (
	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/repository"
)

// NewFirestoreSet backs every repository with client.
func NewFirestoreSet(client *firestore.Client) repository.Set {
	return repository.Set{
		Users:            NewFirestoreUserRepository(client),
		Partners:         NewFirestorePartnerRepository(client),
		OTPs:             NewFirestoreOTPRepository(client),
		Categories:       NewFirestoreCategoryRepository(client),
		SubCategories:    NewFirestoreSubCategoryRepository(client),
		Items:            NewFirestoreItemRepository(client),
		ItemDetails:      NewFirestoreItemDetailRepository(client),
		Filters:          NewFirestoreFilterRepository(client),
		UserCarts:        NewFirestoreCartRepository(client, UserCartsCollection),
		PartnerCarts:     NewFirestoreCartRepository(client, PartnerCartsCollection),
		UserWishlists:    NewFirestoreWishlistRepository(client, UserWishlistsCollection),
		PartnerWishlists: NewFirestoreWishlistRepository(client, PartnerWishlistsCollection),
		UserReviews:      NewFirestoreUserReviewRepository(client),
		PartnerReviews:   NewFirestorePartnerReviewRepository(client),
		Wallets:          NewFirestoreWalletRepository(client),
		Addresses:        NewFirestoreAddressRepository(client),
		Orders:           NewFirestoreOrderRepository(client),
		TBYB:             NewFirestoreTBYBRepository(client),
	}
}
