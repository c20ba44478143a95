package memory

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

type userReviewRepository struct {
	reviews *table[entity.UserReview]
}

func NewUserReviewRepository() repository.UserReviewRepository {
	return &userReviewRepository{reviews: newTable[entity.UserReview]("Review", func(rv *entity.UserReview) *entity.UserReview {
		c := *rv
		c.CustomerProductImage = cloneSlice(rv.CustomerProductImage)
		return &c
	})}
}

func (r *userReviewRepository) Create(_ context.Context, review *entity.UserReview) error {
	r.reviews.put(review.ID, review)
	return nil
}

func (r *userReviewRepository) GetByID(_ context.Context, id string) (*entity.UserReview, error) {
	return r.reviews.get(id)
}

func (r *userReviewRepository) FindByUserAndDetail(_ context.Context, userID, itemDetailID string) (*entity.UserReview, error) {
	return r.reviews.first(func(rv *entity.UserReview) bool {
		return rv.UserID == userID && rv.ItemDetailID == itemDetailID
	}, nil)
}

func (r *userReviewRepository) ListByItemDetail(_ context.Context, itemDetailID string) ([]*entity.UserReview, error) {
	return r.reviews.find(func(rv *entity.UserReview) bool { return rv.ItemDetailID == itemDetailID },
		newerFirst(func(rv *entity.UserReview) time.Time { return rv.CreatedAt })), nil
}

func (r *userReviewRepository) Delete(_ context.Context, id string) error {
	r.reviews.remove(id)
	return nil
}

type partnerReviewRepository struct {
	books *table[entity.PartnerReviewBook]
}

func NewPartnerReviewRepository() repository.PartnerReviewRepository {
	return &partnerReviewRepository{books: newTable[entity.PartnerReviewBook]("Partner review", func(b *entity.PartnerReviewBook) *entity.PartnerReviewBook {
		c := *b
		c.Reviews = cloneSlice(b.Reviews)
		return &c
	})}
}

func (r *partnerReviewRepository) Get(_ context.Context, partnerID string) (*entity.PartnerReviewBook, error) {
	return r.books.get(partnerID)
}

func (r *partnerReviewRepository) Save(_ context.Context, book *entity.PartnerReviewBook) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now
	r.books.put(book.PartnerID, book)
	return nil
}

func (r *partnerReviewRepository) List(_ context.Context) ([]*entity.PartnerReviewBook, error) {
	return r.books.find(nil, olderFirst(func(b *entity.PartnerReviewBook) time.Time { return b.CreatedAt })), nil
}
