package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	userReviewsCollection    = "user_reviews"
	partnerReviewsCollection = "partner_reviews"
)

type firestoreUserReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreUserReviewRepository(client *firestore.Client) repository.UserReviewRepository {
	return &firestoreUserReviewRepository{
		client: client,
	}
}

func (r *firestoreUserReviewRepository) Create(ctx context.Context, review *entity.UserReview) error {
	_, err := r.client.Collection(userReviewsCollection).Doc(review.ID).Set(ctx, review)
	return err
}

func (r *firestoreUserReviewRepository) GetByID(ctx context.Context, id string) (*entity.UserReview, error) {
	return getDoc[entity.UserReview](ctx, r.client.Collection(userReviewsCollection).Doc(id), "Review")
}

func (r *firestoreUserReviewRepository) FindByUserAndDetail(ctx context.Context, userID, itemDetailID string) (*entity.UserReview, error) {
	query := r.client.Collection(userReviewsCollection).
		Where("userId", "==", userID).
		Where("itemDetailId", "==", itemDetailID)
	return firstDoc[entity.UserReview](ctx, query, "Review")
}

func (r *firestoreUserReviewRepository) ListByItemDetail(ctx context.Context, itemDetailID string) ([]*entity.UserReview, error) {
	iter := r.client.Collection(userReviewsCollection).Where("itemDetailId", "==", itemDetailID).Documents(ctx)
	reviews, err := collect[entity.UserReview](iter)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(reviews, func(rv *entity.UserReview) int64 { return rv.CreatedAt.UnixNano() })
	return reviews, nil
}

func (r *firestoreUserReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(userReviewsCollection).Doc(id).Delete(ctx)
	return err
}

type firestorePartnerReviewRepository struct {
	client *firestore.Client
}

func NewFirestorePartnerReviewRepository(client *firestore.Client) repository.PartnerReviewRepository {
	return &firestorePartnerReviewRepository{
		client: client,
	}
}

func (r *firestorePartnerReviewRepository) Get(ctx context.Context, partnerID string) (*entity.PartnerReviewBook, error) {
	return getDoc[entity.PartnerReviewBook](ctx, r.client.Collection(partnerReviewsCollection).Doc(partnerID), "Partner review")
}

func (r *firestorePartnerReviewRepository) Save(ctx context.Context, book *entity.PartnerReviewBook) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now
	_, err := r.client.Collection(partnerReviewsCollection).Doc(book.PartnerID).Set(ctx, book)
	return err
}

func (r *firestorePartnerReviewRepository) List(ctx context.Context) ([]*entity.PartnerReviewBook, error) {
	iter := r.client.Collection(partnerReviewsCollection).Documents(ctx)
	return collect[entity.PartnerReviewBook](iter)
}
