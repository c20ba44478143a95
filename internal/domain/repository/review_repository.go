package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

type UserReviewRepository interface {
	Create(ctx context.Context, review *entity.UserReview) error
	GetByID(ctx context.Context, id string) (*entity.UserReview, error)
	FindByUserAndDetail(ctx context.Context, userID, itemDetailID string) (*entity.UserReview, error)
	// ListByItemDetail returns newest first.
	ListByItemDetail(ctx context.Context, itemDetailID string) ([]*entity.UserReview, error)
	Delete(ctx context.Context, id string) error
}

type PartnerReviewRepository interface {
	Get(ctx context.Context, partnerID string) (*entity.PartnerReviewBook, error)
	Save(ctx context.Context, book *entity.PartnerReviewBook) error
	List(ctx context.Context) ([]*entity.PartnerReviewBook, error)
}
