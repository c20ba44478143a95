package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/logger"
)

const MaxReviewImages = 5

type CreateUserReviewInput struct {
	ItemDetailID string   `json:"itemDetailId" form:"itemDetailId" validate:"required"`
	Rating       *float64 `json:"rating" form:"rating" validate:"required"`
	Review       string   `json:"review" form:"review"`
	SizeBought   string   `json:"sizeBought" form:"sizeBought"`
}

// ReviewSummary is the public view of every review left on one item detail.
type ReviewSummary struct {
	Count          int                  `json:"count"`
	Reviews        []*entity.UserReview `json:"data"`
	CustomerImages []string             `json:"arrayOfCustomerImage"`
	TotalRating    int                  `json:"totalRating"`
	TotalReview    int                  `json:"totalReview"`
	AverageRating  string               `json:"averageRating"`
}

type UserReviewResult struct {
	Review        *entity.UserReview `json:"review,omitempty"`
	AverageRating float64            `json:"averageRating"`
}

func validateRating(rating *float64) error {
	if rating == nil {
		return errors.BadRequest("rating and itemDetailId are required", nil)
	}
	if *rating < 0 || *rating > 5 {
		return errors.BadRequest("Rating must be between 0 and 5", nil)
	}
	return nil
}

type UserReviewUseCase struct {
	reviewRepo     repository.UserReviewRepository
	userRepo       repository.UserRepository
	itemRepo       repository.ItemRepository
	itemDetailRepo repository.ItemDetailRepository
	store          service.ObjectStore
	now            func() time.Time
}

func NewUserReviewUseCase(
	reviewRepo repository.UserReviewRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
	store service.ObjectStore,
) *UserReviewUseCase {
	return &UserReviewUseCase{
		reviewRepo:     reviewRepo,
		userRepo:       userRepo,
		itemRepo:       itemRepo,
		itemDetailRepo: itemDetailRepo,
		store:          store,
		now:            time.Now,
	}
}

func userReviewFolder(userID, reviewID string) string {
	return fmt.Sprintf("Nanocart/user/%s/ratingsReviews/%s/customerImages", userID, reviewID)
}

func (uc *UserReviewUseCase) Create(ctx context.Context, userID string, input CreateUserReviewInput, images []service.File) (*UserReviewResult, error) {
	if input.ItemDetailID == "" {
		return nil, errors.BadRequest("rating and itemDetailId are required", nil)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if len(images) > MaxReviewImages {
		return nil, errors.BadRequest(fmt.Sprintf("At most %d images are allowed", MaxReviewImages), nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, input.ItemDetailID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}
	if detail.ItemID == "" {
		return nil, errors.BadRequest("ItemDetail has no associated Item", nil)
	}

	if _, err := uc.reviewRepo.FindByUserAndDetail(ctx, userID, input.ItemDetailID); err == nil {
		return nil, errors.BadRequest("User has already reviewed this item", nil)
	} else if !isNotFound(err) {
		return nil, wrap(err, "Failed to check existing review")
	}

	now := uc.now()
	review := &entity.UserReview{
		ID:           generateUUID(),
		UserID:       userID,
		UserName:     user.Name,
		ItemDetailID: input.ItemDetailID,
		Rating:       *input.Rating,
		Review:       strings.TrimSpace(input.Review),
		SizeBought:   input.SizeBought,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	urls, err := uc.uploadImages(ctx, userReviewFolder(userID, review.ID), images, now)
	if err != nil {
		return nil, err
	}
	review.CustomerProductImage = urls

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, wrap(err, "Failed to create review")
	}

	avg, err := uc.recompute(ctx, detail)
	if err != nil {
		return nil, err
	}
	return &UserReviewResult{Review: review, AverageRating: avg}, nil
}

func (uc *UserReviewUseCase) uploadImages(ctx context.Context, folder string, images []service.File, now time.Time) ([]string, error) {
	urls := make([]string, len(images))
	var eg errgroup.Group
	for i := range images {
		f := images[i]
		eg.Go(func() error {
			url, err := uc.store.Upload(ctx, service.ObjectKey(folder, fmt.Sprintf("%d_%s", i, f.FileName), now), f.Data, f.ContentType)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Internal("Failed to upload review images", err)
	}
	return urls, nil
}

// recompute stores the mean rating of the detail's reviews on its item.
func (uc *UserReviewUseCase) recompute(ctx context.Context, detail *entity.ItemDetail) (float64, error) {
	reviews, err := uc.reviewRepo.ListByItemDetail(ctx, detail.ID)
	if err != nil {
		return 0, wrap(err, "Failed to load reviews")
	}
	ratings := make([]float64, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	avg := entity.AverageRating(ratings, 2)
	if err := uc.itemRepo.SetUserAverageRating(ctx, detail.ItemID, avg); err != nil && !isNotFound(err) {
		return 0, wrap(err, "Failed to update item rating")
	}
	return avg, nil
}

func (uc *UserReviewUseCase) Delete(ctx context.Context, userID, reviewID string) (*UserReviewResult, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Review not found"), "Failed to load review")
	}
	if review.UserID != userID {
		return nil, errors.Forbidden("You are not authorized to delete this review", nil)
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, review.ItemDetailID)
	if err != nil {
		return nil, notFoundAs(err, errors.BadRequest("ItemDetail or Item not found", nil), "Failed to load item detail")
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return nil, wrap(err, "Failed to delete review")
	}
	for _, url := range review.CustomerProductImage {
		if err := uc.store.Delete(ctx, url); err != nil {
			logger.Warn("Failed to delete review image %s: %v", url, err)
		}
	}

	avg, err := uc.recompute(ctx, detail)
	if err != nil {
		return nil, err
	}
	return &UserReviewResult{AverageRating: avg}, nil
}

func (uc *UserReviewUseCase) ListByItemDetail(ctx context.Context, itemDetailID string) (*ReviewSummary, error) {
	reviews, err := uc.reviewRepo.ListByItemDetail(ctx, itemDetailID)
	if err != nil {
		return nil, wrap(err, "Failed to load reviews")
	}
	if len(reviews) == 0 {
		return nil, errors.NotFoundMessage("Reviews not found for this itemDetail")
	}

	summary := &ReviewSummary{
		Count:          len(reviews),
		Reviews:        reviews,
		CustomerImages: []string{},
		TotalRating:    len(reviews),
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromFloat(r.Rating))
		if strings.TrimSpace(r.Review) != "" {
			summary.TotalReview++
		}
		for _, img := range r.CustomerProductImage {
			if strings.TrimSpace(img) != "" {
				summary.CustomerImages = append(summary.CustomerImages, img)
			}
		}
	}
	summary.AverageRating = sum.Div(decimal.NewFromInt(int64(len(reviews)))).StringFixed(1)
	return summary, nil
}

type CreatePartnerReviewInput struct {
	ItemDetailID string   `json:"itemDetailId" form:"itemDetailId"`
	Rating       *float64 `json:"rating" form:"rating"`
	Comment      string   `json:"comment" form:"comment"`
}

type UpdatePartnerReviewInput struct {
	Rating  *float64 `json:"rating" form:"rating"`
	Comment *string  `json:"comment" form:"comment"`
}

// PartnerReviewStats is a review book with its aggregate figures.
type PartnerReviewStats struct {
	*entity.PartnerReviewBook
	AverageRating float64 `json:"averageRating"`
	TotalRating   int     `json:"totalRating"`
	TotalReview   int     `json:"totalReview"`
}

func reviewStats(book *entity.PartnerReviewBook) *PartnerReviewStats {
	stats := &PartnerReviewStats{PartnerReviewBook: book}
	ratings := make([]float64, 0, len(book.Reviews))
	for _, r := range book.Reviews {
		ratings = append(ratings, r.Rating)
		if strings.TrimSpace(r.Comment) != "" {
			stats.TotalReview++
		}
	}
	stats.TotalRating = len(ratings)
	stats.AverageRating = entity.AverageRating(ratings, 2)
	return stats
}

// PartnerReviewUseCase manages the single review book each partner keeps.
type PartnerReviewUseCase struct {
	reviewRepo     repository.PartnerReviewRepository
	itemRepo       repository.ItemRepository
	itemDetailRepo repository.ItemDetailRepository
	store          service.ObjectStore
	now            func() time.Time
}

func NewPartnerReviewUseCase(
	reviewRepo repository.PartnerReviewRepository,
	itemRepo repository.ItemRepository,
	itemDetailRepo repository.ItemDetailRepository,
	store service.ObjectStore,
) *PartnerReviewUseCase {
	return &PartnerReviewUseCase{
		reviewRepo:     reviewRepo,
		itemRepo:       itemRepo,
		itemDetailRepo: itemDetailRepo,
		store:          store,
		now:            time.Now,
	}
}

func partnerReviewFolder(partnerID string) string {
	return fmt.Sprintf("partner/%s/ratingReview/%s/customerImage", partnerID, partnerID)
}

func (uc *PartnerReviewUseCase) Create(ctx context.Context, partnerID string, input CreatePartnerReviewInput, image *service.File) (*entity.PartnerReviewBook, error) {
	if input.Rating == nil {
		return nil, errors.BadRequest("Rating is required", nil)
	}
	if input.ItemDetailID == "" {
		return nil, errors.BadRequest("ItemDetail ID is required", nil)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, input.ItemDetailID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}

	now := uc.now()
	book, err := uc.reviewRepo.Get(ctx, partnerID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load reviews")
		}
		book = &entity.PartnerReviewBook{PartnerID: partnerID, CreatedAt: now}
	}
	book.Reviews = append(book.Reviews, entity.PartnerReview{
		ID:           generateUUID(),
		ItemDetailID: input.ItemDetailID,
		Rating:       *input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
		CreatedAt:    now,
	})

	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Replace(ctx, book.CustomerPhoto, service.ObjectKey(partnerReviewFolder(partnerID), image.FileName, now), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload customer image", err)
		}
		book.CustomerPhoto = url
	}
	book.UpdatedAt = now

	if err := uc.reviewRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save review")
	}
	if err := uc.recompute(ctx, detail); err != nil {
		return nil, err
	}
	return book, nil
}

func (uc *PartnerReviewUseCase) Update(ctx context.Context, partnerID, reviewID string, input UpdatePartnerReviewInput, image *service.File) (*entity.PartnerReviewBook, error) {
	book, err := uc.GetOwn(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	i, ok := book.Find(reviewID)
	if !ok {
		return nil, errors.NotFoundMessage("Review not found")
	}
	if input.Rating != nil {
		if err := validateRating(input.Rating); err != nil {
			return nil, err
		}
		book.Reviews[i].Rating = *input.Rating
	}
	if input.Comment != nil {
		book.Reviews[i].Comment = strings.TrimSpace(*input.Comment)
	}

	now := uc.now()
	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Replace(ctx, book.CustomerPhoto, service.ObjectKey(partnerReviewFolder(partnerID), image.FileName, now), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload customer image", err)
		}
		book.CustomerPhoto = url
	}
	book.UpdatedAt = now

	if err := uc.reviewRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save review")
	}
	uc.recomputeByID(ctx, book.Reviews[i].ItemDetailID)
	return book, nil
}

func (uc *PartnerReviewUseCase) Delete(ctx context.Context, partnerID, reviewID string) (*entity.PartnerReviewBook, error) {
	book, err := uc.GetOwn(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	i, ok := book.Find(reviewID)
	if !ok {
		return nil, errors.NotFoundMessage("Review not found")
	}
	detailID := book.Reviews[i].ItemDetailID
	book.Reviews = append(book.Reviews[:i], book.Reviews[i+1:]...)
	book.UpdatedAt = uc.now()

	if err := uc.reviewRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save review")
	}
	uc.recomputeByID(ctx, detailID)
	return book, nil
}

func (uc *PartnerReviewUseCase) GetOwn(ctx context.Context, partnerID string) (*entity.PartnerReviewBook, error) {
	book, err := uc.reviewRepo.Get(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("No review found"), "Failed to load reviews")
	}
	return book, nil
}

func (uc *PartnerReviewUseCase) ListAll(ctx context.Context) ([]*PartnerReviewStats, error) {
	books, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return nil, wrap(err, "Failed to load reviews")
	}
	if len(books) == 0 {
		return nil, errors.NotFoundMessage("No ratings and reviews found")
	}
	stats := make([]*PartnerReviewStats, len(books))
	for i, b := range books {
		stats[i] = reviewStats(b)
	}
	return stats, nil
}

// recompute averages every partner rating left on the detail and stores it on its item.
func (uc *PartnerReviewUseCase) recompute(ctx context.Context, detail *entity.ItemDetail) error {
	books, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return wrap(err, "Failed to load reviews")
	}
	var ratings []float64
	for _, b := range books {
		for _, r := range b.Reviews {
			if r.ItemDetailID == detail.ID {
				ratings = append(ratings, r.Rating)
			}
		}
	}
	if err := uc.itemRepo.SetPartnerAverageRating(ctx, detail.ItemID, entity.AverageRating(ratings, 2)); err != nil && !isNotFound(err) {
		return wrap(err, "Failed to update item rating")
	}
	return nil
}

// recomputeByID is recompute for callers that already saved; failures are only logged.
func (uc *PartnerReviewUseCase) recomputeByID(ctx context.Context, itemDetailID string) {
	if itemDetailID == "" {
		return
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, itemDetailID)
	if err != nil {
		logger.Warn("Skipping partner rating refresh for %s: %v", itemDetailID, err)
		return
	}
	if err := uc.recompute(ctx, detail); err != nil {
		logger.Warn("Failed to refresh partner rating for %s: %v", itemDetailID, err)
	}
}
