package usecase

import (
	"context"
	"fmt"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
)

// TBYBUseCase stores try-before-you-buy photos, capped per calendar day.
type TBYBUseCase struct {
	tbybRepo repository.TBYBRepository
	store    service.ObjectStore
	now      func() time.Time
}

func NewTBYBUseCase(tbybRepo repository.TBYBRepository, store service.ObjectStore) *TBYBUseCase {
	return &TBYBUseCase{tbybRepo: tbybRepo, store: store, now: time.Now}
}

func (uc *TBYBUseCase) Upload(ctx context.Context, userID string, image *service.File) (*entity.TBYBImage, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.BadRequest("No image file uploaded.", nil)
	}

	doc, err := uc.tbybRepo.Get(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load images")
		}
		doc = &entity.TBYB{UserID: userID}
	}

	now := uc.now()
	if doc.UploadsOn(now) >= entity.TBYBDailyLimit {
		return nil, errors.BadRequest(fmt.Sprintf("You can upload a maximum of %d images per day.", entity.TBYBDailyLimit), nil)
	}

	url, err := uc.store.Upload(ctx, service.ObjectKey("User/"+userID+"/TBYB", image.FileName, now), image.Data, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Error uploading image", err)
	}

	img := entity.TBYBImage{ImageURL: url, UploadedAt: now}
	doc.Images = append(doc.Images, img)
	if err := uc.tbybRepo.Save(ctx, doc); err != nil {
		return nil, wrap(err, "Failed to save image")
	}
	return &img, nil
}

func (uc *TBYBUseCase) List(ctx context.Context, userID string) ([]entity.TBYBImage, error) {
	doc, err := uc.tbybRepo.Get(ctx, userID)
	if isNotFound(err) {
		return []entity.TBYBImage{}, nil
	}
	if err != nil {
		return nil, wrap(err, "Failed to load images")
	}
	if doc.Images == nil {
		return []entity.TBYBImage{}, nil
	}
	return doc.Images, nil
}
