package usecase

import (
	"context"
	"strings"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

type FilterInput struct {
	Key    string   `json:"key" validate:"required"`
	Values []string `json:"values" validate:"required,min=1"`
}

type FilterUseCase struct {
	filterRepo repository.FilterRepository
	now        func() time.Time
}

func NewFilterUseCase(filterRepo repository.FilterRepository) *FilterUseCase {
	return &FilterUseCase{filterRepo: filterRepo, now: time.Now}
}

// normalizeFilter lower-cases the key and trims and de-duplicates values.
func normalizeFilter(input FilterInput) (string, []string, error) {
	key := strings.ToLower(strings.TrimSpace(input.Key))
	seen := make(map[string]bool, len(input.Values))
	values := make([]string, 0, len(input.Values))
	for _, v := range input.Values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	if key == "" || len(values) == 0 {
		return "", nil, errors.BadRequest("Key and values are required", nil)
	}
	return key, values, nil
}

func (uc *FilterUseCase) checkKeyFree(ctx context.Context, key, exceptID string) error {
	filters, err := uc.filterRepo.List(ctx)
	if err != nil {
		return wrap(err, "Failed to load filters")
	}
	for _, f := range filters {
		if f.Key == key && f.ID != exceptID {
			return errors.Conflict("Filter with this key already exists")
		}
	}
	return nil
}

func (uc *FilterUseCase) Create(ctx context.Context, input FilterInput) (*entity.Filter, error) {
	key, values, err := normalizeFilter(input)
	if err != nil {
		return nil, err
	}
	if err := uc.checkKeyFree(ctx, key, ""); err != nil {
		return nil, err
	}

	now := uc.now()
	filter := &entity.Filter{
		ID:        generateUUID(),
		Key:       key,
		Values:    values,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.filterRepo.Create(ctx, filter); err != nil {
		return nil, wrap(err, "Failed to create filter")
	}
	return filter, nil
}

func (uc *FilterUseCase) Update(ctx context.Context, id string, input FilterInput) (*entity.Filter, error) {
	filter, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	key, values, err := normalizeFilter(input)
	if err != nil {
		return nil, err
	}
	if key != filter.Key {
		if err := uc.checkKeyFree(ctx, key, id); err != nil {
			return nil, err
		}
	}

	filter.Key = key
	filter.Values = values
	filter.UpdatedAt = uc.now()
	if err := uc.filterRepo.Update(ctx, filter); err != nil {
		return nil, wrap(err, "Failed to update filter")
	}
	return filter, nil
}

func (uc *FilterUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.filterRepo.Delete(ctx, id); err != nil {
		return wrap(err, "Failed to delete filter")
	}
	return nil
}

func (uc *FilterUseCase) Get(ctx context.Context, id string) (*entity.Filter, error) {
	filter, err := uc.filterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Filter not found"), "Failed to load filter")
	}
	return filter, nil
}

func (uc *FilterUseCase) List(ctx context.Context) ([]*entity.Filter, error) {
	filters, err := uc.filterRepo.List(ctx)
	if err != nil {
		return nil, wrap(err, "Failed to load filters")
	}
	return filters, nil
}
