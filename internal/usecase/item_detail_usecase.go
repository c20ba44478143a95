package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/logger"
	"nanocart/pkg/utils"
)

// MaxImagesPerColor caps the images stored for one color of an item detail.
const MaxImagesPerColor = 5

type ItemDetailUseCase struct {
	itemDetailRepo repository.ItemDetailRepository
	itemRepo       repository.ItemRepository
	store          service.ObjectStore
	cascade        *catalogCascade
	now            func() time.Time
}

func NewItemDetailUseCase(
	itemDetailRepo repository.ItemDetailRepository,
	itemRepo repository.ItemRepository,
	store service.ObjectStore,
) *ItemDetailUseCase {
	return &ItemDetailUseCase{
		itemDetailRepo: itemDetailRepo,
		itemRepo:       itemRepo,
		store:          store,
		cascade:        &catalogCascade{itemRepo: itemRepo, itemDetailRepo: itemDetailRepo, store: store},
		now:            time.Now,
	}
}

// ColorBlockInput declares one color and its sizes. Images arrive as files
// whose form field name is the color.
type ColorBlockInput struct {
	Color string             `json:"color"`
	Sizes []entity.SizeStock `json:"sizes"`
}

type CreateItemDetailInput struct {
	ItemID              string                `json:"itemId"`
	ImagesByColor       []ColorBlockInput     `json:"imagesByColor"`
	SizeChart           []entity.SizeChartRow `json:"sizeChart"`
	HowToMeasure        []map[string]string   `json:"howToMeasure"`
	IsSize              bool                  `json:"isSize"`
	IsMultipleColor     bool                  `json:"isMultipleColor"`
	DeliveryDescription string                `json:"deliveryDescription"`
	About               string                `json:"About"`
	PPQ                 []entity.PriceTier    `json:"PPQ"`
	DeliveryPincode     []int                 `json:"deliveryPincode"`
	ReturnPolicy        string                `json:"returnPolicy"`
}

type UpdateItemDetailInput struct {
	ImagesByColor       []ColorBlockInput      `json:"imagesByColor"`
	SizeChart           *[]entity.SizeChartRow `json:"sizeChart"`
	HowToMeasure        *[]map[string]string   `json:"howToMeasure"`
	IsSize              *bool                  `json:"isSize"`
	IsMultipleColor     *bool                  `json:"isMultipleColor"`
	DeliveryDescription *string                `json:"deliveryDescription"`
	About               *string                `json:"About"`
	PPQ                 *[]entity.PriceTier    `json:"PPQ"`
	DeliveryPincode     *[]int                 `json:"deliveryPincode"`
	ReturnPolicy        *string                `json:"returnPolicy"`
}

// colorUpload is the validated set of files for one color, in upload order.
type colorUpload struct {
	key   string
	files []service.File
	exts  []string
}

// GroupColorFiles buckets files by the lowercased color in their field name and
// enforces the per-color cap and file name checks. Nothing is uploaded here.
func GroupColorFiles(files []service.File) (map[string]*colorUpload, error) {
	groups := make(map[string]*colorUpload)
	for _, f := range files {
		key := utils.ColorKey(f.FieldName)
		if key == "" {
			return nil, errors.BadRequest("Image field name must be a color", nil)
		}
		ext := f.Ext()
		if ext == "" || ext == "." {
			return nil, errors.BadRequest(fmt.Sprintf("Could not determine file extension for %q", f.FileName), nil)
		}
		g, ok := groups[key]
		if !ok {
			g = &colorUpload{key: key}
			groups[key] = g
		}
		g.files = append(g.files, f)
		g.exts = append(g.exts, ext)
		if len(g.files) > MaxImagesPerColor {
			return nil, errors.BadRequest(fmt.Sprintf("Maximum %d images allowed for color %s", MaxImagesPerColor, key), nil)
		}
	}
	return groups, nil
}

func validateColorBlocks(blocks []ColorBlockInput) error {
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		key := utils.ColorKey(b.Color)
		if key == "" {
			return errors.BadRequest("Each imagesByColor entry needs a color", nil)
		}
		if seen[key] {
			return errors.BadRequest(fmt.Sprintf("Color %s is listed more than once", b.Color), nil)
		}
		seen[key] = true
		for _, s := range b.Sizes {
			if strings.TrimSpace(s.Size) == "" || strings.TrimSpace(s.SKUID) == "" {
				return errors.BadRequest(fmt.Sprintf("Every size of color %s needs size and skuId", b.Color), nil)
			}
			if s.Stock < 0 {
				return errors.BadRequest("Stock cannot be negative", nil)
			}
		}
	}
	return nil
}

func validatePriceTiers(tiers []entity.PriceTier) error {
	for _, t := range tiers {
		if t.MinQty < 1 || t.PricePerUnit <= 0 {
			return errors.BadRequest("PPQ entries need minQty >= 1 and pricePerUnit > 0", nil)
		}
		if t.MaxQty != nil && *t.MaxQty < t.MinQty {
			return errors.BadRequest("PPQ maxQty cannot be below minQty", nil)
		}
	}
	return nil
}

func itemDetailColorFolder(item *entity.Item, detailID, colorKey string) string {
	return fmt.Sprintf("%s/itemDetails/%s/%s", itemFolder(item.CategoryID, item.SubCategoryID, item.ID), detailID, colorKey)
}

// uploadColors uploads every group concurrently and returns the images per
// color key, priorities following upload order. A failure does not cancel
// uploads already in flight.
func (uc *ItemDetailUseCase) uploadColors(ctx context.Context, item *entity.Item, detailID string, groups map[string]*colorUpload) (map[string][]entity.ColorImage, error) {
	results := make(map[string][]entity.ColorImage, len(groups))
	for key, g := range groups {
		results[key] = make([]entity.ColorImage, len(g.files))
	}

	var eg errgroup.Group
	for key, g := range groups {
		folder := itemDetailColorFolder(item, detailID, key)
		images := results[key]
		for i := range g.files {
			f, ext, n := g.files[i], g.exts[i], i+1
			eg.Go(func() error {
				objectKey := fmt.Sprintf("%s/%s_image_%d%s", folder, g.key, n, ext)
				url, err := uc.store.Upload(ctx, objectKey, f.Data, f.ContentType)
				if err != nil {
					return fmt.Errorf("uploading %s: %w", objectKey, err)
				}
				images[n-1] = entity.ColorImage{URL: url, Priority: n}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Internal("Failed to upload item detail images", err)
	}
	return results, nil
}

func (uc *ItemDetailUseCase) Create(ctx context.Context, input CreateItemDetailInput, files []service.File) (*entity.ItemDetail, error) {
	if input.ItemID == "" {
		return nil, errors.BadRequest("itemId is required", nil)
	}
	hasBlock := false
	for _, b := range input.ImagesByColor {
		if utils.ColorKey(b.Color) != "" {
			hasBlock = true
		}
	}
	if !hasBlock {
		return nil, errors.BadRequest("imagesByColor must contain at least one color", nil)
	}
	if err := validateColorBlocks(input.ImagesByColor); err != nil {
		return nil, err
	}
	if err := validatePriceTiers(input.PPQ); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Item not found"), "Failed to load item")
	}

	if _, err := uc.itemDetailRepo.GetByItemID(ctx, item.ID); err == nil {
		return nil, errors.BadRequest("ItemDetail already exists for this item", nil)
	} else if !isNotFound(err) {
		return nil, wrap(err, "Failed to check item detail")
	}

	groups, err := GroupColorFiles(files)
	if err != nil {
		return nil, err
	}
	if err := requireDeclaredColors(groups, input.ImagesByColor, nil); err != nil {
		return nil, err
	}

	now := uc.now()
	detail := &entity.ItemDetail{
		ID:                  generateUUID(),
		ItemID:              item.ID,
		SizeChart:           input.SizeChart,
		HowToMeasure:        input.HowToMeasure,
		IsSize:              input.IsSize,
		IsMultipleColor:     input.IsMultipleColor,
		DeliveryDescription: input.DeliveryDescription,
		About:               input.About,
		PPQ:                 input.PPQ,
		DeliveryPincode:     input.DeliveryPincode,
		ReturnPolicy:        input.ReturnPolicy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if strings.TrimSpace(detail.ReturnPolicy) == "" {
		detail.ReturnPolicy = entity.DefaultReturnPolicy
	}

	uploaded, err := uc.uploadColors(ctx, item, detail.ID, groups)
	if err != nil {
		return nil, err
	}

	detail.ImagesByColor = make([]entity.ColorVariant, 0, len(input.ImagesByColor))
	for _, b := range input.ImagesByColor {
		images := uploaded[utils.ColorKey(b.Color)]
		if images == nil {
			images = []entity.ColorImage{}
		}
		detail.ImagesByColor = append(detail.ImagesByColor, entity.ColorVariant{
			Color:  strings.TrimSpace(b.Color),
			Images: images,
			Sizes:  nonNilSizes(b.Sizes),
		})
	}

	if err := uc.itemDetailRepo.Create(ctx, detail); err != nil {
		return nil, wrap(err, "Failed to create item detail")
	}
	if err := uc.itemRepo.SetHasDetail(ctx, item.ID, true); err != nil {
		return nil, wrap(err, "Failed to flag item")
	}

	return detail, nil
}

// Update merges color blocks into the stored detail. A color that receives new
// files has its previous images deleted first; colors not mentioned keep
// their images and sizes.
func (uc *ItemDetailUseCase) Update(ctx context.Context, id string, input UpdateItemDetailInput, files []service.File) (*entity.ItemDetail, error) {
	detail, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateColorBlocks(input.ImagesByColor); err != nil {
		return nil, err
	}
	if input.PPQ != nil {
		if err := validatePriceTiers(*input.PPQ); err != nil {
			return nil, err
		}
	}

	groups, err := GroupColorFiles(files)
	if err != nil {
		return nil, err
	}
	if err := requireDeclaredColors(groups, input.ImagesByColor, detail); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(ctx, detail.ItemID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Item not found"), "Failed to load item")
	}

	for key := range groups {
		if v, ok := detail.FindColor(key, true); ok {
			for _, img := range v.Images {
				uc.cascade.deleteImage(ctx, img.URL)
			}
			v.Images = []entity.ColorImage{}
		}
	}

	uploaded, err := uc.uploadColors(ctx, item, detail.ID, groups)
	if err != nil {
		return nil, err
	}

	for _, b := range input.ImagesByColor {
		if v, ok := detail.FindColor(b.Color, true); ok {
			if b.Sizes != nil {
				v.Sizes = b.Sizes
			}
			continue
		}
		detail.ImagesByColor = append(detail.ImagesByColor, entity.ColorVariant{
			Color:  strings.TrimSpace(b.Color),
			Images: []entity.ColorImage{},
			Sizes:  nonNilSizes(b.Sizes),
		})
	}
	for key, images := range uploaded {
		if v, ok := detail.FindColor(key, true); ok {
			v.Images = images
		}
	}

	if input.SizeChart != nil {
		detail.SizeChart = *input.SizeChart
	}
	if input.HowToMeasure != nil {
		detail.HowToMeasure = *input.HowToMeasure
	}
	if input.IsSize != nil {
		detail.IsSize = *input.IsSize
	}
	if input.IsMultipleColor != nil {
		detail.IsMultipleColor = *input.IsMultipleColor
	}
	setString(&detail.DeliveryDescription, input.DeliveryDescription)
	setString(&detail.About, input.About)
	if input.PPQ != nil {
		detail.PPQ = *input.PPQ
	}
	if input.DeliveryPincode != nil {
		detail.DeliveryPincode = *input.DeliveryPincode
	}
	if input.ReturnPolicy != nil {
		detail.ReturnPolicy = *input.ReturnPolicy
		if strings.TrimSpace(detail.ReturnPolicy) == "" {
			detail.ReturnPolicy = entity.DefaultReturnPolicy
		}
	}

	if err := uc.itemDetailRepo.Update(ctx, detail); err != nil {
		return nil, wrap(err, "Failed to update item detail")
	}
	return detail, nil
}

func (uc *ItemDetailUseCase) Delete(ctx context.Context, id string) error {
	detail, err := uc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.cascade.deleteItemDetail(ctx, detail); err != nil {
		return wrap(err, "Failed to delete item detail")
	}
	if err := uc.itemRepo.SetHasDetail(ctx, detail.ItemID, false); err != nil {
		if !isNotFound(err) {
			return wrap(err, "Failed to update item")
		}
		logger.Warn("Item %s missing while deleting its detail %s", detail.ItemID, detail.ID)
	}
	return nil
}

func (uc *ItemDetailUseCase) GetByID(ctx context.Context, id string) (*entity.ItemDetail, error) {
	detail, err := uc.itemDetailRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}
	return detail, nil
}

func (uc *ItemDetailUseCase) GetByItemID(ctx context.Context, itemID string) (*entity.ItemDetail, error) {
	detail, err := uc.itemDetailRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("ItemDetail not found"), "Failed to load item detail")
	}
	return detail, nil
}

// requireDeclaredColors rejects files for a color that is neither in blocks nor
// already stored on existing.
func requireDeclaredColors(groups map[string]*colorUpload, blocks []ColorBlockInput, existing *entity.ItemDetail) error {
	declared := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		declared[utils.ColorKey(b.Color)] = true
	}
	for key := range groups {
		if declared[key] {
			continue
		}
		if existing != nil {
			if _, ok := existing.FindColor(key, true); ok {
				continue
			}
		}
		return errors.BadRequest(fmt.Sprintf("Images uploaded for undeclared color %s", key), nil)
	}
	return nil
}

func nonNilSizes(sizes []entity.SizeStock) []entity.SizeStock {
	if sizes == nil {
		return []entity.SizeStock{}
	}
	return sizes
}
