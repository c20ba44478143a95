package entity

import (
	"strings"
	"time"
)

const DefaultReturnPolicy = "30-day return policy available."

type ColorImage struct {
	URL      string `json:"url" firestore:"url"`
	Priority int    `json:"priority" firestore:"priority"`
}

type SizeStock struct {
	Size  string `json:"size" firestore:"size" validate:"required"`
	Stock int    `json:"stock" firestore:"stock" validate:"gte=0"`
	SKUID string `json:"skuId" firestore:"skuId" validate:"required"`
}

type ColorVariant struct {
	Color  string       `json:"color" firestore:"color"`
	Images []ColorImage `json:"images" firestore:"images"`
	Sizes  []SizeStock  `json:"sizes" firestore:"sizes"`
}

type SizeChartRow struct {
	Size   string             `json:"size" firestore:"size"`
	Inches map[string]float64 `json:"inches,omitempty" firestore:"inches"`
	Cm     map[string]float64 `json:"cm,omitempty" firestore:"cm"`
}

// PriceTier is one price-per-quantity breakpoint; MaxQty nil means open-ended.
type PriceTier struct {
	MinQty       int     `json:"minQty" firestore:"minQty" validate:"required,gte=1"`
	MaxQty       *int    `json:"maxQty,omitempty" firestore:"maxQty"`
	PricePerUnit float64 `json:"pricePerUnit" firestore:"pricePerUnit" validate:"required,gt=0"`
}

type ItemDetail struct {
	ID                  string              `json:"id" firestore:"id"`
	ItemID              string              `json:"itemId" firestore:"itemId"`
	ImagesByColor       []ColorVariant      `json:"imagesByColor" firestore:"imagesByColor"`
	SizeChart           []SizeChartRow      `json:"sizeChart" firestore:"sizeChart"`
	HowToMeasure        []map[string]string `json:"howToMeasure" firestore:"howToMeasure"`
	IsSize              bool                `json:"isSize" firestore:"isSize"`
	IsMultipleColor     bool                `json:"isMultipleColor" firestore:"isMultipleColor"`
	DeliveryDescription string              `json:"deliveryDescription,omitempty" firestore:"deliveryDescription"`
	About               string              `json:"About,omitempty" firestore:"about"`
	PPQ                 []PriceTier         `json:"PPQ" firestore:"ppq"`
	DeliveryPincode     []int               `json:"deliveryPincode" firestore:"deliveryPincode"`
	ReturnPolicy        string              `json:"returnPolicy" firestore:"returnPolicy"`
	CreatedAt           time.Time           `json:"createdAt" firestore:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt" firestore:"updatedAt"`
}

// FindColor returns the variant for color. foldCase selects case-insensitive matching.
func (d *ItemDetail) FindColor(color string, foldCase bool) (*ColorVariant, bool) {
	for i := range d.ImagesByColor {
		v := &d.ImagesByColor[i]
		if v.Color == color || (foldCase && strings.EqualFold(strings.TrimSpace(v.Color), strings.TrimSpace(color))) {
			return v, true
		}
	}
	return nil, false
}

// HasSize reports whether the variant declares size with exactly this SKU.
func (v *ColorVariant) HasSize(size, skuID string) bool {
	for _, s := range v.Sizes {
		if s.Size == size && s.SKUID == skuID {
			return true
		}
	}
	return false
}

// ImageURLs lists every stored image across all colors.
func (d *ItemDetail) ImageURLs() []string {
	var urls []string
	for _, v := range d.ImagesByColor {
		for _, img := range v.Images {
			if img.URL != "" {
				urls = append(urls, img.URL)
			}
		}
	}
	return urls
}
