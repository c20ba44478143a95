package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemFilter struct {
	Key   string `json:"key" firestore:"key"`
	Value string `json:"value" firestore:"value"`
}

type Item struct {
	ID                   string       `json:"id" firestore:"id"`
	Name                 string       `json:"name" firestore:"name"`
	Description          string       `json:"description,omitempty" firestore:"description"`
	MRP                  float64      `json:"MRP" firestore:"mrp"`
	TotalStock           int          `json:"totalStock" firestore:"totalStock"`
	DiscountedPrice      *float64     `json:"discountedPrice,omitempty" firestore:"discountedPrice"`
	DiscountPercentage   float64      `json:"discountPercentage" firestore:"discountPercentage"`
	Image                string       `json:"image" firestore:"image"`
	CategoryID           string       `json:"categoryId" firestore:"categoryId"`
	SubCategoryID        string       `json:"subCategoryId" firestore:"subCategoryId"`
	Filters              []ItemFilter `json:"filters" firestore:"filters"`
	FilterTags           []string     `json:"-" firestore:"filterTags"`
	IsItemDetail         bool         `json:"isItemDetail" firestore:"isItemDetail"`
	UserAverageRating    float64      `json:"userAverageRating" firestore:"userAverageRating"`
	PartnerAverageRating float64      `json:"partnerAverageRating" firestore:"partnerAverageRating"`
	CreatedAt            time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt" firestore:"updatedAt"`
}

// FilterTag is the denormalized "key=value" form stored for array-contains queries.
func FilterTag(key, value string) string {
	return key + "=" + value
}

// PrepareForSave recomputes the derived fields. Call it before every write.
func (i *Item) PrepareForSave() {
	i.DiscountPercentage = DiscountPercentage(i.MRP, i.DiscountedPrice)
	i.FilterTags = make([]string, 0, len(i.Filters))
	for _, f := range i.Filters {
		i.FilterTags = append(i.FilterTags, FilterTag(f.Key, f.Value))
	}
}

// DiscountPercentage is (mrp-discounted)/mrp*100 rounded to two places; zero when
// there is no discounted price or mrp is not positive.
func DiscountPercentage(mrp float64, discounted *float64) float64 {
	if discounted == nil || mrp <= 0 {
		return 0
	}
	m := decimal.NewFromFloat(mrp)
	d := decimal.NewFromFloat(*discounted)
	pct, _ := m.Sub(d).Div(m).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}
