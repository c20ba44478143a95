package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserReview is unique per (user, item detail).
type UserReview struct {
	ID                   string    `json:"id" firestore:"id"`
	UserID               string    `json:"userId" firestore:"userId"`
	UserName             string    `json:"userName,omitempty" firestore:"userName"`
	ItemDetailID         string    `json:"itemDetailId" firestore:"itemDetailId"`
	Rating               float64   `json:"rating" firestore:"rating"`
	Review               string    `json:"review,omitempty" firestore:"review"`
	CustomerProductImage []string  `json:"customerProductImage" firestore:"customerProductImage"`
	SizeBought           string    `json:"sizeBought,omitempty" firestore:"sizeBought"`
	CreatedAt            time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type PartnerReview struct {
	ID           string    `json:"id" firestore:"id"`
	ItemDetailID string    `json:"itemDetailId,omitempty" firestore:"itemDetailId"`
	Rating       float64   `json:"rating" firestore:"rating"`
	Comment      string    `json:"comment" firestore:"comment"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// PartnerReviewBook holds every review a partner wrote, one document per partner.
type PartnerReviewBook struct {
	PartnerID     string          `json:"partnerId" firestore:"partnerId"`
	Reviews       []PartnerReview `json:"reviews" firestore:"reviews"`
	CustomerPhoto string          `json:"customerPhoto" firestore:"customerPhoto"`
	CreatedAt     time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt" firestore:"updatedAt"`
}

func (b *PartnerReviewBook) Find(reviewID string) (int, bool) {
	for i, r := range b.Reviews {
		if r.ID == reviewID {
			return i, true
		}
	}
	return -1, false
}

// AverageRating is the arithmetic mean rounded to places decimals; zero for no ratings.
func AverageRating(ratings []float64, places int32) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromFloat(r))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(places).Float64()
	return avg
}
