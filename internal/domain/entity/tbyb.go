package entity

import (
	"time"
)

const TBYBDailyLimit = 5

type TBYBImage struct {
	ImageURL   string    `json:"imageUrl" firestore:"imageUrl"`
	UploadedAt time.Time `json:"uploadedAt" firestore:"uploadedAt"`
}

// TBYB collects a user's try-before-you-buy photos.
type TBYB struct {
	UserID string      `json:"userId" firestore:"userId"`
	Images []TBYBImage `json:"images" firestore:"images"`
}

// UploadsOn counts images uploaded on the same calendar day as day, in day's location.
func (t *TBYB) UploadsOn(day time.Time) int {
	y, m, d := day.Date()
	n := 0
	for _, img := range t.Images {
		iy, im, id := img.UploadedAt.In(day.Location()).Date()
		if iy == y && im == m && id == d {
			n++
		}
	}
	return n
}
