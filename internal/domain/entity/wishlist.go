package entity

import (
	"strings"
	"time"
)

type WishlistLine struct {
	ItemID       string    `json:"itemId,omitempty" firestore:"itemId,omitempty"`
	ItemDetailID string    `json:"itemDetailId,omitempty" firestore:"itemDetailId,omitempty"`
	Color        string    `json:"color" firestore:"color"`
	AddedAt      time.Time `json:"addedAt" firestore:"addedAt"`
}

func (l WishlistLine) Ref() string {
	if l.ItemDetailID != "" {
		return l.ItemDetailID
	}
	return l.ItemID
}

type Wishlist struct {
	OwnerID   string         `json:"-" firestore:"ownerId"`
	UserID    string         `json:"userId,omitempty" firestore:"userId,omitempty"`
	PartnerID string         `json:"partnerId,omitempty" firestore:"partnerId,omitempty"`
	Items     []WishlistLine `json:"items" firestore:"items"`
	CreatedAt time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

func (w *Wishlist) indexOf(ref, color string, foldColor bool) int {
	for i, l := range w.Items {
		if l.Ref() != ref {
			continue
		}
		if l.Color == color || (foldColor && strings.EqualFold(l.Color, color)) {
			return i
		}
	}
	return -1
}

func (w *Wishlist) Contains(ref, color string, foldColor bool) bool {
	return w.indexOf(ref, color, foldColor) >= 0
}

// Remove drops the (ref, color) entry and reports whether it existed.
func (w *Wishlist) Remove(ref, color string, foldColor bool) bool {
	i := w.indexOf(ref, color, foldColor)
	if i < 0 {
		return false
	}
	w.Items = append(w.Items[:i], w.Items[i+1:]...)
	return true
}
