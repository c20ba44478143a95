package entity

import (
	"strings"
	"time"
)

type CartLine struct {
	ItemID       string    `json:"itemId,omitempty" firestore:"itemId,omitempty"`
	ItemDetailID string    `json:"itemDetailId,omitempty" firestore:"itemDetailId,omitempty"`
	Color        string    `json:"color" firestore:"color"`
	Size         string    `json:"size" firestore:"size"`
	SKUID        string    `json:"skuId" firestore:"skuId"`
	Quantity     int       `json:"quantity" firestore:"quantity"`
	AddedAt      time.Time `json:"addedAt" firestore:"addedAt"`
}

// Ref is the item or item detail the line points at.
func (l CartLine) Ref() string {
	if l.ItemDetailID != "" {
		return l.ItemDetailID
	}
	return l.ItemID
}

// Cart is shared by users (lines keyed by itemId) and partners (keyed by itemDetailId).
type Cart struct {
	OwnerID   string     `json:"-" firestore:"ownerId"`
	UserID    string     `json:"userId,omitempty" firestore:"userId,omitempty"`
	PartnerID string     `json:"partnerId,omitempty" firestore:"partnerId,omitempty"`
	Items     []CartLine `json:"items" firestore:"items"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// LineKey identifies a cart line. FoldColor makes the color comparison case-insensitive.
type LineKey struct {
	Ref       string
	Color     string
	Size      string
	SKUID     string
	FoldColor bool
}

func (k LineKey) Matches(l CartLine) bool {
	if l.Ref() != k.Ref || l.Size != k.Size || l.SKUID != k.SKUID {
		return false
	}
	if k.FoldColor {
		return strings.EqualFold(l.Color, k.Color)
	}
	return l.Color == k.Color
}

// AddLine merges qty into an existing matching line or appends line.
func (c *Cart) AddLine(key LineKey, line CartLine) {
	for i := range c.Items {
		if key.Matches(c.Items[i]) {
			c.Items[i].Quantity += line.Quantity
			return
		}
	}
	c.Items = append(c.Items, line)
}

// RemoveLines drops every matching line and reports how many were removed.
func (c *Cart) RemoveLines(key LineKey) int {
	kept := c.Items[:0]
	removed := 0
	for _, l := range c.Items {
		if key.Matches(l) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	c.Items = kept
	return removed
}

// Step adjusts the first matching line by +1 or -1. A decrement from 1 or less
// removes the line. It reports false when nothing matched.
func (c *Cart) Step(key LineKey, increase bool) bool {
	for i := range c.Items {
		if !key.Matches(c.Items[i]) {
			continue
		}
		if increase {
			c.Items[i].Quantity++
			return true
		}
		if c.Items[i].Quantity <= 1 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
		c.Items[i].Quantity--
		return true
	}
	return false
}
