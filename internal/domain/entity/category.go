package entity

import (
	"time"
)

type Category struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description"`
	Image       string    `json:"image,omitempty" firestore:"image"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type SubCategory struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description"`
	Image       string    `json:"image,omitempty" firestore:"image"`
	CategoryID  string    `json:"categoryId" firestore:"categoryId"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Filter is an admin-managed facet, e.g. key "fabric" with its allowed values.
type Filter struct {
	ID        string    `json:"id" firestore:"id"`
	Key       string    `json:"key" firestore:"key"`
	Values    []string  `json:"values" firestore:"values"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
