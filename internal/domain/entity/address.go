package entity

import (
	"time"
)

const (
	AddressHome = "Home"
	AddressWork = "Work"
)

type AddressDetail struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	PhoneNumber  string `json:"phoneNumber" firestore:"phoneNumber"`
	Email        string `json:"email,omitempty" firestore:"email"`
	Pincode      string `json:"pincode" firestore:"pincode"`
	AddressLine1 string `json:"addressLine1" firestore:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" firestore:"addressLine2"`
	CityTown     string `json:"cityTown" firestore:"cityTown"`
	State        string `json:"state" firestore:"state"`
	Country      string `json:"country" firestore:"country"`
	AddressType  string `json:"addressType" firestore:"addressType"`
	IsDefault    bool   `json:"isDefault" firestore:"isDefault"`
}

type UserAddress struct {
	UserID        string          `json:"userId" firestore:"userId"`
	AddressDetail []AddressDetail `json:"addressDetail" firestore:"addressDetail"`
	CreatedAt     time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt" firestore:"updatedAt"`
}

func (a *UserAddress) Find(addressID string) (int, bool) {
	for i, d := range a.AddressDetail {
		if d.ID == addressID {
			return i, true
		}
	}
	return -1, false
}

// MakeDefault clears every default flag except the one at index i.
func (a *UserAddress) MakeDefault(i int) {
	for j := range a.AddressDetail {
		a.AddressDetail[j].IsDefault = j == i
	}
}
