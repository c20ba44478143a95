package entity

import (
	"time"
)

type Partner struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"userId" firestore:"userId"`
	Name        string    `json:"name" firestore:"name"`
	PhoneNumber string    `json:"phoneNumber" firestore:"phoneNumber"`
	Email       string    `json:"email" firestore:"email"`
	IsVerified  bool      `json:"isVerified" firestore:"isVerified"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	IsProfile   bool      `json:"isProfile" firestore:"isProfile"`
	IsAddress   bool      `json:"isAddress" firestore:"isAddress"`
	ImageShop   string    `json:"imageShop,omitempty" firestore:"imageShop"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type PartnerProfile struct {
	ID          string    `json:"id" firestore:"id"`
	PartnerID   string    `json:"partnerId" firestore:"partnerId"`
	ShopName    string    `json:"shopName" firestore:"shopName"`
	GSTNumber   string    `json:"gstNumber,omitempty" firestore:"gstNumber"`
	PANNumber   string    `json:"panNumber" firestore:"panNumber"`
	ShopAddress string    `json:"shopAddress" firestore:"shopAddress"`
	Pincode     string    `json:"pincode" firestore:"pincode"`
	TownCity    string    `json:"townCity,omitempty" firestore:"townCity"`
	State       string    `json:"state,omitempty" firestore:"state"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}
