package entity

import (
	"time"
)

type Role string

const (
	RoleUser    Role = "User"
	RolePartner Role = "Partner"
	RoleAdmin   Role = "Admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePartner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID              string    `json:"id" firestore:"id"`
	Name            string    `json:"name" firestore:"name"`
	PhoneNumber     string    `json:"phoneNumber" firestore:"phoneNumber"`
	Email           string    `json:"email" firestore:"email"`
	Role            Role      `json:"role" firestore:"role"`
	IsPhoneVerified bool      `json:"isPhoneVerified" firestore:"isPhoneVerified"`
	IsEmailVerified bool      `json:"isEmailVerified" firestore:"isEmailVerified"`
	IsActive        bool      `json:"isActive" firestore:"isActive"`
	IsPartner       bool      `json:"isPartner" firestore:"isPartner"`
	IsProfile       bool      `json:"isProfile" firestore:"isProfile"`
	IsAddress       bool      `json:"isAddress" firestore:"isAddress"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt"`
}
