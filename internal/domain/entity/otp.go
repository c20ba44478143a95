package entity

import (
	"time"
)

// PhoneOTP is keyed by phone number; at most one live code per phone.
type PhoneOTP struct {
	PhoneNumber string    `json:"phoneNumber" firestore:"phoneNumber"`
	OTP         string    `json:"otp" firestore:"otp"`
	ExpiresAt   time.Time `json:"expiresAt" firestore:"expiresAt"`
	IsVerified  bool      `json:"isVerified" firestore:"isVerified"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (o *PhoneOTP) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
