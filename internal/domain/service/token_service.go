package service

import (
	"errors"

	"nanocart/internal/domain/entity"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is what a signed credential carries. Exactly one of UserID, PartnerID
// or AdminID is set, matching Role.
type Claims struct {
	UserID      string      `json:"userId,omitempty"`
	PartnerID   string      `json:"partnerId,omitempty"`
	AdminID     string      `json:"adminId,omitempty"`
	Role        entity.Role `json:"role"`
	IsPartner   bool        `json:"isPartner,omitempty"`
	IsActive    bool        `json:"isActive"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Email       string      `json:"email,omitempty"`
	Name        string      `json:"name,omitempty"`
}

// Subject is the id of whoever the credential was issued to.
func (c Claims) Subject() string {
	switch {
	case c.AdminID != "":
		return c.AdminID
	case c.PartnerID != "":
		return c.PartnerID
	default:
		return c.UserID
	}
}

type TokenService interface {
	Issue(claims Claims) (string, error)
	// Verify returns ErrTokenExpired or ErrTokenInvalid on failure.
	Verify(token string) (*Claims, error)
}

// OTPGenerator produces the numeric one-time codes sent to phones.
type OTPGenerator interface {
	Generate() (string, error)
}
