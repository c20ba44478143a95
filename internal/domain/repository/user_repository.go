package repository

import (
	"context"

	"nanocart/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Partner, error)
	Update(ctx context.Context, partner *entity.Partner) error

	CreateProfile(ctx context.Context, profile *entity.PartnerProfile) error
	GetProfile(ctx context.Context, partnerID string) (*entity.PartnerProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.PartnerProfile) error
}

// OTPRepository stores one code per phone number.
type OTPRepository interface {
	Upsert(ctx context.Context, otp *entity.PhoneOTP) error
	Get(ctx context.Context, phone string) (*entity.PhoneOTP, error)
	MarkVerified(ctx context.Context, phone string) error
	Delete(ctx context.Context, phone string) error
}
