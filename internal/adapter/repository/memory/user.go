package memory

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

type userRepository struct {
	users *table[entity.User]
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{users: newTable[entity.User]("User", nil)}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.users.put(user.ID, user)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users.get(id)
}

func (r *userRepository) GetByPhone(_ context.Context, phone string) (*entity.User, error) {
	return r.users.first(func(u *entity.User) bool { return u.PhoneNumber == phone }, nil)
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users.first(func(u *entity.User) bool { return u.Email == email }, nil)
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	r.users.put(user.ID, user)
	return nil
}

type partnerRepository struct {
	partners *table[entity.Partner]
	profiles *table[entity.PartnerProfile]
}

func NewPartnerRepository() repository.PartnerRepository {
	return &partnerRepository{
		partners: newTable[entity.Partner]("Partner", nil),
		profiles: newTable[entity.PartnerProfile]("Partner profile", nil),
	}
}

func (r *partnerRepository) Create(_ context.Context, partner *entity.Partner) error {
	r.partners.put(partner.ID, partner)
	return nil
}

func (r *partnerRepository) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	return r.partners.get(id)
}

func (r *partnerRepository) GetByPhone(_ context.Context, phone string) (*entity.Partner, error) {
	return r.partners.first(func(p *entity.Partner) bool { return p.PhoneNumber == phone }, nil)
}

func (r *partnerRepository) Update(_ context.Context, partner *entity.Partner) error {
	partner.UpdatedAt = time.Now()
	r.partners.put(partner.ID, partner)
	return nil
}

func (r *partnerRepository) CreateProfile(_ context.Context, profile *entity.PartnerProfile) error {
	r.profiles.put(profile.PartnerID, profile)
	return nil
}

func (r *partnerRepository) GetProfile(_ context.Context, partnerID string) (*entity.PartnerProfile, error) {
	return r.profiles.get(partnerID)
}

func (r *partnerRepository) UpdateProfile(_ context.Context, profile *entity.PartnerProfile) error {
	profile.UpdatedAt = time.Now()
	r.profiles.put(profile.PartnerID, profile)
	return nil
}

type otpRepository struct {
	otps *table[entity.PhoneOTP]
}

func NewOTPRepository() repository.OTPRepository {
	return &otpRepository{otps: newTable[entity.PhoneOTP]("OTP", nil)}
}

func (r *otpRepository) Upsert(_ context.Context, otp *entity.PhoneOTP) error {
	r.otps.put(otp.PhoneNumber, otp)
	return nil
}

func (r *otpRepository) Get(_ context.Context, phone string) (*entity.PhoneOTP, error) {
	return r.otps.get(phone)
}

func (r *otpRepository) MarkVerified(_ context.Context, phone string) error {
	_, err := r.otps.update(phone, func(o *entity.PhoneOTP) error {
		o.IsVerified = true
		o.UpdatedAt = time.Now()
		return nil
	})
	return err
}

func (r *otpRepository) Delete(_ context.Context, phone string) error {
	r.otps.remove(phone)
	return nil
}
