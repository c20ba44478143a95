package usecase

import (
	"context"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
	"nanocart/pkg/logger"
)

const DefaultOTPTTL = 5 * time.Minute

type AuthUseCase struct {
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	otpRepo     repository.OTPRepository
	tokens      service.TokenService
	otpGen      service.OTPGenerator
	otpTTL      time.Duration
	exposeCode  bool
	now         func() time.Time
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	partnerRepo repository.PartnerRepository,
	otpRepo repository.OTPRepository,
	tokens service.TokenService,
	otpGen service.OTPGenerator,
	otpTTL time.Duration,
	exposeCode bool,
) *AuthUseCase {
	if otpTTL <= 0 {
		otpTTL = DefaultOTPTTL
	}
	return &AuthUseCase{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		otpRepo:     otpRepo,
		tokens:      tokens,
		otpGen:      otpGen,
		otpTTL:      otpTTL,
		exposeCode:  exposeCode,
		now:         time.Now,
	}
}

type OTPResult struct {
	PhoneNumber string    `json:"phoneNumber"`
	OTP         string    `json:"otp,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type SignupInput struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Email       string `json:"email" validate:"required,email"`
}

type AuthResult struct {
	Token   string          `json:"token"`
	Role    entity.Role     `json:"role"`
	User    *entity.User    `json:"user,omitempty"`
	Partner *entity.Partner `json:"partner,omitempty"`
}

// SendOTP issues a fresh code for phone, replacing any previous one.
func (uc *AuthUseCase) SendOTP(ctx context.Context, phone string) (*OTPResult, error) {
	if !phonePattern.MatchString(phone) {
		return nil, errors.BadRequest("Phone number must be 10 digits", nil)
	}

	code, err := uc.otpGen.Generate()
	if err != nil {
		return nil, errors.Internal("Failed to generate OTP", err)
	}

	now := uc.now()
	otp := &entity.PhoneOTP{
		PhoneNumber: phone,
		OTP:         code,
		ExpiresAt:   now.Add(uc.otpTTL),
		IsVerified:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.otpRepo.Upsert(ctx, otp); err != nil {
		return nil, wrap(err, "Failed to store OTP")
	}

	logger.Info("OTP issued for %s", phone)

	result := &OTPResult{PhoneNumber: phone, ExpiresAt: otp.ExpiresAt}
	if uc.exposeCode {
		result.OTP = code
	}
	return result, nil
}

// checkOTP distinguishes a missing code (404), an expired one (410) and a wrong one (401).
func (uc *AuthUseCase) checkOTP(ctx context.Context, phone, code string) (*entity.PhoneOTP, error) {
	otp, err := uc.otpRepo.Get(ctx, phone)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("OTP not found"), "Failed to load OTP")
	}
	if otp.Expired(uc.now()) {
		return nil, errors.Gone("OTP has expired")
	}
	if otp.OTP != code {
		return nil, errors.Unauthorized("Invalid OTP", nil)
	}
	return otp, nil
}

func (uc *AuthUseCase) VerifyOTP(ctx context.Context, phone, code string) error {
	if _, err := uc.checkOTP(ctx, phone, code); err != nil {
		return err
	}
	if err := uc.otpRepo.MarkVerified(ctx, phone); err != nil {
		return wrap(err, "Failed to verify OTP")
	}
	return nil
}

func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if _, err := uc.userRepo.GetByPhone(ctx, input.PhoneNumber); err == nil {
		return nil, errors.Forbidden("Phone number already registered", nil)
	} else if !isNotFound(err) {
		return nil, wrap(err, "Failed to check phone number")
	}

	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Forbidden("Email already registered", nil)
	} else if !isNotFound(err) {
		return nil, wrap(err, "Failed to check email")
	}

	otp, err := uc.otpRepo.Get(ctx, input.PhoneNumber)
	if err != nil && !isNotFound(err) {
		return nil, wrap(err, "Failed to load OTP")
	}
	if otp == nil || !otp.IsVerified {
		return nil, errors.Forbidden("Phone number not verified", nil)
	}

	now := uc.now()
	user := &entity.User{
		ID:              generateUUID(),
		Name:            input.Name,
		PhoneNumber:     input.PhoneNumber,
		Email:           input.Email,
		Role:            entity.RoleUser,
		IsPhoneVerified: true,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, wrap(err, "Failed to create user")
	}

	if err := uc.otpRepo.Delete(ctx, input.PhoneNumber); err != nil {
		logger.Warn("Failed to delete OTP for %s: %v", input.PhoneNumber, err)
	}

	token, err := uc.tokens.Issue(userClaims(user))
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}

	return &AuthResult{Token: token, Role: user.Role, User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, phone, code string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
	}

	if _, err := uc.checkOTP(ctx, phone, code); err != nil {
		return nil, err
	}
	if err := uc.otpRepo.Delete(ctx, phone); err != nil {
		logger.Warn("Failed to delete OTP for %s: %v", phone, err)
	}

	if !user.IsPhoneVerified {
		return nil, errors.Forbidden("Phone number not verified", nil)
	}

	switch {
	case user.Role == entity.RoleAdmin:
		token, err := uc.tokens.Issue(service.Claims{
			AdminID:     user.ID,
			Role:        entity.RoleAdmin,
			IsActive:    user.IsActive,
			PhoneNumber: user.PhoneNumber,
			Email:       user.Email,
			Name:        user.Name,
		})
		if err != nil {
			return nil, errors.Internal("Failed to generate token", err)
		}
		return &AuthResult{Token: token, Role: entity.RoleAdmin, User: user}, nil

	case user.IsPartner && !user.IsActive:
		partner, err := uc.partnerRepo.GetByPhone(ctx, phone)
		if err != nil {
			return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
		}
		if !partner.IsVerified {
			return nil, errors.Forbidden("Partner is not verified", nil)
		}
		if !partner.IsActive {
			return nil, errors.Forbidden("Partner account is not active", nil)
		}
		token, err := uc.tokens.Issue(partnerClaims(partner, user.ID))
		if err != nil {
			return nil, errors.Internal("Failed to generate token", err)
		}
		return &AuthResult{Token: token, Role: entity.RolePartner, Partner: partner}, nil

	default:
		if !user.IsActive {
			return nil, errors.Forbidden("User account is not active", nil)
		}
		token, err := uc.tokens.Issue(userClaims(user))
		if err != nil {
			return nil, errors.Internal("Failed to generate token", err)
		}
		return &AuthResult{Token: token, Role: user.Role, User: user}, nil
	}
}

func userClaims(user *entity.User) service.Claims {
	return service.Claims{
		UserID:      user.ID,
		Role:        entity.RoleUser,
		IsPartner:   user.IsPartner,
		IsActive:    user.IsActive,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Name:        user.Name,
	}
}

func partnerClaims(partner *entity.Partner, userID string) service.Claims {
	return service.Claims{
		PartnerID:   partner.ID,
		UserID:      userID,
		Role:        entity.RolePartner,
		IsPartner:   true,
		IsActive:    partner.IsActive,
		PhoneNumber: partner.PhoneNumber,
		Email:       partner.Email,
		Name:        partner.Name,
	}
}
