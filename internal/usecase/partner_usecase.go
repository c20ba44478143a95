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

type PartnerUseCase struct {
	partnerRepo repository.PartnerRepository
	userRepo    repository.UserRepository
	store       service.ObjectStore
	tokens      service.TokenService
	now         func() time.Time
}

func NewPartnerUseCase(partnerRepo repository.PartnerRepository, userRepo repository.UserRepository, store service.ObjectStore, tokens service.TokenService) *PartnerUseCase {
	return &PartnerUseCase{
		partnerRepo: partnerRepo,
		userRepo:    userRepo,
		store:       store,
		tokens:      tokens,
		now:         time.Now,
	}
}

type PartnerSignupInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"required,len=10,numeric"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	ShopName    string `json:"shopName" form:"shopName" validate:"required"`
	GSTNumber   string `json:"gstNumber" form:"gstNumber"`
	PANNumber   string `json:"panNumber" form:"panNumber" validate:"required"`
	ShopAddress string `json:"shopAddress" form:"shopAddress" validate:"required"`
	Pincode     string `json:"pincode" form:"pincode" validate:"required,len=6,numeric"`
	TownCity    string `json:"townCity" form:"townCity"`
	State       string `json:"state" form:"state"`
}

type UpdatePartnerProfileInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	ShopName    *string `json:"shopName"`
	GSTNumber   *string `json:"gstNumber"`
	PANNumber   *string `json:"panNumber"`
	ShopAddress *string `json:"shopAddress"`
	Pincode     *string `json:"pincode"`
	TownCity    *string `json:"townCity"`
	State       *string `json:"state"`
}

type PartnerAccount struct {
	Partner *entity.Partner        `json:"partner"`
	Profile *entity.PartnerProfile `json:"profile"`
}

func partnerImageFolder(partnerID string) string {
	return "partner/" + partnerID
}

func (uc *PartnerUseCase) Signup(ctx context.Context, input PartnerSignupInput, image *service.File) (*PartnerAccount, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.BadRequest("Shop image is required", nil)
	}

	user, err := uc.userRepo.GetByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found, please sign up as a user first"), "Failed to load user")
	}

	if _, err := uc.partnerRepo.GetByPhone(ctx, input.PhoneNumber); err == nil {
		return nil, errors.Forbidden("Partner already exists with this phone number", nil)
	} else if !isNotFound(err) {
		return nil, wrap(err, "Failed to check partner")
	}

	now := uc.now()
	partner := &entity.Partner{
		ID:          generateUUID(),
		UserID:      user.ID,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.partnerRepo.Create(ctx, partner); err != nil {
		return nil, wrap(err, "Failed to create partner")
	}

	profile := &entity.PartnerProfile{
		ID:          generateUUID(),
		PartnerID:   partner.ID,
		ShopName:    input.ShopName,
		GSTNumber:   input.GSTNumber,
		PANNumber:   input.PANNumber,
		ShopAddress: input.ShopAddress,
		Pincode:     input.Pincode,
		TownCity:    input.TownCity,
		State:       input.State,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.partnerRepo.CreateProfile(ctx, profile); err != nil {
		return nil, wrap(err, "Failed to create partner profile")
	}

	url, err := uc.store.Upload(ctx, service.ObjectKey(partnerImageFolder(partner.ID), image.FileName, now), image.Data, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload shop image", err)
	}

	partner.ImageShop = url
	partner.IsProfile = true
	if err := uc.partnerRepo.Update(ctx, partner); err != nil {
		return nil, wrap(err, "Failed to update partner")
	}

	logger.Info("Partner %s registered for user %s, awaiting verification", partner.ID, user.ID)
	return &PartnerAccount{Partner: partner, Profile: profile}, nil
}

// Verify activates a partner, moves the linked user onto the partner login path
// and issues the partner's first credential.
func (uc *PartnerUseCase) Verify(ctx context.Context, partnerID string) (*AuthResult, error) {
	partner, err := uc.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
	}
	if partner.IsVerified {
		return nil, errors.BadRequest("Partner is already verified", nil)
	}

	partner.IsVerified = true
	partner.IsActive = true
	if err := uc.partnerRepo.Update(ctx, partner); err != nil {
		return nil, wrap(err, "Failed to update partner")
	}

	user, err := uc.userRepo.GetByPhone(ctx, partner.PhoneNumber)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
	}
	user.IsPartner = true
	user.Role = entity.RolePartner
	user.IsActive = false
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, wrap(err, "Failed to update user")
	}

	token, err := uc.tokens.Issue(partnerClaims(partner, user.ID))
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}
	return &AuthResult{Token: token, Role: entity.RolePartner, Partner: partner}, nil
}

func (uc *PartnerUseCase) GetProfile(ctx context.Context, partnerID string) (*PartnerAccount, error) {
	partner, err := uc.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
	}
	profile, err := uc.partnerRepo.GetProfile(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner profile not found"), "Failed to load partner profile")
	}
	return &PartnerAccount{Partner: partner, Profile: profile}, nil
}

func (uc *PartnerUseCase) UpdateProfile(ctx context.Context, partnerID string, input UpdatePartnerProfileInput, image *service.File) (*PartnerAccount, error) {
	account, err := uc.GetProfile(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	partner, profile := account.Partner, account.Profile
	if !partner.IsVerified || !partner.IsActive {
		return nil, errors.Forbidden("Partner is not verified or not active", nil)
	}

	if input.Pincode != nil && !pincodePattern.MatchString(*input.Pincode) {
		return nil, errors.BadRequest("Pincode must be 6 digits", nil)
	}

	setString(&partner.Name, input.Name)
	setString(&partner.Email, input.Email)
	setString(&profile.ShopName, input.ShopName)
	setString(&profile.GSTNumber, input.GSTNumber)
	setString(&profile.PANNumber, input.PANNumber)
	setString(&profile.ShopAddress, input.ShopAddress)
	setString(&profile.Pincode, input.Pincode)
	setString(&profile.TownCity, input.TownCity)
	setString(&profile.State, input.State)

	if image != nil && len(image.Data) > 0 {
		url, err := uc.store.Replace(ctx, partner.ImageShop, service.ObjectKey(partnerImageFolder(partner.ID), image.FileName, uc.now()), image.Data, image.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload shop image", err)
		}
		partner.ImageShop = url
	}

	if err := uc.partnerRepo.Update(ctx, partner); err != nil {
		return nil, wrap(err, "Failed to update partner")
	}
	if err := uc.partnerRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, wrap(err, "Failed to update partner profile")
	}

	return &PartnerAccount{Partner: partner, Profile: profile}, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
