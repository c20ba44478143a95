package usecase

import (
	"context"
	"strings"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

type AddressInput struct {
	Name         string `json:"name" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Pincode      string `json:"pincode" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	CityTown     string `json:"cityTown" validate:"required"`
	State        string `json:"state" validate:"required"`
	Country      string `json:"country" validate:"required"`
	AddressType  string `json:"addressType"`
	IsDefault    bool   `json:"isDefault"`
}

type UpdateAddressInput struct {
	Name         *string `json:"name"`
	PhoneNumber  *string `json:"phoneNumber"`
	Email        *string `json:"email"`
	Pincode      *string `json:"pincode"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	CityTown     *string `json:"cityTown"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	AddressType  *string `json:"addressType"`
	IsDefault    *bool   `json:"isDefault"`
}

func normalizeAddressType(t string) (string, error) {
	switch strings.TrimSpace(t) {
	case "":
		return entity.AddressHome, nil
	case entity.AddressHome, entity.AddressWork:
		return strings.TrimSpace(t), nil
	default:
		return "", errors.BadRequest("addressType must be Home or Work", nil)
	}
}

func checkContact(phone, pincode string) error {
	if !phonePattern.MatchString(phone) {
		return errors.BadRequest("Phone number must be 10 digits", nil)
	}
	if !pincodePattern.MatchString(pincode) {
		return errors.BadRequest("Pincode must be 6 digits", nil)
	}
	return nil
}

// AddressUseCase keeps exactly one default address whenever the user has any.
type AddressUseCase struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewAddressUseCase(addressRepo repository.AddressRepository, userRepo repository.UserRepository) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (uc *AddressUseCase) Create(ctx context.Context, userID string, input AddressInput) (*entity.UserAddress, error) {
	if err := checkContact(input.PhoneNumber, input.Pincode); err != nil {
		return nil, err
	}
	addressType, err := normalizeAddressType(input.AddressType)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
	}

	now := uc.now()
	book, err := uc.addressRepo.Get(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, wrap(err, "Failed to load addresses")
		}
		book = &entity.UserAddress{UserID: userID, CreatedAt: now}
	}

	book.AddressDetail = append(book.AddressDetail, entity.AddressDetail{
		ID:           generateUUID(),
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Pincode:      input.Pincode,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		CityTown:     input.CityTown,
		State:        input.State,
		Country:      input.Country,
		AddressType:  addressType,
	})
	last := len(book.AddressDetail) - 1
	if input.IsDefault || last == 0 {
		book.MakeDefault(last)
	}
	book.UpdatedAt = now

	if err := uc.addressRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save address")
	}
	if !user.IsAddress {
		user.IsAddress = true
		user.UpdatedAt = now
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, wrap(err, "Failed to update user")
		}
	}
	return book, nil
}

func (uc *AddressUseCase) Update(ctx context.Context, userID, addressID string, input UpdateAddressInput) (*entity.UserAddress, error) {
	book, err := uc.addressRepo.Get(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Address not found"), "Failed to load addresses")
	}
	i, ok := book.Find(addressID)
	if !ok {
		return nil, errors.NotFoundMessage("Specific address not found")
	}
	addr := book.AddressDetail[i]

	setString(&addr.Name, input.Name)
	setString(&addr.PhoneNumber, input.PhoneNumber)
	setString(&addr.Email, input.Email)
	setString(&addr.Pincode, input.Pincode)
	setString(&addr.AddressLine1, input.AddressLine1)
	setString(&addr.AddressLine2, input.AddressLine2)
	setString(&addr.CityTown, input.CityTown)
	setString(&addr.State, input.State)
	setString(&addr.Country, input.Country)
	if input.AddressType != nil {
		if addr.AddressType, err = normalizeAddressType(*input.AddressType); err != nil {
			return nil, err
		}
	}
	if err := checkContact(addr.PhoneNumber, addr.Pincode); err != nil {
		return nil, err
	}
	book.AddressDetail[i] = addr

	if input.IsDefault != nil {
		if *input.IsDefault {
			book.MakeDefault(i)
		} else if addr.IsDefault && len(book.AddressDetail) > 1 {
			// hand the default to the first other address
			book.MakeDefault(firstOther(i))
		}
	}
	book.UpdatedAt = uc.now()

	if err := uc.addressRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save address")
	}
	return book, nil
}

func firstOther(i int) int {
	if i == 0 {
		return 1
	}
	return 0
}

func (uc *AddressUseCase) Delete(ctx context.Context, userID, addressID string) (*entity.UserAddress, error) {
	book, err := uc.addressRepo.Get(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Address not found"), "Failed to load addresses")
	}
	i, ok := book.Find(addressID)
	if !ok {
		return nil, errors.NotFoundMessage("Specific address not found")
	}
	wasDefault := book.AddressDetail[i].IsDefault
	book.AddressDetail = append(book.AddressDetail[:i], book.AddressDetail[i+1:]...)
	if wasDefault && len(book.AddressDetail) > 0 {
		book.MakeDefault(0)
	}
	now := uc.now()
	book.UpdatedAt = now

	if err := uc.addressRepo.Save(ctx, book); err != nil {
		return nil, wrap(err, "Failed to save address")
	}

	if len(book.AddressDetail) == 0 {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, notFoundAs(err, errors.NotFoundMessage("User not found"), "Failed to load user")
		}
		user.IsAddress = false
		user.UpdatedAt = now
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, wrap(err, "Failed to update user")
		}
	}
	return book, nil
}

func (uc *AddressUseCase) Get(ctx context.Context, userID string) (*entity.UserAddress, error) {
	book, err := uc.addressRepo.Get(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, wrap(err, "Failed to load addresses")
	}
	if book == nil || len(book.AddressDetail) == 0 {
		return nil, errors.NotFoundMessage("No addresses found")
	}
	return book, nil
}
