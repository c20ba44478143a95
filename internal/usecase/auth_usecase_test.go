package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
)

type fixedOTP string

func (f fixedOTP) Generate() (string, error) { return string(f), nil }

type stubTokens struct {
	issued []service.Claims
}

func (s *stubTokens) Issue(claims service.Claims) (string, error) {
	s.issued = append(s.issued, claims)
	return "token-" + claims.Subject(), nil
}

func (s *stubTokens) Verify(token string) (*service.Claims, error) {
	return nil, service.ErrTokenInvalid
}

func newAuth(f *fixture, tokens *stubTokens, clock *time.Time) *AuthUseCase {
	uc := NewAuthUseCase(f.users, f.partners, f.otps, tokens, fixedOTP("123456"), 5*time.Minute, true)
	uc.now = func() time.Time { return *clock }
	return uc
}

func TestSignupRequiresVerifiedOTP(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	clock := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens := &stubTokens{}
	uc := newAuth(f, tokens, &clock)

	input := SignupInput{Name: "Asha", PhoneNumber: "9876543210", Email: "asha@example.com"}
	_, err := uc.Signup(ctx, input)
	requireStatus(t, err, http.StatusForbidden)

	sent, err := uc.SendOTP(ctx, input.PhoneNumber)
	require.NoError(t, err)
	assert.Equal(t, "123456", sent.OTP)

	_, err = uc.Signup(ctx, input)
	requireStatus(t, err, http.StatusForbidden)

	requireStatus(t, uc.VerifyOTP(ctx, input.PhoneNumber, "000000"), http.StatusUnauthorized)
	require.NoError(t, uc.VerifyOTP(ctx, input.PhoneNumber, "123456"))

	result, err := uc.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.Role)
	assert.Equal(t, "token-"+result.User.ID, result.Token)
	assert.True(t, result.User.IsPhoneVerified)

	_, err = f.otps.Get(ctx, input.PhoneNumber)
	requireCode(t, err, "NOT_FOUND")

	_, err = uc.Signup(ctx, input)
	requireStatus(t, err, http.StatusForbidden)
}

func TestSendOTPRejectsBadPhone(t *testing.T) {
	f := newFixture()
	clock := time.Now()
	_, err := newAuth(f, &stubTokens{}, &clock).SendOTP(context.Background(), "12345")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestLoginOTPLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	clock := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	uc := newAuth(f, &stubTokens{}, &clock)
	user := f.user(t, "9876543210")

	_, err := uc.SendOTP(ctx, user.PhoneNumber)
	require.NoError(t, err)

	clock = clock.Add(6 * time.Minute)
	_, err = uc.Login(ctx, user.PhoneNumber, "123456")
	requireStatus(t, err, http.StatusGone)

	_, err = uc.SendOTP(ctx, user.PhoneNumber)
	require.NoError(t, err)
	result, err := uc.Login(ctx, user.PhoneNumber, "123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.Role)

	_, err = uc.Login(ctx, user.PhoneNumber, "123456")
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.Login(ctx, "1111111111", "123456")
	requireStatus(t, err, http.StatusNotFound)
}

func TestLoginBranchesByRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	clock := time.Now()
	tokens := &stubTokens{}
	uc := newAuth(f, tokens, &clock)

	admin := f.user(t, "9000000009")
	admin.Role = entity.RoleAdmin
	require.NoError(t, f.users.Update(ctx, admin))
	_, err := uc.SendOTP(ctx, admin.PhoneNumber)
	require.NoError(t, err)
	result, err := uc.Login(ctx, admin.PhoneNumber, "123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, result.Role)
	assert.Equal(t, admin.ID, tokens.issued[len(tokens.issued)-1].AdminID)

	owner := f.user(t, "9000000002")
	partners := NewPartnerUseCase(f.partners, f.users, f.store, tokens)
	account, err := partners.Signup(ctx, PartnerSignupInput{
		Name: "Shop", PhoneNumber: owner.PhoneNumber, Email: "shop@example.com",
		ShopName: "Shop", PANNumber: "ABCDE1234F", ShopAddress: "MG Road", Pincode: "560001",
	}, imageFile("shop.png"))
	require.NoError(t, err)

	_, err = uc.SendOTP(ctx, owner.PhoneNumber)
	require.NoError(t, err)
	result, err = uc.Login(ctx, owner.PhoneNumber, "123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.Role, "unverified partner still logs in as a user")

	verified, err := partners.Verify(ctx, account.Partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "token-"+account.Partner.ID, verified.Token)
	assert.Equal(t, entity.RolePartner, verified.Role)
	issued := tokens.issued[len(tokens.issued)-1]
	assert.Equal(t, account.Partner.ID, issued.PartnerID)
	assert.Equal(t, owner.PhoneNumber, issued.PhoneNumber)
	_, err = partners.Verify(ctx, account.Partner.ID)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = uc.SendOTP(ctx, owner.PhoneNumber)
	require.NoError(t, err)
	result, err = uc.Login(ctx, owner.PhoneNumber, "123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RolePartner, result.Role)
	claims := tokens.issued[len(tokens.issued)-1]
	assert.Equal(t, account.Partner.ID, claims.PartnerID)
	assert.True(t, claims.IsPartner)
}

func TestPartnerSignupAndProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewPartnerUseCase(f.partners, f.users, f.store, &stubTokens{})

	input := PartnerSignupInput{
		Name: "Shop", PhoneNumber: "9000000002", Email: "shop@example.com",
		ShopName: "Shop", PANNumber: "ABCDE1234F", ShopAddress: "MG Road", Pincode: "560001",
	}
	_, err := uc.Signup(ctx, input, imageFile("shop.png"))
	requireStatus(t, err, http.StatusNotFound)

	f.user(t, input.PhoneNumber)
	account, err := uc.Signup(ctx, input, imageFile("shop.png"))
	require.NoError(t, err)
	assert.True(t, account.Partner.IsProfile)
	assert.Contains(t, account.Partner.ImageShop, cdn+"partner/"+account.Partner.ID+"/")

	_, err = uc.Signup(ctx, input, imageFile("shop.png"))
	requireStatus(t, err, http.StatusForbidden)

	name := "New Name"
	_, err = uc.UpdateProfile(ctx, account.Partner.ID, UpdatePartnerProfileInput{Name: &name}, nil)
	requireStatus(t, err, http.StatusForbidden)

	_, err = uc.Verify(ctx, account.Partner.ID)
	require.NoError(t, err)
	updated, err := uc.UpdateProfile(ctx, account.Partner.ID, UpdatePartnerProfileInput{Name: &name}, imageFile("new.png"))
	require.NoError(t, err)
	assert.Equal(t, name, updated.Partner.Name)
	assert.Equal(t, "MG Road", updated.Profile.ShopAddress)
	f.store.AssertNumberOfCalls(t, "Replace", 1)
}
