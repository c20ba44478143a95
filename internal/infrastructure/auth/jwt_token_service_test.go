package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTTokenService("secret", "nanocart", time.Hour)

	token, err := svc.Issue(service.Claims{PartnerID: "p-1", Role: entity.RolePartner, IsActive: true})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "p-1", claims.PartnerID)
	assert.Equal(t, entity.RolePartner, claims.Role)
	assert.Equal(t, "p-1", claims.Subject())
}

func TestVerifyExpired(t *testing.T) {
	svc := NewJWTTokenService("secret", "nanocart", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(service.Claims{UserID: "u-1", Role: entity.RoleUser})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	other := NewJWTTokenService("other-secret", "nanocart", time.Hour)
	token, err := other.Issue(service.Claims{UserID: "u-1", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = NewJWTTokenService("secret", "nanocart", time.Hour).Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = NewJWTTokenService("secret", "nanocart", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestIssueRejectsUnknownRole(t *testing.T) {
	_, err := NewJWTTokenService("secret", "nanocart", time.Hour).Issue(service.Claims{Role: "Guest"})
	assert.Error(t, err)
}

func TestRandomOTPGeneratorProducesSixDigits(t *testing.T) {
	gen := NewRandomOTPGenerator()
	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}
