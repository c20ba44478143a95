package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercentage(t *testing.T) {
	price := 800.0
	assert.Equal(t, 20.0, DiscountPercentage(1000, &price))

	odd := 666.0
	assert.Equal(t, 33.4, DiscountPercentage(1000, &odd))

	assert.Zero(t, DiscountPercentage(1000, nil))
	assert.Zero(t, DiscountPercentage(0, &price))
}

func TestItemPrepareForSave(t *testing.T) {
	price := 450.0
	item := &Item{
		MRP:             500,
		DiscountedPrice: &price,
		Filters:         []ItemFilter{{Key: "fabric", Value: "cotton"}, {Key: "fit", Value: "slim"}},
	}
	item.PrepareForSave()

	assert.Equal(t, 10.0, item.DiscountPercentage)
	assert.Equal(t, []string{"fabric=cotton", "fit=slim"}, item.FilterTags)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 4.0, AverageRating([]float64{4, 5, 3}, 2))
	assert.Equal(t, 4.5, AverageRating([]float64{4, 5}, 2))
	assert.Equal(t, 3.67, AverageRating([]float64{4, 4, 3}, 2))
	assert.Zero(t, AverageRating(nil, 2))
}

func TestItemDetailFindColor(t *testing.T) {
	d := &ItemDetail{ImagesByColor: []ColorVariant{{
		Color: "Red",
		Sizes: []SizeStock{{Size: "M", SKUID: "SKU1", Stock: 10}},
		Images: []ColorImage{{URL: "https://x/red_1.jpg", Priority: 1}},
	}}}

	v, ok := d.FindColor("red", true)
	require.True(t, ok)
	assert.True(t, v.HasSize("M", "SKU1"))
	assert.False(t, v.HasSize("M", "SKU2"))

	_, ok = d.FindColor("red", false)
	assert.False(t, ok)

	assert.Equal(t, []string{"https://x/red_1.jpg"}, d.ImageURLs())
}

func TestUserAddressMakeDefault(t *testing.T) {
	a := &UserAddress{AddressDetail: []AddressDetail{{ID: "a", IsDefault: true}, {ID: "b"}, {ID: "c", IsDefault: true}}}
	i, ok := a.Find("b")
	require.True(t, ok)

	a.MakeDefault(i)
	assert.False(t, a.AddressDetail[0].IsDefault)
	assert.True(t, a.AddressDetail[1].IsDefault)
	assert.False(t, a.AddressDetail[2].IsDefault)
}

func TestTBYBUploadsOn(t *testing.T) {
	day := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	tb := &TBYB{Images: []TBYBImage{
		{UploadedAt: day.Add(-2 * time.Hour)},
		{UploadedAt: day.Add(-20 * time.Hour)},
		{UploadedAt: day.Add(time.Hour)},
	}}
	assert.Equal(t, 2, tb.UploadsOn(day))
}

func TestOTPExpired(t *testing.T) {
	now := time.Now()
	otp := &PhoneOTP{ExpiresAt: now.Add(-time.Second)}
	assert.True(t, otp.Expired(now))
	otp.ExpiresAt = now.Add(time.Minute)
	assert.False(t, otp.Expired(now))
}
