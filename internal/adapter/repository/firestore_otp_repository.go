package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const phoneOTPCollection = "phone_otps"

type firestoreOTPRepository struct {
	client *firestore.Client
}

// NewFirestoreOTPRepository stores one document per phone number.
func NewFirestoreOTPRepository(client *firestore.Client) repository.OTPRepository {
	return &firestoreOTPRepository{
		client: client,
	}
}

func (r *firestoreOTPRepository) Upsert(ctx context.Context, otp *entity.PhoneOTP) error {
	_, err := r.client.Collection(phoneOTPCollection).Doc(otp.PhoneNumber).Set(ctx, otp)
	return err
}

func (r *firestoreOTPRepository) Get(ctx context.Context, phone string) (*entity.PhoneOTP, error) {
	return getDoc[entity.PhoneOTP](ctx, r.client.Collection(phoneOTPCollection).Doc(phone), "OTP")
}

func (r *firestoreOTPRepository) MarkVerified(ctx context.Context, phone string) error {
	return updateFields(ctx, r.client.Collection(phoneOTPCollection).Doc(phone), "OTP", []firestore.Update{
		{Path: "isVerified", Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreOTPRepository) Delete(ctx context.Context, phone string) error {
	_, err := r.client.Collection(phoneOTPCollection).Doc(phone).Delete(ctx)
	return err
}
