package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
)

const (
	partnersCollection        = "partners"
	partnerProfilesCollection = "partner_profiles"
)

type firestorePartnerRepository struct {
	client *firestore.Client
}

func NewFirestorePartnerRepository(client *firestore.Client) repository.PartnerRepository {
	return &firestorePartnerRepository{
		client: client,
	}
}

func (r *firestorePartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	_, err := r.client.Collection(partnersCollection).Doc(partner.ID).Set(ctx, partner)
	return err
}

func (r *firestorePartnerRepository) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	return getDoc[entity.Partner](ctx, r.client.Collection(partnersCollection).Doc(id), "Partner")
}

func (r *firestorePartnerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Partner, error) {
	query := r.client.Collection(partnersCollection).Where("phoneNumber", "==", phone)
	return firstDoc[entity.Partner](ctx, query, "Partner")
}

func (r *firestorePartnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	partner.UpdatedAt = time.Now()
	_, err := r.client.Collection(partnersCollection).Doc(partner.ID).Set(ctx, partner)
	return err
}

// Profiles are keyed by partner id, so each partner has at most one.
func (r *firestorePartnerRepository) CreateProfile(ctx context.Context, profile *entity.PartnerProfile) error {
	_, err := r.client.Collection(partnerProfilesCollection).Doc(profile.PartnerID).Set(ctx, profile)
	return err
}

func (r *firestorePartnerRepository) GetProfile(ctx context.Context, partnerID string) (*entity.PartnerProfile, error) {
	return getDoc[entity.PartnerProfile](ctx, r.client.Collection(partnerProfilesCollection).Doc(partnerID), "Partner profile")
}

func (r *firestorePartnerRepository) UpdateProfile(ctx context.Context, profile *entity.PartnerProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.client.Collection(partnerProfilesCollection).Doc(profile.PartnerID).Set(ctx, profile)
	return err
}
