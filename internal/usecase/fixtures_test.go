package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nanocart/internal/adapter/repository/memory"
	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/pkg/errors"
)

const cdn = "https://cdn.test/"

// mockStore answers every upload with cdn+key so tests can assert on keys.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	if err := args.Error(1); err != nil {
		return "", err
	}
	return args.String(0) + key, nil
}

func (m *mockStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockStore) Replace(ctx context.Context, oldURL, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, oldURL, key, data, contentType)
	if err := args.Error(1); err != nil {
		return "", err
	}
	return args.String(0) + key, nil
}

func newMockStore() *mockStore {
	s := &mockStore{}
	s.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cdn, nil).Maybe()
	s.On("Delete", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.On("Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cdn, nil).Maybe()
	return s
}

func (m *mockStore) uploadedKeys() []string {
	var keys []string
	for _, c := range m.Calls {
		if c.Method == "Upload" {
			keys = append(keys, c.Arguments.String(1))
		}
	}
	return keys
}

type fixture struct {
	store *mockStore

	users        repository.UserRepository
	partners     repository.PartnerRepository
	otps         repository.OTPRepository
	categories   repository.CategoryRepository
	subs         repository.SubCategoryRepository
	items        repository.ItemRepository
	details      repository.ItemDetailRepository
	filters      repository.FilterRepository
	userReviews  repository.UserReviewRepository
	partReviews  repository.PartnerReviewRepository
	wallets      repository.WalletRepository
	addresses    repository.AddressRepository
	orders       repository.OrderRepository
	tbyb         repository.TBYBRepository
	userCarts    repository.CartRepository
	partnerCarts repository.CartRepository
}

func newFixture() *fixture {
	return &fixture{
		store:        newMockStore(),
		users:        memory.NewUserRepository(),
		partners:     memory.NewPartnerRepository(),
		otps:         memory.NewOTPRepository(),
		categories:   memory.NewCategoryRepository(),
		subs:         memory.NewSubCategoryRepository(),
		items:        memory.NewItemRepository(),
		details:      memory.NewItemDetailRepository(),
		filters:      memory.NewFilterRepository(),
		userReviews:  memory.NewUserReviewRepository(),
		partReviews:  memory.NewPartnerReviewRepository(),
		wallets:      memory.NewWalletRepository(),
		addresses:    memory.NewAddressRepository(),
		orders:       memory.NewOrderRepository(),
		tbyb:         memory.NewTBYBRepository(),
		userCarts:    memory.NewCartRepository(),
		partnerCarts: memory.NewCartRepository(),
	}
}

func (f *fixture) categoryUC() *CategoryUseCase {
	return NewCategoryUseCase(f.categories, f.subs, f.items, f.details, f.store)
}

func (f *fixture) subCategoryUC() *SubCategoryUseCase {
	return NewSubCategoryUseCase(f.subs, f.categories, f.items, f.details, f.store)
}

func (f *fixture) itemUC() *ItemUseCase {
	return NewItemUseCase(f.items, f.categories, f.subs, f.details, f.store)
}

func (f *fixture) itemDetailUC() *ItemDetailUseCase {
	return NewItemDetailUseCase(f.details, f.items, f.store)
}

func (f *fixture) userCartUC() *UserCartUseCase {
	return NewUserCartUseCase(f.userCarts, f.users, f.items, f.details)
}

func pngFile(field, name string) service.File {
	return service.File{FieldName: field, FileName: name, ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
}

func imageFile(name string) *service.File {
	f := pngFile("image", name)
	return &f
}

func floatPtr(v float64) *float64 { return &v }

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, code), "want %s, got %v", code, err)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, errors.StatusOf(err), "got %v", err)
}

// catalog seeds category > subcategory > item and returns the item.
func (f *fixture) catalog(t *testing.T) *entity.Item {
	t.Helper()
	ctx := context.Background()

	category, err := f.categoryUC().Create(ctx, CreateCategoryInput{Name: "shoes"}, imageFile("cat.png"))
	require.NoError(t, err)
	sub, err := f.subCategoryUC().Create(ctx, CreateSubCategoryInput{Name: "running", CategoryID: category.ID}, imageFile("sub.png"))
	require.NoError(t, err)
	item, err := f.itemUC().Create(ctx, CreateItemInput{
		Name:            "Racer",
		MRP:             1000,
		TotalStock:      10,
		DiscountedPrice: floatPtr(800),
		CategoryID:      category.ID,
		SubCategoryID:   sub.ID,
	}, imageFile("item.png"))
	require.NoError(t, err)
	return item
}

// detail attaches a one-color detail with a single M/SKU1 size to item.
func (f *fixture) detail(t *testing.T, item *entity.Item) *entity.ItemDetail {
	t.Helper()
	detail, err := f.itemDetailUC().Create(context.Background(), CreateItemDetailInput{
		ItemID: item.ID,
		ImagesByColor: []ColorBlockInput{
			{Color: "Red", Sizes: []entity.SizeStock{{Size: "M", SKUID: "SKU1", Stock: 10}}},
		},
	}, []service.File{pngFile("red", "front.png")})
	require.NoError(t, err)
	return detail
}

func (f *fixture) user(t *testing.T, phone string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:              generateUUID(),
		Name:            "Asha",
		PhoneNumber:     phone,
		Email:           phone + "@example.com",
		Role:            entity.RoleUser,
		IsPhoneVerified: true,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) partner(t *testing.T, phone string) *entity.Partner {
	t.Helper()
	p := &entity.Partner{ID: generateUUID(), Name: "Shop", PhoneNumber: phone, IsVerified: true, IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, f.partners.Create(context.Background(), p))
	return p
}

func memoryWishlist() repository.WishlistRepository {
	return memory.NewWishlistRepository()
}

func errorStatus(err error) int {
	if err == nil {
		return 0
	}
	return errors.StatusOf(err)
}
