package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/domain/service"
	mockRepo "homepros/internal/mocks/repository"
	mockSvc "homepros/internal/mocks/service"
	"homepros/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingServiceFixtures struct {
	service      usecase.ListingUsecase
	listingRepo  *mockRepo.MockListingRepository
	categoryRepo *mockRepo.MockCategoryRepository
	photoRepo    *mockRepo.MockPhotoRepository
	txManager    *mockRepo.MockTransactionManager
	mediaStorage *mockSvc.MockMediaStorage
	publisher    *mockSvc.MockEventPublisher
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	listingRepo := mockRepo.NewMockListingRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	photoRepo := mockRepo.NewMockPhotoRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewListingService(ListingServiceParams{
		ListingRepo:  listingRepo,
		CategoryRepo: categoryRepo,
		PhotoRepo:    photoRepo,
		TxManager:    txManager,
		MediaStorage: mediaStorage,
		Publisher:    publisher,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return listingServiceFixtures{
		service:      svc,
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		photoRepo:    photoRepo,
		txManager:    txManager,
		mediaStorage: mediaStorage,
		publisher:    publisher,
	}
}

func ownedListing(id int64, ownerID uuid.UUID, tier entity.Tier) *entity.Listing {
	return &entity.Listing{
		ID:      id,
		Name:    "Ace Plumbing",
		Claimed: true,
		OwnerID: &ownerID,
		Tier:    tier,
	}
}

func TestListingService_ClaimListing_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		ClaimListing(ctx, int64(5), userID).
		Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Run(func(_ context.Context, event *service.ListingEvent) {
			assert.Equal(t, service.EventListingClaimed, event.Type)
			assert.Equal(t, int64(5), event.ListingID)
			assert.Equal(t, userID.String(), event.OwnerID)
		}).
		Return(nil)

	err := fx.service.ClaimListing(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
}

func TestListingService_ClaimListing_Unauthenticated(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()

	err := fx.service.ClaimListing(ctx, usecase.Actor{}, 5)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
	fx.listingRepo.AssertNotCalled(t, "ClaimListing")
}

func TestListingService_ClaimListing_AlreadyClaimed(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		ClaimListing(ctx, int64(5), userID).
		Return(repository.ErrListingAlreadyClaimed)

	err := fx.service.ClaimListing(ctx, usecase.Actor{UserID: userID}, 5)
	assert.Equal(t, domainerrors.ErrListingAlreadyClaimed, err)
	fx.publisher.AssertNotCalled(t, "PublishListingEvent")
}

func TestListingService_ClaimListing_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		ClaimListing(ctx, int64(404), userID).
		Return(repository.ErrListingNotFound)

	err := fx.service.ClaimListing(ctx, usecase.Actor{UserID: userID}, 404)
	assert.Equal(t, domainerrors.ErrListingNotFound, err)
}

func TestListingService_ClaimListing_PublishFailureIgnored(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		ClaimListing(ctx, int64(5), userID).
		Return(nil)
	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.ClaimListing(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
}

func TestListingService_UpdateListing_ProfileOnly(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	description := "Family owned since 1998"

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierBasic), nil)
	fx.listingRepo.EXPECT().
		UpdateProfile(ctx, int64(5), repository.ProfileUpdate{Description: &description}).
		Return(nil)

	err := fx.service.UpdateListing(ctx, usecase.Actor{UserID: userID}, 5, usecase.ProfileUpdateInput{
		Description: &description,
	})
	require.NoError(t, err)
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestListingService_UpdateListing_NotOwner(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, ownerID, entity.TierBasic), nil)

	err := fx.service.UpdateListing(ctx, usecase.Actor{UserID: otherID}, 5, usecase.ProfileUpdateInput{})
	assert.Equal(t, domainerrors.ErrNotListingOwner, err)
}

func TestListingService_UpdateListing_PrimarySwap(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	primaryID := int64(9)

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)

	txListingRepo := mockRepo.NewMockListingRepository(t)
	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewListingRepository().Return(txListingRepo)
	factory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)

	txListingRepo.EXPECT().
		UpdateProfile(ctx, int64(5), repository.ProfileUpdate{}).
		Return(nil)
	txCategoryRepo.EXPECT().
		ClearPrimaryService(ctx, int64(5)).
		Return(nil)
	txCategoryRepo.EXPECT().
		SetPrimaryService(ctx, int64(5), primaryID).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.UpdateListing(ctx, usecase.Actor{UserID: userID}, 5, usecase.ProfileUpdateInput{
		PrimaryServiceID: &primaryID,
	})
	require.NoError(t, err)
}

func TestListingService_UpdateListing_PrimarySwapUnknownService(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	primaryID := int64(9)

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(repository.ErrServiceNotFound)

	err := fx.service.UpdateListing(ctx, usecase.Actor{UserID: userID}, 5, usecase.ProfileUpdateInput{
		PrimaryServiceID: &primaryID,
	})
	assert.Equal(t, domainerrors.ErrServiceNotFound, err)
}

func TestListingService_AddServices_RequiresPro(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierBasic), nil)

	err := fx.service.AddServices(ctx, usecase.Actor{UserID: userID}, 5, []int64{2, 3})
	assert.Equal(t, domainerrors.ErrProRequired, err)
	fx.categoryRepo.AssertNotCalled(t, "AddListingServices")
}

func TestListingService_AddServices_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)
	fx.categoryRepo.EXPECT().
		AddListingServices(ctx, int64(5), []int64{2, 3}).
		Return(nil)

	err := fx.service.AddServices(ctx, usecase.Actor{UserID: userID}, 5, []int64{2, 3})
	require.NoError(t, err)
}

func TestListingService_RemoveService_PrimaryLocked(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)
	fx.categoryRepo.EXPECT().
		FindListingService(ctx, int64(5), int64(2)).
		Return(&entity.ListingService{ListingID: 5, ServiceID: 2, IsPrimary: true}, nil)

	err := fx.service.RemoveService(ctx, usecase.Actor{UserID: userID}, 5, 2)
	assert.Equal(t, domainerrors.ErrPrimaryServiceLocked, err)
	fx.categoryRepo.AssertNotCalled(t, "RemoveListingService")
}

func TestListingService_RemoveService_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)
	fx.categoryRepo.EXPECT().
		FindListingService(ctx, int64(5), int64(2)).
		Return(&entity.ListingService{ListingID: 5, ServiceID: 2}, nil)
	fx.categoryRepo.EXPECT().
		RemoveListingService(ctx, int64(5), int64(2)).
		Return(nil)

	err := fx.service.RemoveService(ctx, usecase.Actor{UserID: userID}, 5, 2)
	require.NoError(t, err)
}

func TestListingService_AddPhoto_RequiresPro(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierBasic), nil)

	photo, err := fx.service.AddPhoto(ctx, usecase.Actor{UserID: userID}, 5, "https://cdn.example.com/p.jpg")
	assert.Nil(t, photo)
	assert.Equal(t, domainerrors.ErrProRequired, err)
}

func TestListingService_AddPhoto_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)
	fx.photoRepo.EXPECT().
		CreatePhoto(ctx, mock.AnythingOfType("*entity.Photo")).
		Run(func(_ context.Context, photo *entity.Photo) {
			photo.ID = 42
		}).
		Return(nil)

	photo, err := fx.service.AddPhoto(ctx, usecase.Actor{UserID: userID}, 5, "https://cdn.example.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(42), photo.ID)
	assert.Equal(t, int64(5), photo.ListingID)
	assert.Equal(t, "https://cdn.example.com/p.jpg", photo.PhotoURL)
}

func TestListingService_RemovePhoto_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierPro), nil)
	fx.photoRepo.EXPECT().
		DeletePhoto(ctx, int64(5), int64(42)).
		Return(repository.ErrPhotoNotFound)

	err := fx.service.RemovePhoto(ctx, usecase.Actor{UserID: userID}, 5, 42)
	assert.Equal(t, domainerrors.ErrPhotoNotFound, err)
}

func TestListingService_UploadMedia_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte("fake-image-bytes")

	fx.mediaStorage.EXPECT().
		Upload(ctx, "logo.png", "image/png", data).
		Return("https://cdn.example.com/uploads/logo.png", nil)

	url, err := fx.service.UploadMedia(ctx, usecase.Actor{UserID: userID}, "logo.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/logo.png", url)
}

func TestListingService_UploadMedia_StorageError(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.mediaStorage.EXPECT().
		Upload(ctx, "logo.png", "image/png", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	url, err := fx.service.UploadMedia(ctx, usecase.Actor{UserID: userID}, "logo.png", "image/png", []byte{1})
	assert.Empty(t, url)
	assert.Equal(t, domainerrors.ErrUploadFailed, err)
}

func TestListingService_UploadMedia_Unauthenticated(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()

	url, err := fx.service.UploadMedia(ctx, usecase.Actor{}, "logo.png", "image/png", []byte{1})
	assert.Empty(t, url)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
	fx.mediaStorage.AssertNotCalled(t, "Upload")
}
