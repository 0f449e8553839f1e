package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type subscriptionServiceFixtures struct {
	service        usecase.SubscriptionUsecase
	listingRepo    *mockRepo.MockListingRepository
	txManager      *mockRepo.MockTransactionManager
	billingGateway *mockSvc.MockBillingGateway
	qrcodeService  *mockSvc.MockQRCodeService
	publisher      *mockSvc.MockEventPublisher
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	listingRepo := mockRepo.NewMockListingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	billingGateway := mockSvc.NewMockBillingGateway(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		ListingRepo:    listingRepo,
		TxManager:      txManager,
		BillingGateway: billingGateway,
		QRCodeService:  qrcodeService,
		Publisher:      publisher,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return subscriptionServiceFixtures{
		service:        svc,
		listingRepo:    listingRepo,
		txManager:      txManager,
		billingGateway: billingGateway,
		qrcodeService:  qrcodeService,
		publisher:      publisher,
	}
}

func subscribedListing(id int64, ownerID uuid.UUID, tier entity.Tier, subscriptionID string) *entity.Listing {
	listing := ownedListing(id, ownerID, tier)
	listing.StripeCustomerID = strPtr("cus_test")
	listing.StripeSubscriptionID = &subscriptionID

	return listing
}

func TestSubscriptionService_Reconcile_NoSubscriptionRef(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierBasic), nil)

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.TierBasic, status.Status)
	assert.Empty(t, status.SubscriptionID)
	fx.billingGateway.AssertNotCalled(t, "GetSubscription")
}

func TestSubscriptionService_Reconcile_ProviderUnreachable(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	endDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	listing := subscribedListing(5, userID, entity.TierPro, "sub_test")
	listing.SubscriptionEnd = &endDate

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(listing, nil)
	fx.billingGateway.EXPECT().
		GetSubscription(ctx, "sub_test").
		Return(nil, errors.New("stripe timeout"))

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, status.Status)
	assert.Equal(t, "sub_test", status.SubscriptionID)
	assert.Equal(t, &endDate, status.EndDate)
	fx.listingRepo.AssertNotCalled(t, "UpdateSubscriptionState")
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestSubscriptionService_Reconcile_Upgrade(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	endDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierBasic, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		GetSubscription(ctx, "sub_test").
		Return(&service.BillingSubscription{
			ID:               "sub_test",
			Status:           "active",
			CurrentPeriodEnd: &endDate,
		}, nil)
	fx.listingRepo.EXPECT().
		UpdateSubscriptionState(ctx, int64(5), entity.TierPro, &endDate).
		Return(nil)
	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Run(func(_ context.Context, event *service.ListingEvent) {
			assert.Equal(t, service.EventSubscriptionUpgraded, event.Type)
			assert.Equal(t, string(entity.TierPro), event.Tier)
		}).
		Return(nil)

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, status.Status)
	assert.Equal(t, &endDate, status.EndDate)
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestSubscriptionService_Reconcile_DowngradeCascade(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	endDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierPro, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		GetSubscription(ctx, "sub_test").
		Return(&service.BillingSubscription{
			ID:               "sub_test",
			Status:           "canceled",
			CurrentPeriodEnd: &endDate,
		}, nil)

	txListingRepo := mockRepo.NewMockListingRepository(t)
	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	txPhotoRepo := mockRepo.NewMockPhotoRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewListingRepository().Return(txListingRepo)
	factory.EXPECT().NewPhotoRepository().Return(txPhotoRepo)
	factory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)

	txListingRepo.EXPECT().
		UpdateSubscriptionState(ctx, int64(5), entity.TierBasic, &endDate).
		Return(nil)
	txPhotoRepo.EXPECT().
		DeletePhotosByListing(ctx, int64(5)).
		Return(nil)
	txCategoryRepo.EXPECT().
		DeleteNonPrimaryServices(ctx, int64(5)).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Run(func(_ context.Context, event *service.ListingEvent) {
			assert.Equal(t, service.EventSubscriptionDowngraded, event.Type)
		}).
		Return(nil)

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.TierBasic, status.Status)
	fx.listingRepo.AssertNotCalled(t, "UpdateSubscriptionState")
}

func TestSubscriptionService_Reconcile_SameTierNoWrite(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	endDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierPro, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		GetSubscription(ctx, "sub_test").
		Return(&service.BillingSubscription{
			ID:               "sub_test",
			Status:           "trialing",
			CurrentPeriodEnd: &endDate,
		}, nil)

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, status.Status)
	fx.listingRepo.AssertNotCalled(t, "UpdateSubscriptionState")
	fx.txManager.AssertNotCalled(t, "Execute")
	fx.publisher.AssertNotCalled(t, "PublishListingEvent")
}

func TestSubscriptionService_Reconcile_DowngradeTxFailure(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierPro, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		GetSubscription(ctx, "sub_test").
		Return(&service.BillingSubscription{ID: "sub_test", Status: "canceled"}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock detected"))

	status, err := fx.service.ReconcileSubscription(ctx, usecase.Actor{UserID: userID}, 5)
	assert.Nil(t, status)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "downgrade cascade failed")
}

func TestSubscriptionService_StartUpgradeCheckout_ExistingCustomer(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierBasic, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_test", int64(5), "https://nemohomepros.com/dashboard").
		Return("https://checkout.stripe.com/c/pay_123", nil)

	url, err := fx.service.StartUpgradeCheckout(ctx, usecase.Actor{UserID: userID, Email: "owner@example.com"}, 5, "https://nemohomepros.com/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay_123", url)
	fx.billingGateway.AssertNotCalled(t, "CreateCustomer")
}

func TestSubscriptionService_StartUpgradeCheckout_LazyCustomerCreation(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(ownedListing(5, userID, entity.TierBasic), nil)
	fx.billingGateway.EXPECT().
		CreateCustomer(ctx, "owner@example.com", int64(5), userID).
		Return("cus_new", nil)
	fx.listingRepo.EXPECT().
		SetBillingCustomer(ctx, int64(5), "cus_new").
		Return(nil)
	fx.billingGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_new", int64(5), "https://nemohomepros.com/dashboard").
		Return("https://checkout.stripe.com/c/pay_456", nil)

	url, err := fx.service.StartUpgradeCheckout(ctx, usecase.Actor{UserID: userID, Email: "owner@example.com"}, 5, "https://nemohomepros.com/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay_456", url)
}

func TestSubscriptionService_StartUpgradeCheckout_GatewayError(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierBasic, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_test", int64(5), "https://nemohomepros.com/dashboard").
		Return("", errors.New("stripe unavailable"))

	url, err := fx.service.StartUpgradeCheckout(ctx, usecase.Actor{UserID: userID}, 5, "https://nemohomepros.com/dashboard")
	assert.Empty(t, url)
	assert.Equal(t, domainerrors.ErrBillingUnavailable, err)
}

func TestSubscriptionService_UpgradeCheckoutQR(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(subscribedListing(5, userID, entity.TierBasic, "sub_test"), nil)
	fx.billingGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_test", int64(5), "https://nemohomepros.com/dashboard").
		Return("https://checkout.stripe.com/c/pay_123", nil)
	fx.qrcodeService.EXPECT().
		GenerateCheckoutQR("https://checkout.stripe.com/c/pay_123").
		Return(png, nil)

	result, err := fx.service.UpgradeCheckoutQR(ctx, usecase.Actor{UserID: userID}, 5, "https://nemohomepros.com/dashboard")
	require.NoError(t, err)
	assert.Equal(t, png, result)
}
