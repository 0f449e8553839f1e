// Package billing implements the BillingGateway against the Stripe API.
package billing

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"homepros/config"
	"homepros/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const defaultRequestTimeout = 15 * time.Second

type stripeGateway struct {
	api            *client.API
	logger         *slog.Logger
	productName    string
	productDesc    string
	currency       string
	amountCents    int64
	requestTimeout time.Duration
}

// NewStripeGateway builds a BillingGateway over the configured Stripe account.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.BillingGateway, error) {
	stripeCfg := cfg.Stripe
	if stripeCfg == nil || stripeCfg.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	timeout := stripeCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	api := &client.API{}
	api.Init(stripeCfg.SecretKey, nil)

	return &stripeGateway{
		api:            api,
		logger:         logger,
		productName:    stripeCfg.ProductName,
		productDesc:    stripeCfg.ProductDescription,
		currency:       stripeCfg.Currency,
		amountCents:    stripeCfg.MonthlyAmountCents,
		requestTimeout: timeout,
	}, nil
}

// CreateCustomer registers a billing customer keyed back to the listing and
// its owner through metadata.
func (g *stripeGateway) CreateCustomer(ctx context.Context, email string, listingID int64, userID uuid.UUID) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("listing_id", strconv.FormatInt(listingID, 10))
	params.AddMetadata("user_id", userID.String())

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create stripe customer")
	}

	g.logger.Info("Stripe customer created",
		slog.String("customer_id", customer.ID),
		slog.Int64("listing_id", listingID),
	)

	return customer.ID, nil
}

// CreateCheckoutSession opens a hosted checkout for the monthly pro
// subscription and returns its URL.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, customerID string, listingID int64, returnURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(g.productName),
						Description: stripe.String(g.productDesc),
					},
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
					},
					UnitAmount: stripe.Int64(g.amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(returnURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(returnURL),
	}
	params.Context = ctx
	params.AddMetadata("listing_id", strconv.FormatInt(listingID, 10))

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create stripe checkout session")
	}

	g.logger.Info("Stripe checkout session created",
		slog.String("session_id", session.ID),
		slog.Int64("listing_id", listingID),
	)

	return session.URL, nil
}

// GetSubscription fetches the provider-side state of a subscription.
func (g *stripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (*service.BillingSubscription, error) {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, errors.Wrap(err, "get stripe subscription")
	}

	var periodEnd *time.Time
	if sub.CurrentPeriodEnd > 0 {
		end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		periodEnd = &end
	}

	return &service.BillingSubscription{
		ID:               sub.ID,
		Status:           string(sub.Status),
		CurrentPeriodEnd: periodEnd,
	}, nil
}
