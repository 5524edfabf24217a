package payment

import (
	"context"
	"errors"
	"fmt"

	"artisan-market/utils"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrStripeClientInitFailed = errors.New("failed to initialize Stripe client")

// StripeConfig holds the checkout settings
type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Currency   string
}

// StripeGateway opens hosted checkout sessions on Stripe
type StripeGateway struct {
	client *client.API
	cfg    StripeConfig
}

// NewStripeGateway creates a Stripe backed Gateway
func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, ErrStripeClientInitFailed
	}
	sc := client.New(cfg.SecretKey, nil)
	if sc == nil {
		return nil, ErrStripeClientInitFailed
	}
	utils.Info("Stripe client initialized", map[string]any{"currency": cfg.Currency})
	return &StripeGateway{client: sc, cfg: cfg}, nil
}

// CreateCheckoutSession opens a payment-mode checkout with one line per item
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	for _, item := range req.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			product.Images = []*string{stripe.String(item.Image)}
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.cfg.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(MinorUnits(item.UnitPrice)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	cs, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, fmt.Errorf("payment: create checkout session: %w", err)
	}
	return fromStripe(cs), nil
}

// GetSession fetches a checkout session by id
func (g *StripeGateway) GetSession(ctx context.Context, id string) (Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	cs, err := g.client.CheckoutSessions.Get(id, params)
	if err != nil {
		return Session{}, fmt.Errorf("payment: get checkout session %s: %w", id, err)
	}
	return fromStripe(cs), nil
}

func fromStripe(cs *stripe.CheckoutSession) Session {
	return Session{
		ID:            cs.ID,
		URL:           cs.URL,
		PaymentStatus: string(cs.PaymentStatus),
		Paid:          cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   decimal.New(cs.AmountTotal, -2),
		Metadata:      cs.Metadata,
	}
}
