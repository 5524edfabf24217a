package payment

import (
	"context"
	"strings"

	"artisan-market/internal/marketerrors"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_gateway.go -package=payment artisan-market/internal/payment Gateway

// Metadata keys attached to every checkout session
const (
	MetaBuyer    = "buyer"
	MetaKind     = "kind"
	MetaProducts = "products"
	MetaEvent    = "event"

	KindCart  = "cart"
	KindEvent = "event"
)

// LineItem is one product line of a hosted checkout
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
	Image     string
}

// CheckoutRequest describes a hosted checkout to open
type CheckoutRequest struct {
	Items         []LineItem
	CustomerEmail string
	Metadata      map[string]string
}

// Session is the gateway's view of a checkout session
type Session struct {
	ID            string            `json:"session_id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status,omitempty"`
	Paid          bool              `json:"-"`
	AmountTotal   decimal.Decimal   `json:"-"`
	Metadata      map[string]string `json:"-"`
}

// Gateway opens and inspects hosted checkout sessions
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
}

// JoinIDs packs product ids into a metadata value
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// SplitIDs reverses JoinIDs
func SplitIDs(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

// MinorUnits converts a price to the integer amount the gateway charges
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

type disabledGateway struct{}

// Disabled returns a Gateway that refuses every call, for deployments without a payment provider
func Disabled() Gateway { return disabledGateway{} }

func (disabledGateway) CreateCheckoutSession(context.Context, CheckoutRequest) (Session, error) {
	return Session{}, marketerrors.ErrPaymentsDisabled
}

func (disabledGateway) GetSession(context.Context, string) (Session, error) {
	return Session{}, marketerrors.ErrPaymentsDisabled
}
