package marketerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrDuplicatePrincipal = errors.New("email already registered")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDuplicateOrder     = errors.New("order already recorded for payment")
	ErrBidConflict        = errors.New("failed to update bid")
	ErrInvalidTransition  = errors.New("listing status cannot change")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrNotRegistered      = errors.New("not registered for this event")
	ErrComplaintNotFound  = errors.New("complaint not found")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidListing     = errors.New("invalid listing")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrSelfBid            = errors.New("cannot bid on own item")
	ErrListingNotOpen     = errors.New("listing is not open for bidding")
	ErrAuctionRunning     = errors.New("auction has not ended")
	ErrNoBids             = errors.New("no bids found for listing")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrPaymentIncomplete  = errors.New("payment incomplete")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPrincipalBlocked   = errors.New("account is blocked")
	ErrPaymentsDisabled   = errors.New("payments are not configured")
)

// access errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// detailError carries a client-facing message alongside a sentinel.
type detailError struct {
	err    error
	detail string
}

func (e *detailError) Error() string { return e.err.Error() + ": " + e.detail }

func (e *detailError) Unwrap() error { return e.err }

// WithDetail attaches a message that is safe to return to the client.
func WithDetail(err error, detail string) error {
	return &detailError{err: err, detail: detail}
}

// Detail returns the client-facing message attached anywhere in err's chain, or "".
func Detail(err error) string {
	var d *detailError
	if errors.As(err, &d) {
		return d.detail
	}
	return ""
}
