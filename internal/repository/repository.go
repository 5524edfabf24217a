package repository

import (
	"context"
	"strings"
	"time"

	model "artisan-market/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository artisan-market/internal/repository ListingStore,PrincipalStore,EventStore,ComplaintStore

// ListingStore defines the auction listing storage used by the bidding service
type ListingStore interface {
	InsertListing(ctx context.Context, listing model.Listing) error
	GetListing(ctx context.Context, id string) (model.Listing, error)
	FindListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error)
	CountListings(ctx context.Context, filter ListingFilter) (int64, error)
	// AcceptBid appends bid and raises current_amount in one conditional write.
	// It fails with ErrBidConflict when the listing is no longer open or its
	// current amount has moved past bid.Amount - minIncrement.
	AcceptBid(ctx context.Context, id string, bid model.BidEntry, minIncrement float64) (model.Listing, error)
	// SetListingStatus applies change only while the stored status is one of change.From.
	SetListingStatus(ctx context.Context, id string, change StatusChange) (model.Listing, error)
	TopCategories(ctx context.Context, limit int) ([]model.CategoryCount, error)
}

// PrincipalStore keeps registered accounts of every kind
type PrincipalStore interface {
	CreatePrincipal(ctx context.Context, p model.Principal) error
	GetPrincipal(ctx context.Context, id string) (model.Principal, error)
	FindPrincipalByEmail(ctx context.Context, kind model.PrincipalKind, email string) (model.Principal, error)
	ListPrincipals(ctx context.Context, kind model.PrincipalKind) ([]model.Principal, error)
	CountPrincipals(ctx context.Context, kind model.PrincipalKind) (int64, error)
	SetBlocked(ctx context.Context, kind model.PrincipalKind, id string, blocked bool) error
	UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) (model.Principal, error)
}

// CatalogStore keeps products and the per-principal cart and wishlist
type CatalogStore interface {
	InsertProduct(ctx context.Context, p model.Product) error
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	// DecrementStock lowers quantity by qty only if enough stock remains.
	DecrementStock(ctx context.Context, id string, qty int) error
	// IncrementStock compensates a DecrementStock whose checkout could not complete.
	IncrementStock(ctx context.Context, id string, qty int) error
	AddToBasket(ctx context.Context, kind model.BasketKind, owner, productID string) error
	RemoveFromBasket(ctx context.Context, kind model.BasketKind, owner, productID string) error
	GetBasket(ctx context.Context, kind model.BasketKind, owner string) ([]string, error)
	ClearBasket(ctx context.Context, kind model.BasketKind, owner string) error
}

// OrderStore keeps orders materialized from paid checkout sessions
type OrderStore interface {
	// InsertOrder fails with ErrDuplicateOrder when the payment id is already recorded.
	InsertOrder(ctx context.Context, o model.Order) error
	GetOrder(ctx context.Context, id string) (model.Order, error)
	FindOrderByPayment(ctx context.Context, paymentID string) (model.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, at time.Time) (model.Order, error)
}

// EventStore keeps instructor events and their registrations
type EventStore interface {
	InsertEvent(ctx context.Context, e model.Event) error
	GetEvent(ctx context.Context, id string) (model.Event, error)
	FindEvents(ctx context.Context, filter EventFilter) ([]model.Event, error)
	CountEvents(ctx context.Context) (int64, error)
	UpdateEventDetails(ctx context.Context, id string, details model.EventDetails, at time.Time) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	// AddRegistration fails with ErrAlreadyRegistered when reg.UserEmail is already registered.
	AddRegistration(ctx context.Context, id string, reg model.Registration) (model.Event, error)
	// RemoveRegistration fails with ErrNotRegistered when email holds no registration.
	RemoveRegistration(ctx context.Context, id, email string) (model.Event, error)
	// ConfirmPaidRegistration records reg.PaymentID at most once. It completes an
	// unpaid registration of reg.UserEmail or appends reg, and is a no-op when
	// the payment id is already present. A user already holding another paid
	// registration gets ErrAlreadyRegistered.
	ConfirmPaidRegistration(ctx context.Context, id string, reg model.Registration) (model.Event, error)
}

// ComplaintStore keeps complaints filed against principals
type ComplaintStore interface {
	InsertComplaint(ctx context.Context, c model.Complaint) error
	GetComplaint(ctx context.Context, id string) (model.Complaint, error)
	FindComplaints(ctx context.Context, filter ComplaintFilter) ([]model.Complaint, error)
	// SetComplaintStatus applies change only while the stored status is one of change.From.
	SetComplaintStatus(ctx context.Context, id string, change ComplaintStatusChange) (model.Complaint, error)
}

// ListingFilter narrows listing queries; zero fields are ignored
type ListingFilter struct {
	Status    model.ListingStatus
	EndsAfter time.Time
	Creator   string
	// Participant matches listings the identity bid on, or approved listings it created.
	Participant string
}

// StatusChange describes a moderation write
type StatusChange struct {
	To   model.ListingStatus
	From []model.ListingStatus
	By   string
	At   time.Time
}

// ProductFilter narrows catalog queries; zero fields are ignored
type ProductFilter struct {
	SellerEmail string
	Kind        model.ItemKind
}

// EventFilter narrows event queries; zero fields are ignored
type EventFilter struct {
	InstructorID string
	Registrant   string
	Type         model.EventType
	Date         string
	MinFee       *float64
	MaxFee       *float64
	// Term matches name or description, case-insensitively.
	Term string
}

// ComplaintFilter narrows complaint queries; zero fields are ignored
type ComplaintFilter struct {
	Author   string
	Status   model.ComplaintStatus
	Severity model.Severity
}

// ComplaintStatusChange describes an admin decision on a complaint
type ComplaintStatusChange struct {
	To       model.ComplaintStatus
	From     []model.ComplaintStatus
	By       string
	At       time.Time
	Response string
}

// OrderFilter narrows order queries; zero fields are ignored
type OrderFilter struct {
	BuyerEmail  string
	SellerEmail string
}

func (f ListingFilter) matches(l model.Listing) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if !f.EndsAfter.IsZero() && !l.LastDate.After(f.EndsAfter) {
		return false
	}
	if f.Creator != "" && !l.Creator.Is(f.Creator) {
		return false
	}
	if f.Participant != "" {
		owned := l.Creator.Is(f.Participant) && l.Status == model.StatusApproved
		if !owned && !l.HasBidder(f.Participant) {
			return false
		}
	}
	return true
}

func (f ProductFilter) matches(p model.Product) bool {
	if f.SellerEmail != "" && p.SellerEmail != f.SellerEmail {
		return false
	}
	return f.Kind == "" || p.ItemKind() == f.Kind
}

func (f EventFilter) matches(e model.Event) bool {
	if f.InstructorID != "" && e.InstructorID != f.InstructorID {
		return false
	}
	if f.Registrant != "" {
		if _, ok := e.RegistrationOf(f.Registrant); !ok {
			return false
		}
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Date != "" && e.Date != f.Date {
		return false
	}
	if f.MinFee != nil && e.Fee < *f.MinFee {
		return false
	}
	if f.MaxFee != nil && e.Fee > *f.MaxFee {
		return false
	}
	if f.Term != "" {
		term := strings.ToLower(f.Term)
		if !strings.Contains(strings.ToLower(e.Name), term) && !strings.Contains(strings.ToLower(e.Description), term) {
			return false
		}
	}
	return true
}

func (f ComplaintFilter) matches(c model.Complaint) bool {
	if f.Author != "" && !c.Author.Is(f.Author) {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	return f.Severity == "" || c.Severity == f.Severity
}

func (f OrderFilter) matches(o model.Order) bool {
	if f.BuyerEmail != "" && o.BuyerEmail != f.BuyerEmail {
		return false
	}
	if f.SellerEmail != "" && !o.HasSeller(f.SellerEmail) {
		return false
	}
	return true
}
