package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of every store.
// Conditional writes check their predicate and mutate under one lock.
type MemoryRepo struct {
	mu         sync.RWMutex
	listings   map[string]model.Listing   // key: listingID
	principals map[string]model.Principal // key: principalID
	products   map[string]model.Product   // key: productID
	baskets    map[string][]string        // key: BasketID(kind, owner) -> productIDs
	orders     map[string]model.Order     // key: orderID
	events     map[string]model.Event     // key: eventID
	complaints map[string]model.Complaint // key: complaintID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:   make(map[string]model.Listing),
		principals: make(map[string]model.Principal),
		products:   make(map[string]model.Product),
		baskets:    make(map[string][]string),
		orders:     make(map[string]model.Order),
		events:     make(map[string]model.Event),
		complaints: make(map[string]model.Complaint),
	}
}

var (
	_ ListingStore   = (*MemoryRepo)(nil)
	_ PrincipalStore = (*MemoryRepo)(nil)
	_ CatalogStore   = (*MemoryRepo)(nil)
	_ OrderStore     = (*MemoryRepo)(nil)
	_ EventStore     = (*MemoryRepo)(nil)
	_ ComplaintStore = (*MemoryRepo)(nil)
)

func cloneListing(l model.Listing) model.Listing {
	l.Bids = append([]model.BidEntry{}, l.Bids...)
	return l
}

func cloneEvent(e model.Event) model.Event {
	e.Registrations = append([]model.Registration{}, e.Registrations...)
	if e.UpdatedAt != nil {
		at := *e.UpdatedAt
		e.UpdatedAt = &at
	}
	return e
}

func cloneComplaint(c model.Complaint) model.Complaint {
	if c.UpdatedAt != nil {
		at := *c.UpdatedAt
		c.UpdatedAt = &at
	}
	return c
}

func cloneOrder(o model.Order) model.Order {
	o.Items = append([]model.OrderItem{}, o.Items...)
	if o.UpdatedAt != nil {
		at := *o.UpdatedAt
		o.UpdatedAt = &at
	}
	return o
}

// InsertListing stores a new listing
func (r *MemoryRepo) InsertListing(_ context.Context, listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ID]; exists {
		return fmt.Errorf("insert listing %s: duplicate id", listing.ID)
	}
	r.listings[listing.ID] = cloneListing(listing)
	return nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(_ context.Context, id string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return cloneListing(l), nil
}

// FindListings returns listings matching filter, newest first
func (r *MemoryRepo) FindListings(_ context.Context, filter ListingFilter) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, 0)
	for _, l := range r.listings {
		if filter.matches(l) {
			out = append(out, cloneListing(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountListings counts listings matching filter
func (r *MemoryRepo) CountListings(_ context.Context, filter ListingFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, l := range r.listings {
		if filter.matches(l) {
			n++
		}
	}
	return n, nil
}

// AcceptBid records bid if the listing still admits it
func (r *MemoryRepo) AcceptBid(_ context.Context, id string, bid model.BidEntry, minIncrement float64) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("accept bid on listing %s: %w", id, marketerrors.ErrBidConflict)
	}
	if !l.Open(bid.Timestamp) || l.MinIncrement != minIncrement ||
		l.CurrentAmount > model.BidThreshold(bid.Amount, minIncrement) {
		return model.Listing{}, fmt.Errorf("accept bid on listing %s: %w", id, marketerrors.ErrBidConflict)
	}

	l.CurrentAmount = bid.Amount
	l.Bids = append(slices.Clip(l.Bids), bid)
	r.listings[id] = l
	return cloneListing(l), nil
}

// SetListingStatus moves a listing to change.To when its status is in change.From
func (r *MemoryRepo) SetListingStatus(_ context.Context, id string, change StatusChange) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("set status of listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	if !slices.Contains(change.From, l.Status) {
		return model.Listing{}, fmt.Errorf("set status of listing %s from %s to %s: %w", id, l.Status, change.To, marketerrors.ErrInvalidTransition)
	}

	at := change.At
	l.Status = change.To
	l.UpdatedAt = &at
	l.UpdatedBy = change.By
	r.listings[id] = l
	return cloneListing(l), nil
}

// TopCategories ranks categories by approved listing count
func (r *MemoryRepo) TopCategories(_ context.Context, limit int) ([]model.CategoryCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, l := range r.listings {
		if l.Status == model.StatusApproved {
			counts[l.Category]++
		}
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, model.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CreatePrincipal registers an account; email is unique per kind
func (r *MemoryRepo) CreatePrincipal(_ context.Context, p model.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.principals {
		if existing.Kind == p.Kind && existing.Email == p.Email {
			return fmt.Errorf("create %s %s: %w", p.Kind, p.Email, marketerrors.ErrDuplicatePrincipal)
		}
	}
	r.principals[p.ID] = p
	return nil
}

// GetPrincipal returns an account by id
func (r *MemoryRepo) GetPrincipal(_ context.Context, id string) (model.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.principals[id]
	if !ok {
		return model.Principal{}, fmt.Errorf("get principal %s: %w", id, marketerrors.ErrPrincipalNotFound)
	}
	return p, nil
}

// FindPrincipalByEmail returns the account of kind registered with email
func (r *MemoryRepo) FindPrincipalByEmail(_ context.Context, kind model.PrincipalKind, email string) (model.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.principals {
		if p.Kind == kind && p.Email == email {
			return p, nil
		}
	}
	return model.Principal{}, fmt.Errorf("find %s %s: %w", kind, email, marketerrors.ErrPrincipalNotFound)
}

// ListPrincipals returns all accounts of kind ordered by creation time
func (r *MemoryRepo) ListPrincipals(_ context.Context, kind model.PrincipalKind) ([]model.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Principal, 0)
	for _, p := range r.principals {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// CountPrincipals counts accounts of kind; an empty kind counts all
func (r *MemoryRepo) CountPrincipals(_ context.Context, kind model.PrincipalKind) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, p := range r.principals {
		if kind == "" || p.Kind == kind {
			n++
		}
	}
	return n, nil
}

// SetBlocked bans or unbans an account
func (r *MemoryRepo) SetBlocked(_ context.Context, kind model.PrincipalKind, id string, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.principals[id]
	if !ok || p.Kind != kind {
		return fmt.Errorf("set blocked on %s %s: %w", kind, id, marketerrors.ErrPrincipalNotFound)
	}
	p.Blocked = blocked
	r.principals[id] = p
	return nil
}

// UpdateProfile applies update to the account with id
func (r *MemoryRepo) UpdateProfile(_ context.Context, id string, update model.ProfileUpdate) (model.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.principals[id]
	if !ok {
		return model.Principal{}, fmt.Errorf("update profile %s: %w", id, marketerrors.ErrPrincipalNotFound)
	}
	p = update.Apply(p)
	r.principals[id] = p
	return p, nil
}

// InsertProduct stores a new product
func (r *MemoryRepo) InsertProduct(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

// GetProduct returns a product by id
func (r *MemoryRepo) GetProduct(_ context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, marketerrors.ErrProductNotFound)
	}
	return p, nil
}

// ListProducts returns catalog entries matching filter, newest first
func (r *MemoryRepo) ListProducts(_ context.Context, filter ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0)
	for _, p := range r.products {
		if filter.matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountProducts counts catalog entries
func (r *MemoryRepo) CountProducts(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// DecrementStock lowers a product's quantity if enough remains
func (r *MemoryRepo) DecrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("decrement stock of %s: %w", id, marketerrors.ErrProductNotFound)
	}
	if p.Quantity < qty {
		return fmt.Errorf("decrement stock of %s: %w", id, marketerrors.ErrOutOfStock)
	}
	p.Quantity -= qty
	r.products[id] = p
	return nil
}

// IncrementStock returns qty units to a product, undoing a DecrementStock
func (r *MemoryRepo) IncrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("increment stock of %s: %w", id, marketerrors.ErrProductNotFound)
	}
	p.Quantity += qty
	r.products[id] = p
	return nil
}

// AddToBasket adds productID to the basket once
func (r *MemoryRepo) AddToBasket(_ context.Context, kind model.BasketKind, owner, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.BasketID(kind, owner)
	if slices.Contains(r.baskets[key], productID) {
		return nil
	}
	r.baskets[key] = append(r.baskets[key], productID)
	return nil
}

// RemoveFromBasket drops productID from the basket
func (r *MemoryRepo) RemoveFromBasket(_ context.Context, kind model.BasketKind, owner, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.BasketID(kind, owner)
	r.baskets[key] = slices.DeleteFunc(r.baskets[key], func(id string) bool { return id == productID })
	return nil
}

// GetBasket returns the product ids in the basket
func (r *MemoryRepo) GetBasket(_ context.Context, kind model.BasketKind, owner string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.baskets[model.BasketID(kind, owner)]...), nil
}

// ClearBasket empties the basket
func (r *MemoryRepo) ClearBasket(_ context.Context, kind model.BasketKind, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.baskets, model.BasketID(kind, owner))
	return nil
}

// InsertOrder stores an order; payment ids are unique
func (r *MemoryRepo) InsertOrder(_ context.Context, o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.PaymentID == o.PaymentID {
			return fmt.Errorf("insert order for payment %s: %w", o.PaymentID, marketerrors.ErrDuplicateOrder)
		}
	}
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

// GetOrder returns an order by id
func (r *MemoryRepo) GetOrder(_ context.Context, id string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", id, marketerrors.ErrOrderNotFound)
	}
	return cloneOrder(o), nil
}

// FindOrderByPayment returns the order materialized from paymentID
func (r *MemoryRepo) FindOrderByPayment(_ context.Context, paymentID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.PaymentID == paymentID {
			return cloneOrder(o), nil
		}
	}
	return model.Order{}, fmt.Errorf("find order for payment %s: %w", paymentID, marketerrors.ErrOrderNotFound)
}

// ListOrders returns orders matching filter, newest first
func (r *MemoryRepo) ListOrders(_ context.Context, filter OrderFilter) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if filter.matches(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountOrders counts all orders
func (r *MemoryRepo) CountOrders(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// UpdateOrderStatus sets the fulfilment status of an order
func (r *MemoryRepo) UpdateOrderStatus(_ context.Context, id string, status model.OrderStatus, at time.Time) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return model.Order{}, fmt.Errorf("update order %s: %w", id, marketerrors.ErrOrderNotFound)
	}
	o.Status = status
	o.UpdatedAt = &at
	r.orders[id] = o
	return cloneOrder(o), nil
}

// InsertEvent stores a new event
func (r *MemoryRepo) InsertEvent(_ context.Context, e model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[e.ID]; exists {
		return fmt.Errorf("insert event %s: duplicate id", e.ID)
	}
	r.events[e.ID] = cloneEvent(e)
	return nil
}

// GetEvent returns an event by id
func (r *MemoryRepo) GetEvent(_ context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("get event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	return cloneEvent(e), nil
}

// FindEvents returns events matching filter, newest first
func (r *MemoryRepo) FindEvents(_ context.Context, filter EventFilter) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, 0)
	for _, e := range r.events {
		if filter.matches(e) {
			out = append(out, cloneEvent(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountEvents counts all events
func (r *MemoryRepo) CountEvents(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.events)), nil
}

// UpdateEventDetails replaces the editable fields of an event
func (r *MemoryRepo) UpdateEventDetails(_ context.Context, id string, details model.EventDetails, at time.Time) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("update event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	e.EventDetails = details
	e.UpdatedAt = &at
	r.events[id] = e
	return cloneEvent(e), nil
}

// DeleteEvent removes an event
func (r *MemoryRepo) DeleteEvent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return fmt.Errorf("delete event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	delete(r.events, id)
	return nil
}

// AddRegistration appends reg unless its user is already registered
func (r *MemoryRepo) AddRegistration(_ context.Context, id string, reg model.Registration) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("register for event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	if _, taken := e.RegistrationOf(reg.UserEmail); taken {
		return model.Event{}, fmt.Errorf("register %s for event %s: %w", reg.UserEmail, id, marketerrors.ErrAlreadyRegistered)
	}
	e.Registrations = append(slices.Clip(e.Registrations), reg)
	r.events[id] = e
	return cloneEvent(e), nil
}

// RemoveRegistration drops the registration of email
func (r *MemoryRepo) RemoveRegistration(_ context.Context, id, email string) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("cancel registration for event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	idx := slices.IndexFunc(e.Registrations, func(reg model.Registration) bool { return reg.UserEmail == email })
	if idx < 0 {
		return model.Event{}, fmt.Errorf("cancel registration of %s for event %s: %w", email, id, marketerrors.ErrNotRegistered)
	}
	e.Registrations = slices.Delete(slices.Clone(e.Registrations), idx, idx+1)
	r.events[id] = e
	return cloneEvent(e), nil
}

// ConfirmPaidRegistration records a paid registration once per payment id
func (r *MemoryRepo) ConfirmPaidRegistration(_ context.Context, id string, reg model.Registration) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("confirm registration for event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	if e.HasPayment(reg.PaymentID) {
		return cloneEvent(e), nil
	}

	e.Registrations = slices.Clone(e.Registrations)
	idx := slices.IndexFunc(e.Registrations, func(existing model.Registration) bool {
		return existing.UserEmail == reg.UserEmail && existing.PaymentID == ""
	})
	switch _, registered := e.RegistrationOf(reg.UserEmail); {
	case idx >= 0:
		e.Registrations[idx].PaymentID = reg.PaymentID
		e.Registrations[idx].PaymentStatus = reg.PaymentStatus
	case registered:
		return model.Event{}, fmt.Errorf("confirm registration of %s for event %s: %w", reg.UserEmail, id, marketerrors.ErrAlreadyRegistered)
	default:
		e.Registrations = append(e.Registrations, reg)
	}
	r.events[id] = e
	return cloneEvent(e), nil
}

// InsertComplaint stores a new complaint
func (r *MemoryRepo) InsertComplaint(_ context.Context, c model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.complaints[c.ID]; exists {
		return fmt.Errorf("insert complaint %s: duplicate id", c.ID)
	}
	r.complaints[c.ID] = cloneComplaint(c)
	return nil
}

// GetComplaint returns a complaint by id
func (r *MemoryRepo) GetComplaint(_ context.Context, id string) (model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.complaints[id]
	if !ok {
		return model.Complaint{}, fmt.Errorf("get complaint %s: %w", id, marketerrors.ErrComplaintNotFound)
	}
	return cloneComplaint(c), nil
}

// FindComplaints returns complaints matching filter, newest first
func (r *MemoryRepo) FindComplaints(_ context.Context, filter ComplaintFilter) ([]model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Complaint, 0)
	for _, c := range r.complaints {
		if filter.matches(c) {
			out = append(out, cloneComplaint(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SetComplaintStatus moves a complaint to change.To when its status is in change.From
func (r *MemoryRepo) SetComplaintStatus(_ context.Context, id string, change ComplaintStatusChange) (model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.complaints[id]
	if !ok {
		return model.Complaint{}, fmt.Errorf("set status of complaint %s: %w", id, marketerrors.ErrComplaintNotFound)
	}
	if !slices.Contains(change.From, c.Status) {
		return model.Complaint{}, fmt.Errorf("set status of complaint %s from %s to %s: %w", id, c.Status, change.To, marketerrors.ErrInvalidTransition)
	}

	at := change.At
	c.Status = change.To
	c.UpdatedAt = &at
	c.UpdatedBy = change.By
	if change.Response != "" {
		c.AdminResponse = change.Response
	}
	r.complaints[id] = c
	return cloneComplaint(c), nil
}
