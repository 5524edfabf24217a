package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/payment"
	"artisan-market/internal/repository"
	"artisan-market/utils"

	"github.com/shopspring/decimal"
)

// OrderService turns paid cart checkouts into orders
type OrderService struct {
	catalog repository.CatalogStore
	orders  repository.OrderStore
	gateway payment.Gateway
	now     func() time.Time
}

// NewOrderService creates a new OrderService instance
func NewOrderService(catalog repository.CatalogStore, orders repository.OrderStore, gateway payment.Gateway) *OrderService {
	return &OrderService{
		catalog: catalog,
		orders:  orders,
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateCartSession opens a hosted checkout for everything in the caller's cart
func (s *OrderService) CreateCartSession(ctx context.Context, caller models.Caller) (payment.Session, error) {
	ids, err := s.catalog.GetBasket(ctx, models.BasketCart, caller.Identity)
	if err != nil {
		return payment.Session{}, fmt.Errorf("service: failed to load cart of %s: %w", caller.Identity, err)
	}

	items := make([]payment.LineItem, 0, len(ids))
	productIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalog.GetProduct(ctx, id)
		if errors.Is(err, marketerrors.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return payment.Session{}, fmt.Errorf("service: failed to load cart of %s: %w", caller.Identity, err)
		}
		items = append(items, payment.LineItem{
			Name:      p.Name,
			UnitPrice: decimal.NewFromFloat(p.Price),
			Quantity:  1,
			Image:     p.Image,
		})
		productIDs = append(productIDs, p.ID)
	}
	if len(items) == 0 {
		return payment.Session{}, fmt.Errorf("service: checkout for %s: %w", caller.Identity, marketerrors.ErrEmptyCart)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Items:         items,
		CustomerEmail: caller.Identity,
		Metadata: map[string]string{
			payment.MetaBuyer:    caller.Identity,
			payment.MetaKind:     payment.KindCart,
			payment.MetaProducts: payment.JoinIDs(productIDs),
		},
	})
	if err != nil {
		return payment.Session{}, fmt.Errorf("service: failed to open checkout for %s: %w", caller.Identity, err)
	}
	return session, nil
}

// VerifyPayment materializes the order of a paid checkout session.
//
// The session is claimed first by recording a pending order under its unique
// payment id, so only one caller ever reserves stock for it. Verifying the same
// session again returns the claimed order. When stock runs out, the units
// already reserved are returned and the order is marked failed.
func (s *OrderService) VerifyPayment(ctx context.Context, caller models.Caller, sessionID string) (models.Order, error) {
	if sessionID == "" {
		return models.Order{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "session_id is required")
	}

	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to fetch checkout %s: %w", sessionID, err)
	}
	if session.Metadata[payment.MetaBuyer] != caller.Identity || session.Metadata[payment.MetaKind] != payment.KindCart {
		return models.Order{}, fmt.Errorf("service: %s verifying checkout %s: %w", caller.Identity, sessionID, marketerrors.ErrForbidden)
	}
	if !session.Paid {
		return models.Order{}, fmt.Errorf("service: checkout %s is %q: %w", sessionID, session.PaymentStatus, marketerrors.ErrPaymentIncomplete)
	}

	existing, err := s.orders.FindOrderByPayment(ctx, sessionID)
	if err == nil {
		return claimed(existing)
	}
	if !errors.Is(err, marketerrors.ErrOrderNotFound) {
		return models.Order{}, fmt.Errorf("service: failed to look up order for checkout %s: %w", sessionID, err)
	}

	order := models.Order{
		ID:            utils.GenerateID(),
		BuyerEmail:    caller.Identity,
		PaymentID:     sessionID,
		PaymentStatus: session.PaymentStatus,
		Status:        models.OrderPending,
		CreatedAt:     s.now(),
	}
	total := decimal.Zero
	for _, id := range payment.SplitIDs(session.Metadata[payment.MetaProducts]) {
		p, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			return models.Order{}, fmt.Errorf("service: failed to load product for checkout %s: %w", sessionID, err)
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   p.ID,
			Kind:        p.ItemKind(),
			Name:        p.Name,
			Price:       p.Price,
			Image:       p.Image,
			SellerEmail: p.SellerEmail,
			Quantity:    1,
		})
		total = total.Add(decimal.NewFromFloat(p.Price))
	}
	order.TotalAmount = total.Round(2).InexactFloat64()

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		if errors.Is(err, marketerrors.ErrDuplicateOrder) {
			utils.Warn("Checkout verified concurrently", map[string]any{"session_id": sessionID})
			existing, err := s.orders.FindOrderByPayment(ctx, sessionID)
			if err != nil {
				return models.Order{}, fmt.Errorf("service: failed to look up order for checkout %s: %w", sessionID, err)
			}
			return claimed(existing)
		}
		return models.Order{}, fmt.Errorf("service: failed to record order for checkout %s: %w", sessionID, err)
	}

	if err := s.reserve(ctx, order); err != nil {
		if _, markErr := s.orders.UpdateOrderStatus(ctx, order.ID, models.OrderFailed, s.now()); markErr != nil {
			utils.Error("Failed to mark order failed", map[string]any{"order_id": order.ID, "error": markErr.Error()})
		}
		return models.Order{}, fmt.Errorf("service: failed to reserve stock for checkout %s: %w", sessionID, err)
	}

	confirmed, err := s.orders.UpdateOrderStatus(ctx, order.ID, models.OrderConfirmed, s.now())
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to confirm order for checkout %s: %w", sessionID, err)
	}

	if err := s.catalog.ClearBasket(ctx, models.BasketCart, caller.Identity); err != nil {
		utils.Warn("Failed to clear cart after checkout", map[string]any{
			"buyer": caller.Identity,
			"error": err.Error(),
		})
	}
	return confirmed, nil
}

// reserve takes one unit of every item; on failure it returns what it took
func (s *OrderService) reserve(ctx context.Context, order models.Order) error {
	for i, it := range order.Items {
		err := s.catalog.DecrementStock(ctx, it.ProductID, it.Quantity)
		if err == nil {
			continue
		}
		for _, done := range order.Items[:i] {
			if incErr := s.catalog.IncrementStock(ctx, done.ProductID, done.Quantity); incErr != nil {
				utils.Error("Failed to return reserved stock", map[string]any{
					"order_id":   order.ID,
					"product_id": done.ProductID,
					"error":      incErr.Error(),
				})
			}
		}
		return fmt.Errorf("reserve %s: %w", it.ProductID, err)
	}
	return nil
}

// claimed resolves a verify that found the session already recorded
func claimed(order models.Order) (models.Order, error) {
	if order.Status == models.OrderFailed {
		return models.Order{}, fmt.Errorf("service: checkout %s could not be fulfilled: %w", order.PaymentID, marketerrors.ErrOutOfStock)
	}
	return order, nil
}

// BuyerOrders returns the caller's purchases
func (s *OrderService) BuyerOrders(ctx context.Context, caller models.Caller) ([]models.Order, error) {
	list, err := s.orders.ListOrders(ctx, repository.OrderFilter{BuyerEmail: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders of %s: %w", caller.Identity, err)
	}
	return list, nil
}

// SellerOrders returns orders containing at least one of the caller's products
func (s *OrderService) SellerOrders(ctx context.Context, caller models.Caller) ([]models.Order, error) {
	list, err := s.orders.ListOrders(ctx, repository.OrderFilter{SellerEmail: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders for seller %s: %w", caller.Identity, err)
	}
	return list, nil
}

// UpdateStatus lets a seller with an item in the order move its fulfilment state
func (s *OrderService) UpdateStatus(ctx context.Context, caller models.Caller, orderID, status string) (models.Order, error) {
	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return models.Order{}, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "status must be confirmed, shipped, delivered or cancelled")
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	if !order.HasSeller(caller.Identity) {
		return models.Order{}, fmt.Errorf("service: %s updating order %s: %w", caller.Identity, orderID, marketerrors.ErrForbidden)
	}
	if !order.Fulfillable() {
		return models.Order{}, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "order was not completed")
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, orderID, next, s.now())
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to update order %s: %w", orderID, err)
	}
	return updated, nil
}

// CountOrders returns the number of recorded orders
func (s *OrderService) CountOrders(ctx context.Context) (int64, error) {
	n, err := s.orders.CountOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count orders: %w", err)
	}
	return n, nil
}
