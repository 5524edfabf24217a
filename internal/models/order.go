package models

import "time"

// OrderStatus is the fulfilment state set by sellers.
// Pending and failed are set only while materializing a checkout.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderFailed    OrderStatus = "failed"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus validates a fulfilment status a seller may request
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(s); st {
	case OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return st, true
	}
	return "", false
}

// OrderItem captures a product or material as it was at purchase time
type OrderItem struct {
	ProductID   string   `bson:"product_id" json:"product_id"`
	Kind        ItemKind `bson:"kind" json:"kind"`
	Name        string   `bson:"name" json:"name"`
	Price       float64  `bson:"price" json:"price"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	SellerEmail string   `bson:"seller_email" json:"seller_email"`
	Quantity    int      `bson:"quantity" json:"quantity"`
}

// Order is materialized from a paid checkout session
type Order struct {
	ID            string      `bson:"_id" json:"id"`
	BuyerEmail    string      `bson:"buyer_email" json:"buyer_email"`
	Items         []OrderItem `bson:"items" json:"items"`
	TotalAmount   float64     `bson:"total_amount" json:"total_amount"`
	PaymentID     string      `bson:"payment_id" json:"payment_id"`
	PaymentStatus string      `bson:"payment_status" json:"payment_status"`
	Status        OrderStatus `bson:"status" json:"status"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time  `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Fulfillable reports whether the order was fully paid for and reserved
func (o Order) Fulfillable() bool {
	return o.Status != OrderPending && o.Status != OrderFailed
}

// HasSeller reports whether any line item belongs to sellerEmail
func (o Order) HasSeller(sellerEmail string) bool {
	for _, it := range o.Items {
		if it.SellerEmail == sellerEmail {
			return true
		}
	}
	return false
}
