package models

import "time"

// ItemKind separates finished products from craft materials; both share the catalog
type ItemKind string

const (
	ItemProduct  ItemKind = "product"
	ItemMaterial ItemKind = "material"
)

// Product is a catalog item sold at a fixed price
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Kind        ItemKind  `bson:"kind" json:"kind"`
	SellerEmail string    `bson:"seller_email" json:"seller_email"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ItemKind treats entries stored before materials existed as products
func (p Product) ItemKind() ItemKind {
	if p.Kind == "" {
		return ItemProduct
	}
	return p.Kind
}

// ProductInput carries the seller-supplied fields of a new product
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	Image       string
}

// BasketKind distinguishes the two per-principal product sets
type BasketKind string

const (
	BasketCart     BasketKind = "cart"
	BasketWishlist BasketKind = "wishlist"
)

// Basket is a per-principal set of product ids
type Basket struct {
	ID         string     `bson:"_id" json:"-"`
	Kind       BasketKind `bson:"kind" json:"kind"`
	Owner      string     `bson:"owner" json:"owner"`
	ProductIDs []string   `bson:"product_ids" json:"product_ids"`
}

// BasketID is the storage key of owner's basket of kind
func BasketID(kind BasketKind, owner string) string {
	return string(kind) + ":" + owner
}
