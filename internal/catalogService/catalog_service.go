package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"
	"artisan-market/utils"
)

// CatalogService manages products and the per-principal cart and wishlist
type CatalogService struct {
	store repository.CatalogStore
	now   func() time.Time
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.CatalogStore) *CatalogService {
	return &CatalogService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct lists a new product owned by the calling seller
func (s *CatalogService) CreateProduct(ctx context.Context, caller models.Caller, in models.ProductInput) (models.Product, error) {
	return s.createItem(ctx, caller, models.ItemProduct, in)
}

// CreateMaterial lists a new craft material owned by the calling seller
func (s *CatalogService) CreateMaterial(ctx context.Context, caller models.Caller, in models.ProductInput) (models.Product, error) {
	return s.createItem(ctx, caller, models.ItemMaterial, in)
}

func (s *CatalogService) createItem(ctx context.Context, caller models.Caller, kind models.ItemKind, in models.ProductInput) (models.Product, error) {
	if caller.Role != models.KindSeller {
		return models.Product{}, fmt.Errorf("service: %s cannot sell %ss: %w", caller.Role, kind, marketerrors.ErrForbidden)
	}
	if err := validateProduct(in); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:          utils.GenerateID(),
		Kind:        kind,
		SellerEmail: caller.Identity,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Quantity:    in.Quantity,
		Image:       in.Image,
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertProduct(ctx, p); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to create %s for %s: %w", kind, caller.Identity, err)
	}
	return p, nil
}

func validateProduct(in models.ProductInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "name is required")
	case strings.TrimSpace(in.Category) == "":
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "category is required")
	case !(in.Price > 0) || math.IsInf(in.Price, 0):
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "price must be greater than zero")
	case in.Quantity < 0:
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "quantity cannot be negative")
	}
	return nil
}

func (s *CatalogService) list(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	items, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list %ss: %w", filter.Kind, err)
	}
	return items, nil
}

// ListProducts returns the whole product catalog
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, repository.ProductFilter{Kind: models.ItemProduct})
}

// SellerProducts returns the products of the calling seller
func (s *CatalogService) SellerProducts(ctx context.Context, caller models.Caller) ([]models.Product, error) {
	return s.list(ctx, repository.ProductFilter{SellerEmail: caller.Identity, Kind: models.ItemProduct})
}

// ListMaterials returns every craft material
func (s *CatalogService) ListMaterials(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, repository.ProductFilter{Kind: models.ItemMaterial})
}

// SellerMaterials returns the materials of the calling seller
func (s *CatalogService) SellerMaterials(ctx context.Context, caller models.Caller) ([]models.Product, error) {
	return s.list(ctx, repository.ProductFilter{SellerEmail: caller.Identity, Kind: models.ItemMaterial})
}

// MaterialCategories returns the distinct material categories in name order
func (s *CatalogService) MaterialCategories(ctx context.Context) ([]string, error) {
	materials, err := s.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0)
	for _, m := range materials {
		if !slices.Contains(categories, m.Category) {
			categories = append(categories, m.Category)
		}
	}
	slices.Sort(categories)
	return categories, nil
}

// GetProduct returns one catalog entry of either kind
func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if id == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product id", marketerrors.ErrInvalidInput)
	}
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", id, err)
	}
	return p, nil
}

// GetMaterial returns one material; products are reported as not found
func (s *CatalogService) GetMaterial(ctx context.Context, id string) (models.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if p.ItemKind() != models.ItemMaterial {
		return models.Product{}, marketerrors.WithDetail(marketerrors.ErrProductNotFound, "material not found")
	}
	return p, nil
}

// AddToBasket puts an existing product or material in the caller's cart or wishlist.
// Adding a product twice keeps a single entry.
func (s *CatalogService) AddToBasket(ctx context.Context, kind models.BasketKind, caller models.Caller, productID string) ([]models.Product, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.store.AddToBasket(ctx, kind, caller.Identity, productID); err != nil {
		return nil, fmt.Errorf("service: failed to add %s to %s of %s: %w", productID, kind, caller.Identity, err)
	}
	return s.Basket(ctx, kind, caller)
}

// RemoveFromBasket drops a product from the caller's cart or wishlist
func (s *CatalogService) RemoveFromBasket(ctx context.Context, kind models.BasketKind, caller models.Caller, productID string) ([]models.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product id", marketerrors.ErrInvalidInput)
	}
	if err := s.store.RemoveFromBasket(ctx, kind, caller.Identity, productID); err != nil {
		return nil, fmt.Errorf("service: failed to remove %s from %s of %s: %w", productID, kind, caller.Identity, err)
	}
	return s.Basket(ctx, kind, caller)
}

// Basket returns the products in the caller's cart or wishlist.
// Products deleted since they were added are skipped.
func (s *CatalogService) Basket(ctx context.Context, kind models.BasketKind, caller models.Caller) ([]models.Product, error) {
	ids, err := s.store.GetBasket(ctx, kind, caller.Identity)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load %s of %s: %w", kind, caller.Identity, err)
	}

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.store.GetProduct(ctx, id)
		if errors.Is(err, marketerrors.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("service: failed to load %s of %s: %w", kind, caller.Identity, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// CountProducts returns the catalog size
func (s *CatalogService) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.store.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count products: %w", err)
	}
	return n, nil
}
