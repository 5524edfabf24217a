package catalog

import (
	"context"
	"testing"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
	"artisan-market/internal/repository"

	"github.com/stretchr/testify/require"
)

var (
	seller = model.Caller{Identity: "seller@x.io", Role: model.KindSeller}
	buyer  = model.Caller{Identity: "buyer@x.io", Role: model.KindBuyer}
)

func validInput() model.ProductInput {
	return model.ProductInput{Name: "Mug", Description: "stoneware", Category: "pottery", Price: 12.5, Quantity: 3}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		caller        model.Caller
		mutate        func(*model.ProductInput)
		expectedError error
		expectedMsg   string
	}{
		{name: "valid", caller: seller, mutate: func(*model.ProductInput) {}},
		{name: "buyer_forbidden", caller: buyer, mutate: func(*model.ProductInput) {}, expectedError: marketerrors.ErrForbidden},
		{name: "missing_name", caller: seller, mutate: func(in *model.ProductInput) { in.Name = " " }, expectedError: marketerrors.ErrInvalidInput, expectedMsg: "name is required"},
		{name: "missing_category", caller: seller, mutate: func(in *model.ProductInput) { in.Category = "" }, expectedError: marketerrors.ErrInvalidInput, expectedMsg: "category is required"},
		{name: "zero_price", caller: seller, mutate: func(in *model.ProductInput) { in.Price = 0 }, expectedError: marketerrors.ErrInvalidInput, expectedMsg: "price must be greater than zero"},
		{name: "negative_quantity", caller: seller, mutate: func(in *model.ProductInput) { in.Quantity = -1 }, expectedError: marketerrors.ErrInvalidInput, expectedMsg: "quantity cannot be negative"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewCatalogService(repository.NewMemoryRepo())
			in := validInput()
			tc.mutate(&in)

			p, err := service.CreateProduct(context.Background(), tc.caller, in)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Equal(t, tc.expectedMsg, marketerrors.Detail(err))
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, p.ID)
			require.Equal(t, seller.Identity, p.SellerEmail)

			got, err := service.GetProduct(context.Background(), p.ID)
			require.NoError(t, err)
			require.Equal(t, p, got)
		})
	}
}

func TestCatalogService_Listings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewCatalogService(repository.NewMemoryRepo())
	other := model.Caller{Identity: "other@x.io", Role: model.KindSeller}

	_, err := service.CreateProduct(ctx, seller, validInput())
	require.NoError(t, err)
	_, err = service.CreateProduct(ctx, other, validInput())
	require.NoError(t, err)

	all, err := service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := service.SellerProducts(ctx, seller)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, seller.Identity, mine[0].SellerEmail)

	_, err = service.GetProduct(ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrProductNotFound)
	_, err = service.GetProduct(ctx, "")
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
}

func TestCatalogService_Baskets(t *testing.T) {
	t.Parallel()

	for _, kind := range []model.BasketKind{model.BasketCart, model.BasketWishlist} {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			service := NewCatalogService(repository.NewMemoryRepo())
			mug, err := service.CreateProduct(ctx, seller, validInput())
			require.NoError(t, err)
			bowl, err := service.CreateProduct(ctx, seller, model.ProductInput{Name: "Bowl", Category: "pottery", Price: 20, Quantity: 1})
			require.NoError(t, err)

			_, err = service.AddToBasket(ctx, kind, buyer, "missing")
			require.ErrorIs(t, err, marketerrors.ErrProductNotFound)

			got, err := service.AddToBasket(ctx, kind, buyer, mug.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)

			// set semantics
			got, err = service.AddToBasket(ctx, kind, buyer, mug.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)

			got, err = service.AddToBasket(ctx, kind, buyer, bowl.ID)
			require.NoError(t, err)
			require.Equal(t, []string{mug.ID, bowl.ID}, []string{got[0].ID, got[1].ID})

			got, err = service.RemoveFromBasket(ctx, kind, buyer, mug.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, bowl.ID, got[0].ID)

			// baskets are per principal
			other, err := service.Basket(ctx, kind, model.Caller{Identity: "someone@x.io", Role: model.KindBuyer})
			require.NoError(t, err)
			require.Empty(t, other)
		})
	}
}

func TestCatalogService_CartAndWishlistAreSeparate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewCatalogService(repository.NewMemoryRepo())
	mug, err := service.CreateProduct(ctx, seller, validInput())
	require.NoError(t, err)

	_, err = service.AddToBasket(ctx, model.BasketWishlist, buyer, mug.ID)
	require.NoError(t, err)

	cart, err := service.Basket(ctx, model.BasketCart, buyer)
	require.NoError(t, err)
	require.Empty(t, cart)
}

func TestCatalogService_Materials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewCatalogService(repo)

	mug, err := service.CreateProduct(ctx, seller, validInput())
	require.NoError(t, err)
	require.Equal(t, model.ItemProduct, mug.Kind)

	_, err = service.CreateMaterial(ctx, buyer, validInput())
	require.ErrorIs(t, err, marketerrors.ErrForbidden)
	_, err = service.CreateMaterial(ctx, seller, model.ProductInput{Name: "Clay", Category: "clay"})
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)

	clay, err := service.CreateMaterial(ctx, seller, model.ProductInput{Name: "Clay", Category: "clay", Price: 8, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, model.ItemMaterial, clay.Kind)
	_, err = service.CreateMaterial(ctx, model.Caller{Identity: "other@x.io", Role: model.KindSeller},
		model.ProductInput{Name: "Glaze", Category: "glaze", Price: 5, Quantity: 2})
	require.NoError(t, err)
	_, err = service.CreateMaterial(ctx, seller, model.ProductInput{Name: "Porcelain", Category: "clay", Price: 12, Quantity: 4})
	require.NoError(t, err)

	// entries stored without a kind count as products
	require.NoError(t, repo.InsertProduct(ctx, model.Product{ID: "legacy", SellerEmail: seller.Identity, Name: "Old", Price: 1}))

	products, err := service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	materials, err := service.ListMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 3)

	mine, err := service.SellerMaterials(ctx, seller)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	mineProducts, err := service.SellerProducts(ctx, seller)
	require.NoError(t, err)
	require.Len(t, mineProducts, 2)

	categories, err := service.MaterialCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"clay", "glaze"}, categories)

	got, err := service.GetMaterial(ctx, clay.ID)
	require.NoError(t, err)
	require.Equal(t, clay, got)
	_, err = service.GetMaterial(ctx, mug.ID)
	require.ErrorIs(t, err, marketerrors.ErrProductNotFound)
	require.Equal(t, "material not found", marketerrors.Detail(err))

	// materials share the cart with products
	cart, err := service.AddToBasket(ctx, model.BasketCart, buyer, clay.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemMaterial, cart[0].Kind)
}
