package payment

import (
	"context"
	"testing"

	"artisan-market/internal/marketerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price string
		want  int64
	}{
		{price: "10", want: 1000},
		{price: "19.99", want: 1999},
		{price: "0.1", want: 10},
		{price: "0.005", want: 1},
		{price: "1234.565", want: 123457},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.price, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, MinorUnits(decimal.RequireFromString(tc.price)))
		})
	}
}

func TestJoinSplitIDs(t *testing.T) {
	t.Parallel()

	require.Nil(t, SplitIDs(""))
	ids := []string{"a", "b", "c"}
	require.Equal(t, ids, SplitIDs(JoinIDs(ids)))
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewStripeGateway(StripeConfig{})
	require.ErrorIs(t, err, ErrStripeClientInitFailed)

	g, err := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123", Currency: "usd"})
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestDisabledGateway(t *testing.T) {
	t.Parallel()

	g := Disabled()
	_, err := g.CreateCheckoutSession(context.Background(), CheckoutRequest{})
	require.ErrorIs(t, err, marketerrors.ErrPaymentsDisabled)
	_, err = g.GetSession(context.Background(), "cs_1")
	require.ErrorIs(t, err, marketerrors.ErrPaymentsDisabled)
}
