package checkout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
)

var testContact = entity.Contact{
	Name:  "Asha",
	Email: "asha@example.com",
	Phone: "9999999999",
}

func exampleCart() entity.Cart {
	return entity.Cart{
		BuyerID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		Items: []entity.CartItem{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.NewFromInt(500)},
			{ProductID: "p2", Quantity: 1, UnitCost: decimal.NewFromInt(300)},
		},
	}
}

func TestNewBuilder(t *testing.T) {
	builder, err := NewBuilder("inr")
	require.NoError(t, err)

	session, err := builder.Build(exampleCart(), entity.MultiItemIntent(), testContact)
	require.NoError(t, err)
	assert.Equal(t, "INR", session.Currency)

	_, err = NewBuilder("XXX")
	assert.ErrorIs(t, err, usecase.ErrConfig)
}

func TestBuild(t *testing.T) {
	type want struct {
		productsQuantity int
		totalPrice       string
		amount           int64
		productIDs       []entity.ProductID
	}
	tests := []struct {
		name     string
		currency string
		cart     entity.Cart
		intent   entity.CheckoutIntent

		want want
	}{
		{
			name:     "whole cart",
			currency: "INR",
			cart:     exampleCart(),
			intent:   entity.MultiItemIntent(),

			want: want{
				productsQuantity: 3,
				totalPrice:       "1300",
				amount:           130000,
				productIDs:       []entity.ProductID{"p1", "p2"},
			},
		},
		{
			name:     "single product from cart",
			currency: "INR",
			cart:     exampleCart(),
			intent:   entity.SingleItemIntent("p1"),

			want: want{
				productsQuantity: 2,
				totalPrice:       "1000",
				amount:           100000,
				productIDs:       []entity.ProductID{"p1"},
			},
		},
		{
			name:     "fractional cost is rounded to minor units",
			currency: "USD",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 3, UnitCost: decimal.RequireFromString("0.335")},
			}},
			intent: entity.MultiItemIntent(),

			want: want{
				productsQuantity: 3,
				totalPrice:       "1.005",
				amount:           101,
				productIDs:       []entity.ProductID{"p1"},
			},
		},
		{
			name:     "zero decimal currency",
			currency: "JPY",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 2, UnitCost: decimal.NewFromInt(1500)},
			}},
			intent: entity.MultiItemIntent(),

			want: want{
				productsQuantity: 2,
				totalPrice:       "3000",
				amount:           3000,
				productIDs:       []entity.ProductID{"p1"},
			},
		},
		{
			name:     "three decimal currency",
			currency: "KWD",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 1, UnitCost: decimal.RequireFromString("1.25")},
			}},
			intent: entity.MultiItemIntent(),

			want: want{
				productsQuantity: 1,
				totalPrice:       "1.25",
				amount:           1250,
				productIDs:       []entity.ProductID{"p1"},
			},
		},
		{
			name:     "free item alongside a paid one",
			currency: "INR",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 1, UnitCost: decimal.Zero},
				{ProductID: "p2", Quantity: 1, UnitCost: decimal.NewFromInt(10)},
			}},
			intent: entity.MultiItemIntent(),

			want: want{
				productsQuantity: 2,
				totalPrice:       "10",
				amount:           1000,
				productIDs:       []entity.ProductID{"p1", "p2"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			builder, err := NewBuilder(test.currency)
			require.NoError(t, err)

			session, err := builder.Build(test.cart, test.intent, testContact)
			require.NoError(t, err)

			assert.Equal(t, test.want.productsQuantity, session.ProductsQuantity)
			assert.Equal(t, test.want.totalPrice, session.TotalPrice.String())
			assert.Equal(t, test.want.amount, session.Amount)
			assert.Equal(t, test.want.productIDs, session.ProductIDs())
			assert.Equal(t, test.currency, session.Currency)
			assert.Equal(t, testContact, session.Contact)
		})
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name   string
		cart   entity.Cart
		intent entity.CheckoutIntent
	}{
		{
			name:   "empty cart",
			cart:   entity.Cart{},
			intent: entity.MultiItemIntent(),
		},
		{
			name:   "single product not in cart",
			cart:   exampleCart(),
			intent: entity.SingleItemIntent("p9"),
		},
		{
			name:   "single product with empty id",
			cart:   exampleCart(),
			intent: entity.SingleItemIntent(""),
		},
		{
			name:   "unknown intent",
			cart:   exampleCart(),
			intent: entity.CheckoutIntent{Kind: entity.IntentKind(42)},
		},
		{
			name: "zero quantity",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 0, UnitCost: decimal.NewFromInt(10)},
			}},
			intent: entity.MultiItemIntent(),
		},
		{
			name: "negative cost",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 1, UnitCost: decimal.NewFromInt(-10)},
			}},
			intent: entity.MultiItemIntent(),
		},
		{
			name: "zero total",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 1, UnitCost: decimal.Zero},
			}},
			intent: entity.MultiItemIntent(),
		},
		{
			name: "amount overflow",
			cart: entity.Cart{Items: []entity.CartItem{
				{ProductID: "p1", Quantity: 1, UnitCost: decimal.RequireFromString("99999999999999999999")},
			}},
			intent: entity.MultiItemIntent(),
		},
	}

	builder, err := NewBuilder("INR")
	require.NoError(t, err)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := builder.Build(test.cart, test.intent, testContact)
			assert.ErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestBuildTotalsMatchCart(t *testing.T) {
	builder, err := NewBuilder("INR")
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		cart := entity.Cart{}
		expectedTotal := decimal.Zero
		expectedQuantity := 0

		lines := rnd.Intn(5) + 1
		for j := 0; j < lines; j++ {
			item := entity.CartItem{
				ProductID: entity.ProductID(fmt.Sprintf("p%d", j)),
				Quantity:  rnd.Intn(9) + 1,
				UnitCost:  decimal.New(rnd.Int63n(1_000_000)+1, -2),
			}
			cart.Items = append(cart.Items, item)

			expectedTotal = expectedTotal.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
			expectedQuantity += item.Quantity
		}

		session, err := builder.Build(cart, entity.MultiItemIntent(), testContact)
		require.NoError(t, err)

		assert.True(t, expectedTotal.Equal(session.TotalPrice))
		assert.Equal(t, expectedQuantity, session.ProductsQuantity)
		assert.Equal(t, expectedTotal.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), session.Amount)
	}
}
