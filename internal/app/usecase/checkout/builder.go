package checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
)

// Number of minor units per major unit, as a power of ten.
var currencyExponents = map[string]int32{
	"INR": 2,
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"AED": 2,
	"SGD": 2,
	"AUD": 2,
	"CAD": 2,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"JOD": 3,
}

var maxAmount = decimal.NewFromInt(math.MaxInt64)

type Builder struct {
	currency string
	exponent int32
}

func NewBuilder(currency string) (*Builder, error) {
	currency = strings.ToUpper(currency)

	exponent, ok := currencyExponents[currency]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency %q", usecase.ErrConfig, currency)
	}

	return &Builder{
		currency: currency,
		exponent: exponent,
	}, nil
}

// Build selects the purchased lines from the stored cart and computes the amount
// to be charged. Totals are always derived from the cart, never from the client.
func (b *Builder) Build(cart entity.Cart, intent entity.CheckoutIntent, contact entity.Contact) (entity.CheckoutSession, error) {
	items, err := selectItems(cart, intent)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	session := entity.CheckoutSession{
		Products:   make([]entity.OrderedProduct, 0, len(items)),
		TotalPrice: decimal.Zero,
		Currency:   b.currency,
		Contact:    contact,
	}

	for _, item := range items {
		if err := validateItem(item); err != nil {
			return entity.CheckoutSession{}, err
		}

		product := entity.OrderedProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}

		session.Products = append(session.Products, product)
		session.ProductsQuantity += product.Quantity
		session.TotalPrice = session.TotalPrice.Add(product.Cost())
	}

	if !session.TotalPrice.IsPositive() {
		return entity.CheckoutSession{}, fmt.Errorf("%w: total price must be positive, got %s", usecase.ErrValidation, session.TotalPrice)
	}

	amount := session.TotalPrice.Shift(b.exponent).Round(0)
	if amount.GreaterThan(maxAmount) {
		return entity.CheckoutSession{}, fmt.Errorf("%w: total price %s is too large", usecase.ErrValidation, session.TotalPrice)
	}
	session.Amount = amount.IntPart()

	return session, nil
}

func selectItems(cart entity.Cart, intent entity.CheckoutIntent) ([]entity.CartItem, error) {
	switch intent.Kind {
	case entity.IntentMultiItem:
		if len(cart.Items) == 0 {
			return nil, fmt.Errorf("%w: cart is empty", usecase.ErrValidation)
		}

		return cart.Items, nil
	case entity.IntentSingleItem:
		if len(intent.ProductID) == 0 {
			return nil, fmt.Errorf("%w: product id is empty", usecase.ErrValidation)
		}

		item, ok := cart.Find(intent.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: product %s is not in cart", usecase.ErrValidation, intent.ProductID)
		}

		return []entity.CartItem{item}, nil
	default:
		return nil, fmt.Errorf("%w: unknown checkout intent %d", usecase.ErrValidation, intent.Kind)
	}
}

func validateItem(item entity.CartItem) error {
	if len(item.ProductID) == 0 {
		return fmt.Errorf("%w: cart item without product id", usecase.ErrValidation)
	}

	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity of product %s must be positive", usecase.ErrValidation, item.ProductID)
	}

	if item.UnitCost.IsNegative() {
		return fmt.Errorf("%w: cost of product %s must not be negative", usecase.ErrValidation, item.ProductID)
	}

	return nil
}
