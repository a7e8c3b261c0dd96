package converter

import (
	"github.com/shopspring/decimal"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

func ConvertAddCartItemRequestToEntity(request model.AddCartItemRequest, product entity.Product) entity.CartItem {
	return entity.CartItem{
		ProductID: product.ID,
		Quantity:  request.Quantity,
		UnitCost:  product.Price,
	}
}

func ConvertCatalogProductsToEntity(products []model.CatalogProduct) []entity.Product {
	result := make([]entity.Product, 0, len(products))
	for _, product := range products {
		result = append(result, entity.Product{
			ID:    entity.ProductID(product.ID),
			Name:  product.Name,
			Price: product.Price,
		})
	}

	return result
}

func ConvertCartToOutput(cart entity.Cart) model.CartResponse {
	response := model.CartResponse{
		Items:      make([]model.CartItem, 0, len(cart.Items)),
		TotalPrice: decimal.Zero,
	}

	for _, item := range cart.Items {
		response.Items = append(response.Items, model.CartItem{
			ProductID: string(item.ProductID),
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
		response.ProductsQuantity += item.Quantity
		response.TotalPrice = response.TotalPrice.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return response
}
