package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/converter"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

type ProductSaver interface {
	SaveProducts(ctx context.Context, products []entity.Product) error
}

// Load reads the product price list from a JSON array of {"id","name","price"}.
func Load(path string) ([]entity.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error while opening product catalog: %w", err)
	}
	defer file.Close()

	var products []model.CatalogProduct
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		return nil, fmt.Errorf("error while decoding product catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for _, product := range products {
		if len(product.ID) == 0 {
			return nil, fmt.Errorf("product catalog contains product with empty id")
		}

		if product.Price.IsNegative() {
			return nil, fmt.Errorf("product %s has negative price", product.ID)
		}

		if _, ok := seen[product.ID]; ok {
			return nil, fmt.Errorf("product %s is duplicated in catalog", product.ID)
		}
		seen[product.ID] = struct{}{}
	}

	return converter.ConvertCatalogProductsToEntity(products), nil
}

// Sync loads the catalog file and upserts its prices into storage.
func Sync(ctx context.Context, path string, saver ProductSaver) error {
	products, err := Load(path)
	if err != nil {
		return err
	}

	if err := saver.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("error while saving product catalog: %w", err)
	}

	zap.L().Info("product catalog synced", zap.String("path", path), zap.Int("products", len(products)))

	return nil
}
