package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"id":"p1","name":"Madhubani painting","price":"499.99"},
		{"id":"p2","name":"Clay lamp","price":"0"}
	]`)

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, entity.ProductID("p1"), products[0].ID)
	assert.Equal(t, "Madhubani painting", products[0].Name)
	assert.True(t, decimal.RequireFromString("499.99").Equal(products[0].Price))
	assert.True(t, products[1].Price.IsZero())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed json",
			content: `[{"id":"p1"`,
		},
		{
			name:    "empty id",
			content: `[{"id":"","price":"10"}]`,
		},
		{
			name:    "negative price",
			content: `[{"id":"p1","price":"-1"}]`,
		},
		{
			name:    "duplicated id",
			content: `[{"id":"p1","price":"1"},{"id":"p1","price":"2"}]`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

type saverFunc func(ctx context.Context, products []entity.Product) error

func (f saverFunc) SaveProducts(ctx context.Context, products []entity.Product) error {
	return f(ctx, products)
}

func TestSync(t *testing.T) {
	path := writeCatalog(t, `[{"id":"p1","name":"Clay lamp","price":"120"}]`)

	var saved []entity.Product
	err := Sync(context.Background(), path, saverFunc(func(_ context.Context, products []entity.Product) error {
		saved = products
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, entity.ProductID("p1"), saved[0].ID)

	err = Sync(context.Background(), path, saverFunc(func(context.Context, []entity.Product) error {
		return errors.New("connection refused")
	}))
	assert.Error(t, err)
}
