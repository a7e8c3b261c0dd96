package storage

import (
	"context"
	"fmt"

	"github.com/avGenie/go-checkout-system/internal/app/config"
	"github.com/avGenie/go-checkout-system/internal/app/storage/api/model"
	storage "github.com/avGenie/go-checkout-system/internal/app/storage/postgres"
)

func InitStorage(ctx context.Context, config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return nil, fmt.Errorf("empty database config")
	}

	return storage.NewPostgresStorage(ctx, config.DBConnect)
}
