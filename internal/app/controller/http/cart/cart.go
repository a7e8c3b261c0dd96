package cart

//go:generate mockgen -source=cart.go -destination=mock/cart.go -package=mock

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/avGenie/go-checkout-system/internal/app/controller/http/utils"
	"github.com/avGenie/go-checkout-system/internal/app/converter"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
	"github.com/avGenie/go-checkout-system/internal/app/validator"
)

const (
	ProductIDParam = "productID"

	ErrProductNotFound = "product not found"
)

type CartStorage interface {
	GetProduct(ctx context.Context, productID entity.ProductID) (entity.Product, error)
	GetCart(ctx context.Context, userID entity.UserID) (entity.Cart, error)
	AddCartItem(ctx context.Context, userID entity.UserID, item entity.CartItem) error
	RemoveCartItems(ctx context.Context, userID entity.UserID, productIDs ...entity.ProductID) error
}

type Cart struct {
	storage CartStorage
}

func New(storage CartStorage) Cart {
	return Cart{
		storage: storage,
	}
}

func (c *Cart) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting cart", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		cart, err := c.storage.GetCart(ctx, userID)
		if err != nil {
			zap.L().Error("error while getting cart", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertCartToOutput(cart))
	}
}

func (c *Cart) AddCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while adding cart item", zap.Error(err))
			return
		}

		var request model.AddCartItemRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("error while decoding cart item", zap.Error(err))
			return
		}

		if !validator.ValidateAddCartItemRequest(request) {
			httputils.WriteError(w, http.StatusBadRequest, validator.ErrInvalidCartItem)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		product, err := c.storage.GetProduct(ctx, entity.ProductID(request.ProductID))
		if err != nil {
			if errors.Is(err, err_storage.ErrProductNotFound) {
				httputils.WriteError(w, http.StatusNotFound, ErrProductNotFound)
				return
			}

			zap.L().Error("error while getting product", zap.String("product_id", request.ProductID), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		err = c.storage.AddCartItem(ctx, userID, converter.ConvertAddCartItemRequestToEntity(request, product))
		if err != nil {
			zap.L().Error("error while adding cart item", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *Cart) RemoveCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while removing cart item", zap.Error(err))
			return
		}

		productID := chi.URLParam(r, ProductIDParam)
		if len(productID) == 0 {
			httputils.WriteError(w, http.StatusBadRequest, validator.ErrInvalidCartItem)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err = c.storage.RemoveCartItems(ctx, userID, entity.ProductID(productID))
		if err != nil {
			zap.L().Error("error while removing cart item", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
