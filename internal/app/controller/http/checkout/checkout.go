package checkout

//go:generate mockgen -source=checkout.go -destination=mock/checkout.go -package=mock

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/avGenie/go-checkout-system/internal/app/controller/http/utils"
	"github.com/avGenie/go-checkout-system/internal/app/converter"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
	"github.com/avGenie/go-checkout-system/internal/app/validator"
)

type CheckoutPreparer interface {
	PrepareCheckout(ctx context.Context, userID entity.UserID, intent entity.CheckoutIntent, contact entity.Contact) (entity.CheckoutSession, error)
}

type Checkout struct {
	preparer CheckoutPreparer

	keyID    string
	merchant string
}

func New(preparer CheckoutPreparer, keyID, merchant string) Checkout {
	return Checkout{
		preparer: preparer,
		keyID:    keyID,
		merchant: merchant,
	}
}

// GetKey returns the public gateway key id the widget is opened with.
func (c *Checkout) GetKey() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSON(w, http.StatusOK, model.KeyResponse{
			Key: c.keyID,
		})
	}
}

func (c *Checkout) GetOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while preparing checkout", zap.Error(err))
			return
		}

		var request model.CheckoutRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("error while decoding checkout request", zap.Error(err))
			return
		}

		if message, ok := validator.ValidateCheckoutRequest(request); !ok {
			httputils.WriteError(w, http.StatusBadRequest, message)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		session, err := c.preparer.PrepareCheckout(
			ctx,
			userID,
			converter.ConvertProductIDToIntent(request.ProductID),
			converter.ConvertContactRequestToEntity(request.Contact),
		)
		if err != nil {
			if errors.Is(err, usecase.ErrValidation) {
				httputils.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}

			zap.L().Error("error while preparing checkout", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		address := converter.ConvertShippingAddressToEntity(request.ShippingAddress)
		httputils.WriteJSON(w, http.StatusOK, converter.ConvertSessionToCheckoutOptions(c.keyID, c.merchant, session, address))
	}
}
