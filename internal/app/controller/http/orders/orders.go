package orders

//go:generate mockgen -source=orders.go -destination=mock/orders.go -package=mock

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/avGenie/go-checkout-system/internal/app/controller/http/utils"
	"github.com/avGenie/go-checkout-system/internal/app/converter"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
	"github.com/avGenie/go-checkout-system/internal/app/validator"
)

const (
	statusProcessing  = "processing"
	processingMessage = "payment received, the order is being processed; contact support with the transaction id if it does not appear shortly"

	errCheckoutInProgress = "checkout is already in progress"
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, submission entity.Submission) (entity.Order, error)
}

type OrderProvider interface {
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
}

type Order struct {
	submitter OrderSubmitter
	provider  OrderProvider
}

func New(submitter OrderSubmitter, provider OrderProvider) Order {
	return Order{
		submitter: submitter,
		provider:  provider,
	}
}

func (p *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while creating order", zap.Error(err))
			return
		}

		var request model.CreateOrderRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("error while decoding create order request", zap.Error(err))
			return
		}

		if message, ok := validator.ValidateCreateOrderRequest(request); !ok {
			httputils.WriteError(w, http.StatusBadRequest, message)
			return
		}

		submission := converter.ConvertCreateOrderRequestToSubmission(userID, request)

		// the service bounds its own calls and outlives a client disconnect
		order, err := p.submitter.SubmitOrder(r.Context(), submission)
		if err != nil {
			p.writeSubmitError(w, userID, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToOutput(order))
	}
}

func (p *Order) GetUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting orders", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.provider.GetUserOrders(ctx, userID)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrdersForUserNotFound) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			zap.L().Error("error while getting user orders", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertStorageOrdersToOutputOrders(orders))
	}
}

func (p *Order) writeSubmitError(w http.ResponseWriter, userID entity.UserID, err error) {
	var reconciliation *usecase.ReconciliationError

	switch {
	case errors.As(err, &reconciliation):
		httputils.WriteJSON(w, http.StatusAccepted, model.ProcessingResponse{
			Status:        statusProcessing,
			Message:       processingMessage,
			TransactionID: reconciliation.TransactionID,
		})
	case errors.Is(err, usecase.ErrValidation):
		httputils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		httputils.WriteError(w, http.StatusConflict, errCheckoutInProgress)
	case errors.Is(err, usecase.ErrGateway):
		httputils.WriteError(w, http.StatusPaymentRequired, err.Error())
	default:
		zap.L().Error("error while submitting order", zap.String("user_id", userID.String()), zap.Error(err))
		httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
	}
}
