package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/config"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

const (
	capturePath       = `/v1/payments/%s/capture`
	idempotencyHeader = `Idempotency-Key`
	capturedStatus    = `captured`

	maxResponseSize = 1 << 20
)

var (
	ErrEmptyPaymentReference = errors.New("empty payment reference")
	ErrUnexpectedStatus      = errors.New("unexpected status from payment gateway")

	ErrCapturedAmountMismatch = errors.New("captured amount does not match order total")
)

type Client struct {
	client http.Client

	address   string
	keyID     string
	keySecret string
}

func New(cfg config.Config) *Client {
	client := http.Client{
		Timeout: cfg.GatewayTimeout,
	}

	return &Client{
		client:    client,
		address:   strings.TrimRight(cfg.GatewayAddr, "/"),
		keyID:     cfg.GatewayKeyID,
		keySecret: cfg.GatewayKeySecret,
	}
}

// Authorize captures the payment the buyer approved in the checkout widget.
// A declined payment is reported through the returned Authorization; an error
// means the outcome is unknown.
func (c *Client) Authorize(ctx context.Context, request entity.AuthorizeRequest) (entity.Authorization, error) {
	if len(request.PaymentReference) == 0 {
		return entity.Authorization{}, ErrEmptyPaymentReference
	}

	body, err := json.Marshal(model.CaptureRequest{
		Amount:   request.Amount,
		Currency: request.Currency,
		Notes:    request.Notes,
	})
	if err != nil {
		return entity.Authorization{}, fmt.Errorf("cannot marshal capture request: %w", err)
	}

	address := c.address + fmt.Sprintf(capturePath, url.PathEscape(request.PaymentReference))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, address, bytes.NewReader(body))
	if err != nil {
		return entity.Authorization{}, fmt.Errorf("cannot create request for payment gateway: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(idempotencyHeader, request.IdempotencyKey)

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		return entity.Authorization{}, fmt.Errorf("cannot send request to payment gateway: %w", err)
	}
	defer res.Body.Close()

	zap.L().Debug(
		"payment gateway responded",
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return c.processCaptureResponse(res, request)
}

func (c *Client) processCaptureResponse(res *http.Response, request entity.AuthorizeRequest) (entity.Authorization, error) {
	status := res.StatusCode
	body := io.LimitReader(res.Body, maxResponseSize)

	if status >= http.StatusInternalServerError {
		return entity.Authorization{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	if status >= http.StatusBadRequest {
		var response model.GatewayError
		if err := json.NewDecoder(body).Decode(&response); err != nil {
			zap.L().Warn("error while decoding payment gateway error", zap.Int("status", status), zap.Error(err))
		}

		message := response.Error.Description
		if len(message) == 0 {
			message = fmt.Sprintf("payment gateway declined with status %d", status)
		}

		return entity.Authorization{
			Outcome:      entity.OutcomeFailure,
			ErrorMessage: message,
		}, nil
	}

	if status != http.StatusOK {
		return entity.Authorization{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var payment model.GatewayPayment
	if err := json.NewDecoder(body).Decode(&payment); err != nil {
		return entity.Authorization{}, fmt.Errorf("error while decoding payment gateway response: %w", err)
	}

	if payment.Status != capturedStatus {
		return entity.Authorization{
			Outcome:      entity.OutcomeFailure,
			ErrorMessage: fmt.Sprintf("payment is %s", payment.Status),
		}, nil
	}

	if payment.Amount != request.Amount || !strings.EqualFold(payment.Currency, request.Currency) {
		zap.L().Error(
			"captured amount differs from requested, payment needs follow-up",
			zap.String("transaction_id", payment.ID),
			zap.String("checkout_id", request.IdempotencyKey),
			zap.Int64("requested", request.Amount),
			zap.String("requested_currency", request.Currency),
			zap.Int64("captured", payment.Amount),
			zap.String("captured_currency", payment.Currency),
		)

		return entity.Authorization{
			Outcome:      entity.OutcomeFailure,
			ErrorMessage: ErrCapturedAmountMismatch.Error(),
		}, nil
	}

	return entity.Authorization{
		Outcome:       entity.OutcomeSuccess,
		TransactionID: payment.ID,
	}, nil
}
