package checkout

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
)

const (
	storageTimeout = 3 * time.Second
	publishTimeout = 2 * time.Second

	notesAddressKey = "address"
)

type Storage interface {
	GetCart(ctx context.Context, userID entity.UserID) (entity.Cart, error)
	RemoveCartItems(ctx context.Context, userID entity.UserID, productIDs ...entity.ProductID) error
	ClearCart(ctx context.Context, userID entity.UserID) error
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
}

type Gateway interface {
	Authorize(ctx context.Context, request entity.AuthorizeRequest) (entity.Authorization, error)
}

type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type Notifier interface {
	Publish(ctx context.Context, event entity.CheckoutEvent) error
}

type Recorder interface {
	ObserveAttempt(state string)
	ObserveGatewayCall(outcome string, duration time.Duration)
}

type Params struct {
	Builder        *Builder
	Storage        Storage
	Gateway        Gateway
	Guard          Guard
	Notifier       Notifier
	Recorder       Recorder
	GatewayTimeout time.Duration
}

type Service struct {
	builder        *Builder
	storage        Storage
	gateway        Gateway
	guard          Guard
	notifier       Notifier
	recorder       Recorder
	gatewayTimeout time.Duration

	newCheckoutID func() string
}

func New(params Params) *Service {
	service := &Service{
		builder:        params.Builder,
		storage:        params.Storage,
		gateway:        params.Gateway,
		guard:          params.Guard,
		notifier:       params.Notifier,
		recorder:       params.Recorder,
		gatewayTimeout: params.GatewayTimeout,
		newCheckoutID:  uuid.NewString,
	}

	if service.notifier == nil {
		service.notifier = nopNotifier{}
	}
	if service.recorder == nil {
		service.recorder = nopRecorder{}
	}

	return service
}

// PrepareCheckout computes the checkout widget payload from the stored cart.
// Nothing is charged or persisted.
func (s *Service) PrepareCheckout(ctx context.Context, userID entity.UserID, intent entity.CheckoutIntent, contact entity.Contact) (entity.CheckoutSession, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return s.builder.Build(cart, intent, contact)
}

// SubmitOrder charges the buyer through the gateway and records the order.
// The gateway is called at most once per invocation and strictly before the
// order is stored.
func (s *Service) SubmitOrder(ctx context.Context, submission entity.Submission) (entity.Order, error) {
	if submission.ShippingAddress.Empty() {
		return entity.Order{}, fmt.Errorf("%w: shipping address is empty", usecase.ErrValidation)
	}

	if len(submission.PaymentReference) == 0 {
		return entity.Order{}, fmt.Errorf("%w: payment reference is empty", usecase.ErrValidation)
	}

	release, err := s.guard.Acquire(ctx, submission.BuyerID.String())
	if err != nil {
		if errors.Is(err, err_storage.ErrSubmissionLocked) {
			return entity.Order{}, fmt.Errorf("%w: %s", usecase.ErrCheckoutInProgress, submission.BuyerID)
		}

		return entity.Order{}, fmt.Errorf("error while acquiring checkout guard: %w", err)
	}
	defer release()

	cart, err := s.loadCart(ctx, submission.BuyerID)
	if err != nil {
		return entity.Order{}, err
	}

	session, err := s.builder.Build(cart, submission.Intent, submission.Contact)
	if err != nil {
		return entity.Order{}, err
	}

	attempt := newAttempt(s.newCheckoutID(), submission.BuyerID, session)

	zap.L().Info(
		"checkout attempt initiated",
		zap.String("checkout_id", attempt.ID),
		zap.String("user_id", submission.BuyerID.String()),
		zap.Int64("amount", session.Amount),
		zap.String("currency", session.Currency),
	)

	// the charge and everything after it must outlive a client disconnect
	detached := context.WithoutCancel(ctx)

	authorization, err := s.authorize(detached, attempt, submission)
	if err != nil {
		s.advance(attempt, StateRejected)
		return entity.Order{}, err
	}

	attempt.TransactionID = authorization.TransactionID
	s.advance(attempt, StateConfirmed)

	order, err := s.createOrder(detached, attempt, submission)
	if err != nil {
		s.advance(attempt, StateReconciliationNeeded)

		zap.L().Error(
			"payment captured but order was not stored, manual reconciliation needed",
			zap.String("checkout_id", attempt.ID),
			zap.String("user_id", submission.BuyerID.String()),
			zap.String("transaction_id", attempt.TransactionID),
			zap.Int64("amount", session.Amount),
			zap.String("currency", session.Currency),
			zap.Error(err),
		)
		s.publish(detached, attempt, entity.EventReconciliationNeeded, "")

		return entity.Order{}, &usecase.ReconciliationError{
			CheckoutID:    attempt.ID,
			TransactionID: attempt.TransactionID,
			Err:           err,
		}
	}

	s.advance(attempt, StateCompleted)
	s.removePurchased(detached, submission, session)
	s.publish(detached, attempt, entity.EventOrderCompleted, order.ID)

	zap.L().Info(
		"checkout completed",
		zap.String("checkout_id", attempt.ID),
		zap.String("order_id", order.ID.String()),
		zap.String("transaction_id", attempt.TransactionID),
	)

	return order, nil
}

func (s *Service) loadCart(ctx context.Context, userID entity.UserID) (entity.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	cart, err := s.storage.GetCart(ctx, userID)
	if err != nil {
		return entity.Cart{}, fmt.Errorf("error while loading cart: %w", err)
	}

	return cart, nil
}

func (s *Service) authorize(ctx context.Context, attempt *Attempt, submission entity.Submission) (entity.Authorization, error) {
	ctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	request := entity.AuthorizeRequest{
		IdempotencyKey:   attempt.ID,
		Amount:           attempt.Session.Amount,
		Currency:         attempt.Session.Currency,
		Contact:          attempt.Session.Contact,
		PaymentReference: submission.PaymentReference,
		Notes: map[string]string{
			notesAddressKey: submission.ShippingAddress.Address,
		},
	}

	start := time.Now()
	authorization, err := s.gateway.Authorize(ctx, request)
	duration := time.Since(start)

	if err != nil {
		s.recorder.ObserveGatewayCall("error", duration)
		zap.L().Warn("payment gateway call failed", zap.String("checkout_id", attempt.ID), zap.Error(err))

		return entity.Authorization{}, fmt.Errorf("%w: %w", usecase.ErrGateway, err)
	}

	if authorization.Outcome != entity.OutcomeSuccess {
		s.recorder.ObserveGatewayCall("failure", duration)
		zap.L().Info(
			"payment gateway rejected payment",
			zap.String("checkout_id", attempt.ID),
			zap.String("reason", authorization.ErrorMessage),
		)

		return entity.Authorization{}, fmt.Errorf("%w: %s", usecase.ErrGateway, authorization.ErrorMessage)
	}

	if len(authorization.TransactionID) == 0 {
		s.recorder.ObserveGatewayCall("failure", duration)
		return entity.Authorization{}, fmt.Errorf("%w: gateway returned empty transaction id", usecase.ErrGateway)
	}

	s.recorder.ObserveGatewayCall("success", duration)

	return authorization, nil
}

func (s *Service) createOrder(ctx context.Context, attempt *Attempt, submission entity.Submission) (entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	order := entity.Order{
		BuyerID:          submission.BuyerID,
		ShippingAddress:  submission.ShippingAddress,
		OrderedProducts:  attempt.Session.Products,
		ProductsQuantity: attempt.Session.ProductsQuantity,
		TotalPrice:       attempt.Session.TotalPrice,
		PaymentInfo: entity.PaymentInfo{
			TransactionID: attempt.TransactionID,
			Status:        entity.StatusSuccessfulPayment,
		},
	}

	return s.storage.CreateOrder(ctx, order)
}

func (s *Service) removePurchased(ctx context.Context, submission entity.Submission, session entity.CheckoutSession) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var err error
	if submission.Intent.Kind == entity.IntentSingleItem {
		err = s.storage.RemoveCartItems(ctx, submission.BuyerID, session.ProductIDs()...)
	} else {
		err = s.storage.ClearCart(ctx, submission.BuyerID)
	}

	if err != nil {
		zap.L().Warn(
			"error while removing purchased items from cart",
			zap.String("user_id", submission.BuyerID.String()),
			zap.Error(err),
		)
	}
}

func (s *Service) publish(ctx context.Context, attempt *Attempt, eventType entity.CheckoutEventType, orderID entity.OrderID) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	event := entity.CheckoutEvent{
		Type:          eventType,
		CheckoutID:    attempt.ID,
		OrderID:       orderID,
		BuyerID:       attempt.BuyerID,
		TransactionID: attempt.TransactionID,
		Amount:        attempt.Session.Amount,
		Currency:      attempt.Session.Currency,
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.notifier.Publish(ctx, event); err != nil {
		zap.L().Error(
			"error while publishing checkout event",
			zap.String("type", string(eventType)),
			zap.String("checkout_id", attempt.ID),
			zap.Error(err),
		)
	}
}

func (s *Service) advance(attempt *Attempt, state State) {
	if err := attempt.transition(state); err != nil {
		zap.L().DPanic("checkout state machine violated", zap.String("checkout_id", attempt.ID), zap.Error(err))
		return
	}

	s.recorder.ObserveAttempt(string(state))

	if attempt.terminal() {
		zap.L().Debug("checkout attempt finished", zap.String("checkout_id", attempt.ID), zap.String("state", string(state)))
	}
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, entity.CheckoutEvent) error { return nil }

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt(string)                    {}
func (nopRecorder) ObserveGatewayCall(string, time.Duration) {}
