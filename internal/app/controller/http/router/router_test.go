package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-checkout-system/internal/app/controller/http/cart"
	cartmock "github.com/avGenie/go-checkout-system/internal/app/controller/http/cart/mock"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/checkout"
	checkoutmock "github.com/avGenie/go-checkout-system/internal/app/controller/http/checkout/mock"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/orders"
	ordersmock "github.com/avGenie/go-checkout-system/internal/app/controller/http/orders/mock"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/metrics"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/converter"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/crypto"
)

const (
	testOrigin = "http://localhost:3000"
	testSecret = "0123456789abcdef0123456789abcdef"
	testUserID = "ac2a4811-4f10-487f-bde3-e39a14af7cd8"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

type testRouter struct {
	handler   http.Handler
	cart      *cartmock.MockCartStorage
	tokenizer *crypto.Tokenizer
}

func newTestRouter(t *testing.T, pingErr error) testRouter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cartStorage := cartmock.NewMockCartStorage(ctrl)
	tokenizer := crypto.NewTokenizer(testSecret)

	handler := CreateRouter(Handlers{
		Checkout:      checkout.New(checkoutmock.NewMockCheckoutPreparer(ctrl), "rzp_test_1DP5mmOlF5G5ag", "A Touch of Arts"),
		Cart:          cart.New(cartStorage),
		Orders:        orders.New(ordersmock.NewMockOrderSubmitter(ctrl), ordersmock.NewMockOrderProvider(ctrl)),
		Pinger:        pinger{err: pingErr},
		Instrumenter:  metrics.NewWithRegistry(prometheus.NewRegistry()),
		TokenParser:   token.NewParser(tokenizer),
		AllowedOrigin: testOrigin,
	})

	return testRouter{
		handler:   handler,
		cart:      cartStorage,
		tokenizer: tokenizer,
	}
}

func TestPublicRoutes(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pingErr error

		statusCode int
	}{
		{
			name:       "get key",
			path:       "/api/getkey",
			statusCode: http.StatusOK,
		},
		{
			name:       "ping",
			path:       "/ping",
			statusCode: http.StatusOK,
		},
		{
			name:       "ping with storage down",
			path:       "/ping",
			pingErr:    errors.New("connection refused"),
			statusCode: http.StatusInternalServerError,
		},
		{
			name:       "metrics",
			path:       "/metrics",
			statusCode: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router := newTestRouter(t, test.pingErr)

			writer := httptest.NewRecorder()
			router.handler.ServeHTTP(writer, httptest.NewRequest(http.MethodGet, test.path, nil))

			assert.Equal(t, test.statusCode, writer.Code)
		})
	}
}

func TestProtectedRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	writer := httptest.NewRecorder()
	router.handler.ServeHTTP(writer, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, writer.Code)

	router.cart.EXPECT().GetCart(gomock.Any(), entity.UserID(testUserID)).Return(entity.Cart{BuyerID: testUserID}, nil)

	jwtToken, err := router.tokenizer.BuildJWTString(testUserID)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	request.Header.Set(usecase.AuthHeader, "Bearer "+jwtToken)

	writer = httptest.NewRecorder()
	router.handler.ServeHTTP(writer, request)
	assert.Equal(t, http.StatusOK, writer.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, nil)

	request := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	request.Header.Set("Origin", testOrigin)
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	writer := httptest.NewRecorder()
	router.handler.ServeHTTP(writer, request)

	assert.Equal(t, testOrigin, writer.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", writer.Header().Get("Access-Control-Allow-Credentials"))

	request = httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	request.Header.Set("Origin", "http://evil.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	writer = httptest.NewRecorder()
	router.handler.ServeHTTP(writer, request)

	assert.Empty(t, writer.Header().Get("Access-Control-Allow-Origin"))
}
