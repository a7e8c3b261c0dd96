package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/controller/http/cart"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/checkout"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/orders"
	httputils "github.com/avGenie/go-checkout-system/internal/app/controller/http/utils"
)

const corsMaxAge = 300

type Pinger interface {
	Ping(ctx context.Context) error
}

type Instrumenter interface {
	Middleware(h http.Handler) http.Handler
	Handler() http.Handler
}

type Handlers struct {
	Checkout checkout.Checkout
	Cart     cart.Cart
	Orders   orders.Order

	Pinger       Pinger
	Instrumenter Instrumenter
	TokenParser  *token.Parser

	AllowedOrigin string
}

func CreateRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))
	r.Use(h.Instrumenter.Middleware)
	r.Use(logger.LoggerMiddleware)

	r.Get("/ping", ping(h.Pinger))
	r.Method(http.MethodGet, "/metrics", h.Instrumenter.Handler())
	r.Get("/api/getkey", h.Checkout.GetKey())

	r.Group(func(r chi.Router) {
		r.Use(h.TokenParser.TokenParserMiddleware)

		r.Get("/api/cart", h.Cart.GetCart())
		r.Post("/api/cart/items", h.Cart.AddCartItem())
		r.Delete("/api/cart/items/{"+cart.ProductIDParam+"}", h.Cart.RemoveCartItem())

		r.Post("/api/checkout/options", h.Checkout.GetOptions())

		r.Post("/api/orders", h.Orders.CreateOrder())
		r.Get("/api/orders", h.Orders.GetUserOrders())
	})

	return r
}

func ping(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			zap.L().Error("storage ping failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
