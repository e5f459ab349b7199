package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogv1 "github.com/dwikikusuma/storefront/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/ratelimit"
)

const (
	maxCheckoutBody = 64 << 10
	rpcTimeout      = 10 * time.Second
)

type api struct {
	catalog  catalogv1.CatalogServiceClient
	checkout checkoutv1.CheckoutServiceClient
	orders   orderv1.OrderServiceClient
	auth     *authenticator
	metrics  *metrics.Registry
	log      *slog.Logger
}

func (a *api) routes(limiter *ratelimit.PerIP) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(a.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", a.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/products", a.listProducts)
		r.Get("/products/{id}", a.getProduct)
		r.Post("/checkout/quote", a.quote)
		r.With(a.auth.Optional).Post("/checkout", a.createCheckout)
		r.With(a.auth.Required).Get("/orders/{number}", a.getOrder)
		r.With(a.auth.Required).Get("/me/orders", a.myOrders)
	})
	return r
}

func (a *api) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		a.metrics.GatewayRequest(route, strconv.Itoa(ww.Status()))
	})
}

func (a *api) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a positive integer")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.catalog.ListProducts(ctx, &catalogv1.ListProductsRequest{Query: q.Get("q"), Limit: int32(limit), Cursor: q.Get("cursor")})
	if err != nil {
		a.logRPCError(r, "list products", err)
		writeGRPCError(w, err)
		return
	}

	visible := make([]*catalogv1.Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		if p.GetStatus() != "draft" {
			visible = append(visible, p)
		}
	}
	resp.Products = visible
	writeProto(w, http.StatusOK, resp)
}

func (a *api) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.catalog.GetProduct(ctx, &catalogv1.GetProductRequest{Id: chi.URLParam(r, "id")})
	if err != nil {
		a.logRPCError(r, "get product", err)
		writeGRPCError(w, err)
		return
	}
	if resp.GetProduct() == nil || resp.GetProduct().GetStatus() == "draft" {
		writeGRPCError(w, status.Error(codes.NotFound, "product not found"))
		return
	}
	writeProto(w, http.StatusOK, resp)
}

func (a *api) quote(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckoutBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "INVALID_ARGUMENT", "request body too large")
		return
	}
	if err := validateJSONSchema(quoteLoader, body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	var req checkoutv1.QuoteRequest
	if err := protoIn.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed JSON")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.checkout.Quote(ctx, &req)
	if err != nil {
		a.logRPCError(r, "quote", err)
		writeGRPCError(w, err)
		return
	}
	writeProto(w, http.StatusOK, resp)
}

func (a *api) createCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckoutBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "INVALID_ARGUMENT", "request body too large")
		return
	}
	if err := validateJSONSchema(checkoutLoader, body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	var req orderv1.CreateOrderRequest
	if err := protoIn.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed JSON")
		return
	}
	if s, ok := sessionFrom(r.Context()); ok {
		if req.CustomerEmail != "" && !strings.EqualFold(req.CustomerEmail, s.Email) {
			writeError(w, http.StatusForbidden, "PERMISSION_DENIED", "customer_email does not match the signed-in customer")
			return
		}
		req.CustomerEmail = s.Email
	}
	if req.CustomerEmail == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "customer_email is required for guest checkout")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.orders.CreateOrder(ctx, &req)
	if err != nil {
		a.logRPCError(r, "create order", err)
		writeGRPCError(w, err)
		return
	}
	writeProto(w, http.StatusCreated, resp)
}

// getOrder answers 404 for orders of other customers so numbers cannot be probed.
func (a *api) getOrder(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.orders.GetOrder(ctx, &orderv1.GetOrderRequest{Number: chi.URLParam(r, "number")})
	if err != nil {
		a.logRPCError(r, "get order", err)
		writeGRPCError(w, err)
		return
	}
	if resp.GetOrder() == nil || !strings.EqualFold(resp.GetOrder().GetCustomerEmail(), s.Email) {
		writeGRPCError(w, status.Error(codes.NotFound, "order not found"))
		return
	}
	writeProto(w, http.StatusOK, resp)
}

func (a *api) myOrders(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a positive integer")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()
	resp, err := a.orders.ListCustomerOrders(ctx, &orderv1.ListCustomerOrdersRequest{Email: s.Email, Limit: int32(limit)})
	if err != nil {
		a.logRPCError(r, "list orders", err)
		writeGRPCError(w, err)
		return
	}
	writeProto(w, http.StatusOK, resp)
}

func (a *api) logRPCError(r *http.Request, op string, err error) {
	level := slog.LevelWarn
	switch status.Code(err) {
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DeadlineExceeded:
		level = slog.LevelError
	}
	a.log.Log(r.Context(), level, op+" failed", slog.String("path", r.URL.Path), slog.Any("err", err))
}
