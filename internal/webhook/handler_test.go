package webhook_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	paymentapp "github.com/dwikikusuma/storefront/internal/payment/app"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider/mercadopago"
	"github.com/dwikikusuma/storefront/internal/payment/provider/stripe"
	reconcileapp "github.com/dwikikusuma/storefront/internal/reconcile/app"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/dwikikusuma/storefront/internal/webhook"
)

const stripeSecret = "whsec_test"

type env struct {
	store  *memory.Store
	orders *orderapp.Service
	server *httptest.Server

	mpReference atomic.Value
	mpDown      atomic.Bool
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := &env{store: memory.New()}

	catalog := catalogapp.NewService(e.store.Products())
	e.orders = orderapp.NewService(e.store.Orders(),
		orderadapter.NewCustomerServiceResolver(customerapp.NewService(e.store.Customers())),
		orderadapter.NewCheckoutPricer(checkoutapp.NewService(checkoutadapter.NewCatalogServiceReader(catalog), 2)),
		nil, log)

	e.mpReference.Store("")
	mpAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e.mpDown.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		ref := e.mpReference.Load().(string)
		_, _ = w.Write([]byte(`{"id":999,"status":"approved","external_reference":"` + ref + `"}`))
	}))
	t.Cleanup(mpAPI.Close)

	intake := paymentapp.NewIntake(map[paymentdomain.Provider]paymentapp.Adapter{
		paymentdomain.ProviderStripe: {Normalizer: stripe.Normalizer{}, Verifier: stripe.NewVerifier(stripeSecret)},
		paymentdomain.ProviderMercadoPago: {
			Normalizer: mercadopago.Normalizer{},
			Lookup:     mercadopago.NewLookup(mpAPI.URL, "token", time.Second),
		},
	}, paymentapp.Options{AllowUnsigned: true}, log)

	engine := reconcileapp.NewEngine(e.store.Reconcile(), nil, log)
	r := chi.NewRouter()
	webhook.NewHandler(intake, engine, log, nil).Routes(r)
	e.server = httptest.NewServer(r)
	t.Cleanup(e.server.Close)
	return e
}

func (e *env) order(t *testing.T, provider string) orderdomain.Order {
	t.Helper()
	ctx := context.Background()
	p, err := catalogapp.NewService(e.store.Products()).CreateProduct(ctx, catalogapp.CreateProductInput{
		SKU: fmt.Sprintf("SKU-%d", time.Now().UnixNano()), Name: "Tee", Currency: "MXN", Amount: 900,
	})
	require.NoError(t, err)
	o, err := e.orders.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		CustomerEmail: "ana@example.com",
		Provider:      provider,
		Items:         []orderdomain.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	return o
}

func (e *env) status(t *testing.T, id string) orderdomain.Status {
	t.Helper()
	o, err := e.orders.GetOrder(context.Background(), id)
	require.NoError(t, err)
	return o.Status
}

func (e *env) postStripe(t *testing.T, body []byte, signature string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/webhooks/stripe", bytes.NewReader(body))
	require.NoError(t, err)
	if signature != "" {
		req.Header.Set(stripe.SignatureHeader, signature)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func stripePaid(eventID, reference string) []byte {
	return []byte(`{"id":"` + eventID + `","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"order_reference":"` + reference + `"}}}}`)
}

func TestReceive_AppliesSignedEvent(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "stripe")
	body := stripePaid("evt_1", o.Reference)

	resp := e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"received":true}`, string(got))
	assert.Equal(t, orderdomain.StatusPaid, e.status(t, o.ID))

	resp = e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, e.store.Counts()["processed_events"])
}

func TestReceive_RejectsBadSignature(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "stripe")
	body := stripePaid("evt_1", o.Reference)

	resp := e.postStripe(t, body, stripe.Sign("whsec_other", time.Now(), body))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.postStripe(t, body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, orderdomain.StatusPending, e.status(t, o.ID))
	assert.Equal(t, 0, e.store.Counts()["processed_events"])
}

func TestReceive_MalformedPayloadIsAcknowledged(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "stripe")

	for _, body := range [][]byte{
		[]byte(`{"id":"evt_1","type":`),
		[]byte(`[]`),
		[]byte(`{"id":"evt_2","type":"payment_intent.succeeded","data":{"object":42}}`),
		[]byte(`{"id":"evt_3","type":"invoice.created","data":{"object":{}}}`),
	} {
		resp := e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
		assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}
	assert.Equal(t, orderdomain.StatusPending, e.status(t, o.ID))
	assert.Equal(t, 0, e.store.Counts()["processed_events"])
}

func TestReceive_StoreDownAsksForRedelivery(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "stripe")
	e.store.SetUnavailable(errors.New("connection refused"))

	body := stripePaid("evt_1", o.Reference)
	resp := e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	e.store.SetUnavailable(nil)
	resp = e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, orderdomain.StatusPaid, e.status(t, o.ID))
}

func TestReceive_RejectedWriteIsServerError(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "stripe")
	e.store.InjectFault(memory.FaultAfterStatusWrite, errors.New("check constraint violated"))

	body := stripePaid("evt_1", o.Reference)
	resp := e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, orderdomain.StatusPending, e.status(t, o.ID))

	e.store.InjectFault(memory.FaultAfterStatusWrite, nil)
	resp = e.postStripe(t, body, stripe.Sign(stripeSecret, time.Now(), body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, orderdomain.StatusPaid, e.status(t, o.ID))
}

func TestReceive_MercadoPagoLookup(t *testing.T) {
	e := newEnv(t)
	o := e.order(t, "mercadopago")
	e.mpReference.Store(o.Reference)

	post := func() *http.Response {
		resp, err := http.Post(e.server.URL+"/webhooks/mercadopago", "application/json",
			bytes.NewReader([]byte(`{"id":12345,"type":"payment","action":"payment.updated","data":{"id":"999"}}`)))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	e.mpDown.Store(true)
	assert.Equal(t, http.StatusServiceUnavailable, post().StatusCode)
	assert.Equal(t, orderdomain.StatusPending, e.status(t, o.ID))

	e.mpDown.Store(false)
	assert.Equal(t, http.StatusOK, post().StatusCode)
	assert.Equal(t, orderdomain.StatusPaid, e.status(t, o.ID))
}

func TestReceive_UnknownProvider(t *testing.T) {
	e := newEnv(t)
	resp, err := http.Post(e.server.URL+"/webhooks/paypal", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2, err := http.Post(e.server.URL+"/webhooks/clip", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
