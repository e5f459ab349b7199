// Package bootstrap assembles stores, services and payment adapters from config.
// Every binary builds its dependencies here once and passes them down explicitly.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogpg "github.com/dwikikusuma/storefront/internal/catalog/infra/postgres"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	customerpg "github.com/dwikikusuma/storefront/internal/customer/infra/postgres"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	orderpg "github.com/dwikikusuma/storefront/internal/order/infra/postgres"
	paymentapp "github.com/dwikikusuma/storefront/internal/payment/app"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider/clip"
	"github.com/dwikikusuma/storefront/internal/payment/provider/conekta"
	"github.com/dwikikusuma/storefront/internal/payment/provider/mercadopago"
	"github.com/dwikikusuma/storefront/internal/payment/provider/stripe"
	reconcileapp "github.com/dwikikusuma/storefront/internal/reconcile/app"
	reconcilepg "github.com/dwikikusuma/storefront/internal/reconcile/infra/postgres"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/events"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/postgres"
)

// checkoutConcurrency caps parallel catalog reads while pricing one cart.
const checkoutConcurrency = 10

// Backend is the set of store ports for one storage engine.
type Backend struct {
	Products  catalogapp.ProductRepo
	Customers customerapp.CustomerRepo
	Orders    orderapp.OrderRepo
	Reconcile reconcileapp.Store

	ping  func(ctx context.Context) error
	close func() error
}

func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

func MemoryBackend(st *memory.Store) *Backend {
	return &Backend{
		Products:  st.Products(),
		Customers: st.Customers(),
		Orders:    st.Orders(),
		Reconcile: st.Reconcile(),
		ping:      st.Ping,
	}
}

// OpenBackend opens the store named by cfg.StoreBackend. The caller closes it.
func OpenBackend(cfg config.Config, log *slog.Logger) (*Backend, error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return MemoryBackend(memory.New()), nil
	}

	db, err := postgres.Open(cfg.Postgres)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Products:  catalogpg.NewProductRepo(db),
		Customers: customerpg.NewCustomerRepo(db),
		Orders:    orderpg.NewOrderRepo(db),
		Reconcile: reconcilepg.NewStore(db),
		ping:      db.PingContext,
		close:     db.Close,
	}, nil
}

// Publisher returns a Kafka publisher when brokers are configured and a log publisher otherwise.
func Publisher(cfg config.Config, log *slog.Logger) (events.Publisher, func() error) {
	if cfg.KafkaBrokers == "" {
		return events.NewLogPublisher(log), func() error { return nil }
	}
	p := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	return p, p.Close
}

type Services struct {
	Catalog   *catalogapp.Service
	Checkout  *checkoutapp.Service
	Customers *customerapp.Service
	Orders    *orderapp.Service
	Engine    *reconcileapp.Engine
}

func NewServices(b *Backend, cfg config.Config, pub events.Publisher, m *metrics.Registry, log *slog.Logger) *Services {
	catalog := catalogapp.NewService(b.Products)
	customers := customerapp.NewService(b.Customers)
	checkout := checkoutapp.NewService(checkoutadapter.NewCatalogServiceReader(catalog), checkoutConcurrency)

	orders := orderapp.NewService(b.Orders,
		orderadapter.NewCustomerServiceResolver(customers),
		orderadapter.NewCheckoutPricer(checkout),
		pub, log.With("component", "order"),
		orderapp.WithMetrics(m),
	)
	engine := reconcileapp.NewEngine(b.Reconcile, pub, log.With("component", "reconcile"),
		reconcileapp.WithMetrics(m),
		reconcileapp.WithTimeout(cfg.DBTimeout),
	)

	return &Services{Catalog: catalog, Checkout: checkout, Customers: customers, Orders: orders, Engine: engine}
}

// PaymentAdapters builds one adapter per provider. Normalizers are always present;
// verifiers and lookups only when their credentials are configured.
func PaymentAdapters(cfg config.Config) (map[paymentdomain.Provider]paymentapp.Adapter, error) {
	st := paymentapp.Adapter{Normalizer: stripe.Normalizer{}}
	if c := cfg.Stripe; c.WebhookSecret != "" {
		st.Verifier = stripe.NewVerifier(c.WebhookSecret)
	}
	if c := cfg.Stripe; c.APIKey != "" {
		st.Lookup = stripe.NewLookup(c.BaseURL, c.APIKey, cfg.ProviderTimeout)
	}

	cl := paymentapp.Adapter{Normalizer: clip.Normalizer{}}
	if c := cfg.Clip; c.WebhookSecret != "" {
		cl.Verifier = clip.NewVerifier(c.WebhookSecret)
	}
	if c := cfg.Clip; c.APIKey != "" {
		cl.Lookup = clip.NewLookup(c.BaseURL, c.APIKey, cfg.ProviderTimeout)
	}

	co := paymentapp.Adapter{Normalizer: conekta.Normalizer{}}
	if c := cfg.Conekta; c.WebhookSecret != "" {
		v, err := conekta.NewVerifier(c.WebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("conekta webhook key: %w", err)
		}
		co.Verifier = v
	}
	if c := cfg.Conekta; c.APIKey != "" {
		co.Lookup = conekta.NewLookup(c.BaseURL, c.APIKey, cfg.ProviderTimeout)
	}

	mp := paymentapp.Adapter{Normalizer: mercadopago.Normalizer{}}
	if c := cfg.MercadoPago; c.WebhookSecret != "" {
		mp.Verifier = mercadopago.NewVerifier(c.WebhookSecret)
	}
	if c := cfg.MercadoPago; c.APIKey != "" {
		mp.Lookup = mercadopago.NewLookup(c.BaseURL, c.APIKey, cfg.ProviderTimeout)
	}

	return map[paymentdomain.Provider]paymentapp.Adapter{
		paymentdomain.ProviderStripe:      st,
		paymentdomain.ProviderClip:        cl,
		paymentdomain.ProviderConekta:     co,
		paymentdomain.ProviderMercadoPago: mp,
	}, nil
}

func NewIntake(cfg config.Config, m *metrics.Registry, log *slog.Logger) (*paymentapp.Intake, error) {
	adapters, err := PaymentAdapters(cfg)
	if err != nil {
		return nil, err
	}
	for p, a := range adapters {
		if a.Verifier == nil && !cfg.WebhookAllowUnsigned {
			log.Warn("no webhook secret configured, deliveries will be rejected", slog.String("provider", string(p)))
		}
	}
	return paymentapp.NewIntake(adapters, paymentapp.Options{
		AllowUnsigned: cfg.WebhookAllowUnsigned,
		LookupTimeout: cfg.ProviderTimeout,
		Metrics:       m,
	}, log.With("component", "payment")), nil
}
