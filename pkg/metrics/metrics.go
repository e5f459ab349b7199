package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the storefront collectors. A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	WebhooksReceived     *prometheus.CounterVec
	ReconcileOutcomes    *prometheus.CounterVec
	OrdersCreated        prometheus.Counter
	OrderCreateFailures  *prometheus.CounterVec
	ProviderLookupSec    *prometheus.HistogramVec
	EventPublishFailures prometheus.Counter
	GatewayRequests      *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	webhooks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_webhooks_received_total",
		Help: "Inbound payment provider webhooks by provider.",
	}, []string{"provider"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_reconcile_outcomes_total",
		Help: "Reconciliation outcomes by provider and outcome.",
	}, []string{"provider", "outcome"})
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
	})
	createFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_create_failures_total",
	}, []string{"reason"})
	lookup := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_provider_lookup_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})
	publishFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_events_publish_failures_total",
	})
	gateway := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_gateway_requests_total",
	}, []string{"route", "status"})

	r.MustRegister(webhooks, outcomes, created, createFailures, lookup, publishFailures, gateway,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Registry{
		reg:                  r,
		WebhooksReceived:     webhooks,
		ReconcileOutcomes:    outcomes,
		OrdersCreated:        created,
		OrderCreateFailures:  createFailures,
		ProviderLookupSec:    lookup,
		EventPublishFailures: publishFailures,
		GatewayRequests:      gateway,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) WebhookReceived(provider string) {
	if r == nil {
		return
	}
	r.WebhooksReceived.WithLabelValues(provider).Inc()
}

func (r *Registry) ReconcileOutcome(provider, outcome string) {
	if r == nil {
		return
	}
	r.ReconcileOutcomes.WithLabelValues(provider, outcome).Inc()
}

func (r *Registry) OrderCreated() {
	if r == nil {
		return
	}
	r.OrdersCreated.Inc()
}

func (r *Registry) OrderCreateFailed(reason string) {
	if r == nil {
		return
	}
	r.OrderCreateFailures.WithLabelValues(reason).Inc()
}

func (r *Registry) ObserveProviderLookup(provider string, seconds float64) {
	if r == nil {
		return
	}
	r.ProviderLookupSec.WithLabelValues(provider).Observe(seconds)
}

func (r *Registry) EventPublishFailed() {
	if r == nil {
		return
	}
	r.EventPublishFailures.Inc()
}

func (r *Registry) GatewayRequest(route, status string) {
	if r == nil {
		return
	}
	r.GatewayRequests.WithLabelValues(route, status).Inc()
}
