package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
)

var ErrUnknownProvider = errors.New("unknown payment provider")

// Adapter bundles what the intake needs for one provider. Verifier and Lookup are optional.
type Adapter struct {
	Normalizer domain.Normalizer
	Verifier   domain.SignatureVerifier
	Lookup     domain.PaymentLookup
}

type Options struct {
	// AllowUnsigned accepts payloads from providers without a configured verifier.
	AllowUnsigned bool
	LookupTimeout time.Duration
	Metrics       *metrics.Registry
}

// Intake authenticates and normalizes inbound provider notifications.
type Intake struct {
	adapters map[domain.Provider]Adapter
	opts     Options
	log      *slog.Logger
}

func NewIntake(adapters map[domain.Provider]Adapter, opts Options, log *slog.Logger) *Intake {
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = 5 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Intake{adapters: adapters, opts: opts, log: log}
}

// Ingest verifies the request signature and normalizes the body. When the payload
// carries no trustworthy status the status is read back from the provider. When
// it claims paid or refunded and a lookup is configured, the provider has to
// confirm the claim before the event is passed on.
//
// Errors: ErrUnknownProvider, domain.ErrSignature, domain.ErrProviderCommunication.
// Everything else is reported as an ignored Normalization.
func (s *Intake) Ingest(ctx context.Context, p domain.Provider, header http.Header, body []byte) (domain.Normalization, error) {
	a, ok := s.adapters[p]
	if !ok || a.Normalizer == nil {
		return domain.Normalization{}, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}

	switch {
	case a.Verifier != nil:
		if err := a.Verifier.Verify(header, body); err != nil {
			return domain.Normalization{}, err
		}
	case !s.opts.AllowUnsigned:
		return domain.Normalization{}, fmt.Errorf("%w: no verifier configured for %s", domain.ErrSignature, p)
	}

	n := normalize(a.Normalizer, body)
	switch {
	case n.Ignored():
		return n, nil
	case n.Event.RequiresLookup:
		if a.Lookup == nil {
			s.log.Warn("payment lookup not configured", "provider", p, "event_id", n.ProviderEventID)
			return domain.Ignore(n.ProviderEventID, n.EventType, "payment lookup not configured"), nil
		}
		return s.resolve(ctx, p, a.Lookup, n)
	case a.Lookup != nil && needsConfirmation(n.Event.TargetStatus):
		return s.confirm(ctx, p, a.Lookup, n)
	}
	return n, nil
}

// resolve takes the status of a payload that carries none from the provider.
func (s *Intake) resolve(ctx context.Context, p domain.Provider, lk domain.PaymentLookup, n domain.Normalization) (domain.Normalization, error) {
	pay, err := s.fetch(ctx, p, lk, n.Event.ExternalID)
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return domain.Ignore(n.ProviderEventID, n.EventType, "payment not found at provider"), nil
	case err != nil:
		return n, err
	}
	if !pay.Known {
		return domain.Ignore(n.ProviderEventID, n.EventType, "provider status "+pay.ProviderStatus+" is not a transition"), nil
	}

	ev := *n.Event
	ev.TargetStatus = pay.Status
	ev.RequiresLookup = false
	if ev.CorrelationID == "" {
		ev.CorrelationID = pay.Reference
	}
	if pay.ExternalID != "" {
		ev.ExternalID = pay.ExternalID
	}
	n.Event = &ev
	return n, nil
}

// confirm checks a payload's paid or refunded claim against the provider.
func (s *Intake) confirm(ctx context.Context, p domain.Provider, lk domain.PaymentLookup, n domain.Normalization) (domain.Normalization, error) {
	claim := n.Event.TargetStatus
	if n.Event.ExternalID == "" {
		return domain.Ignore(n.ProviderEventID, n.EventType, "no provider payment id to confirm "+string(claim)), nil
	}

	pay, err := s.fetch(ctx, p, lk, n.Event.ExternalID)
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return domain.Ignore(n.ProviderEventID, n.EventType, "payment not found at provider"), nil
	case err != nil:
		return n, err
	}
	if !pay.Known || !confirms(claim, pay.Status) {
		s.log.Warn("provider does not confirm webhook status",
			"provider", p, "event_id", n.ProviderEventID, "claimed", claim, "provider_status", pay.ProviderStatus)
		return domain.Ignore(n.ProviderEventID, n.EventType,
			fmt.Sprintf("provider reports %s, payload claims %s", pay.ProviderStatus, claim)), nil
	}

	if n.Event.CorrelationID == "" && pay.Reference != "" {
		ev := *n.Event
		ev.CorrelationID = pay.Reference
		n.Event = &ev
	}
	return n, nil
}

func (s *Intake) fetch(ctx context.Context, p domain.Provider, lk domain.PaymentLookup, externalID string) (domain.Payment, error) {
	lctx, cancel := context.WithTimeout(ctx, s.opts.LookupTimeout)
	defer cancel()

	start := time.Now()
	pay, err := lk.LookupPayment(lctx, externalID)
	s.opts.Metrics.ObserveProviderLookup(string(p), time.Since(start).Seconds())
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) && !errors.Is(err, domain.ErrProviderCommunication) {
		err = fmt.Errorf("%w: %v", domain.ErrProviderCommunication, err)
	}
	return pay, err
}

func needsConfirmation(s orderdomain.Status) bool {
	return s == orderdomain.StatusPaid || s == orderdomain.StatusRefunded
}

// confirms reports whether the provider's status backs the claimed one.
// A refunded payment was paid first, so it backs a late paid claim.
func confirms(claim, actual orderdomain.Status) bool {
	return claim == actual || (claim == orderdomain.StatusPaid && actual == orderdomain.StatusRefunded)
}

// normalize shields the caller from a normalizer that panics on hostile input.
func normalize(nz domain.Normalizer, body []byte) (n domain.Normalization) {
	defer func() {
		if r := recover(); r != nil {
			n = domain.Ignore("", "", fmt.Sprintf("normalizer panic: %v", r))
		}
	}()
	return nz.Normalize(body)
}
