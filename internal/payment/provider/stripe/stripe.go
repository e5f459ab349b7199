// Package stripe adapts Stripe webhook events.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider"
	stripesdk "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	SignatureHeader  = "Stripe-Signature"
	DefaultTolerance = 5 * time.Minute
	DefaultBaseURL   = "https://api.stripe.com"
)

var eventStatus = map[string]orderdomain.Status{
	"payment_intent.succeeded":                 orderdomain.StatusPaid,
	"charge.succeeded":                         orderdomain.StatusPaid,
	"checkout.session.completed":               orderdomain.StatusPaid,
	"checkout.session.async_payment_succeeded": orderdomain.StatusPaid,
	"payment_intent.canceled":                  orderdomain.StatusCancelled,
	"payment_intent.payment_failed":            orderdomain.StatusCancelled,
	"checkout.session.expired":                 orderdomain.StatusCancelled,
	"checkout.session.async_payment_failed":    orderdomain.StatusCancelled,
	"charge.refunded":                          orderdomain.StatusRefunded,
	"charge.dispute.created":                   orderdomain.StatusRefunded,
}

type event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type object struct {
	ID                string            `json:"id"`
	Object            string            `json:"object"`
	PaymentIntent     json.RawMessage   `json:"payment_intent"`
	Charge            json.RawMessage   `json:"charge"`
	ClientReferenceID string            `json:"client_reference_id"`
	PaymentStatus     string            `json:"payment_status"`
	Metadata          provider.Metadata `json:"metadata"`
}

// Normalizer reads Stripe event objects.
type Normalizer struct{}

func (Normalizer) Provider() domain.Provider { return domain.ProviderStripe }

func (Normalizer) Normalize(raw []byte) domain.Normalization {
	var ev event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return domain.Ignore("", "", "malformed payload: "+err.Error())
	}
	if ev.ID == "" {
		return domain.Ignore("", ev.Type, "missing event id")
	}

	target, ok := eventStatus[ev.Type]
	if !ok {
		return domain.Ignore(ev.ID, ev.Type, "unhandled event type")
	}

	var obj object
	if len(ev.Data.Object) == 0 {
		return domain.Ignore(ev.ID, ev.Type, "missing data.object")
	}
	if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
		return domain.Ignore(ev.ID, ev.Type, "malformed data.object: "+err.Error())
	}
	if ev.Type == "checkout.session.completed" && obj.PaymentStatus != "paid" {
		return domain.Ignore(ev.ID, ev.Type, "checkout session not paid yet")
	}

	externalID := obj.ID
	if obj.Object != "payment_intent" {
		externalID = provider.FirstNonEmpty(expandableID(obj.PaymentIntent), expandableID(obj.Charge), obj.ID)
	}
	correlation := provider.FirstNonEmpty(obj.Metadata[provider.OrderReferenceKey], obj.ClientReferenceID)
	if correlation == "" && externalID == "" {
		return domain.Ignore(ev.ID, ev.Type, "no correlation identifier")
	}

	return domain.Normalization{
		ProviderEventID: ev.ID,
		EventType:       ev.Type,
		Event: &domain.PaymentEvent{
			Provider:        domain.ProviderStripe,
			ProviderEventID: ev.ID,
			EventType:       ev.Type,
			CorrelationID:   correlation,
			ExternalID:      externalID,
			TargetStatus:    target,
		},
	}
}

// expandableID reads a field that is either an id string or an expanded object.
func expandableID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.ID
	}
	return ""
}

// Verifier checks the Stripe-Signature header with stripe-go's webhook package.
type Verifier struct {
	Secret    string
	Tolerance time.Duration
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{Secret: secret, Tolerance: DefaultTolerance}
}

func (v *Verifier) Verify(header http.Header, body []byte) error {
	sig := header.Get(SignatureHeader)
	if sig == "" {
		return fmt.Errorf("%w: missing %s", domain.ErrSignature, SignatureHeader)
	}
	if err := webhook.ValidatePayloadWithTolerance(body, sig, v.Secret, v.Tolerance); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignature, err)
	}
	return nil
}

// Sign builds a Stripe-Signature header value. Used by tests and local tooling.
func Sign(secret string, ts time.Time, body []byte) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   body,
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

// Lookup reads payment intents, or legacy charges, from the Stripe API.
type Lookup struct {
	intents paymentintent.Client
	charges charge.Client
}

func NewLookup(baseURL, secretKey string, timeout time.Duration) *Lookup {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	backend := stripesdk.GetBackendWithConfig(stripesdk.APIBackend, &stripesdk.BackendConfig{
		URL:               stripesdk.String(strings.TrimRight(baseURL, "/")),
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripesdk.Int64(0),
		LeveledLogger:     &stripesdk.LeveledLogger{Level: stripesdk.LevelNull},
	})
	return &Lookup{
		intents: paymentintent.Client{B: backend, Key: secretKey},
		charges: charge.Client{B: backend, Key: secretKey},
	}
}

func (l *Lookup) LookupPayment(ctx context.Context, externalID string) (domain.Payment, error) {
	if strings.HasPrefix(externalID, "ch_") {
		return l.lookupCharge(ctx, externalID)
	}

	params := &stripesdk.PaymentIntentParams{Params: stripesdk.Params{Context: ctx}}
	params.AddExpand("latest_charge")
	pi, err := l.intents.Get(externalID, params)
	if err != nil {
		return domain.Payment{}, lookupErr(externalID, err)
	}

	providerStatus := string(pi.Status)
	if refundedOrDisputed(pi.LatestCharge) {
		providerStatus = "refunded"
	}
	return payment(pi.ID, pi.Metadata, providerStatus), nil
}

func (l *Lookup) lookupCharge(ctx context.Context, id string) (domain.Payment, error) {
	ch, err := l.charges.Get(id, &stripesdk.ChargeParams{Params: stripesdk.Params{Context: ctx}})
	if err != nil {
		return domain.Payment{}, lookupErr(id, err)
	}
	providerStatus := string(ch.Status)
	if refundedOrDisputed(ch) {
		providerStatus = "refunded"
	}
	return payment(ch.ID, ch.Metadata, providerStatus), nil
}

// A payment intent stays "succeeded" after a refund; the charge records it.
func refundedOrDisputed(ch *stripesdk.Charge) bool {
	return ch != nil && (ch.Refunded || ch.AmountRefunded > 0 || ch.Disputed)
}

func payment(id string, metadata map[string]string, providerStatus string) domain.Payment {
	status, known := domain.CanonicalStatus(providerStatus)
	return domain.Payment{
		ExternalID:     id,
		Reference:      metadata[provider.OrderReferenceKey],
		ProviderStatus: providerStatus,
		Status:         status,
		Known:          known,
	}
}

func lookupErr(id string, err error) error {
	var se *stripesdk.Error
	if errors.As(err, &se) && se.HTTPStatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}
	return fmt.Errorf("%w: stripe %s: %v", domain.ErrProviderCommunication, id, err)
}
