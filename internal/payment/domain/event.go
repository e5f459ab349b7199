package domain

import (
	"context"
	"errors"
	"net/http"
	"strings"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

var (
	ErrProviderCommunication = errors.New("payment provider communication failed")
	ErrSignature             = errors.New("webhook signature invalid")
	ErrPaymentNotFound       = errors.New("payment not found at provider")
)

// PaymentEvent is a provider notification reduced to what reconciliation needs.
type PaymentEvent struct {
	Provider        Provider
	ProviderEventID string
	EventType       string
	// CorrelationID is the order reference we handed to the provider, when echoed back.
	CorrelationID string
	// ExternalID is the provider's own id for the payment (intent, charge, order...).
	ExternalID   string
	TargetStatus orderdomain.Status
	// RequiresLookup is set when the payload does not carry a status of its own
	// and the authoritative one has to be fetched from the provider.
	RequiresLookup bool
}

// Normalization is the result of reading one raw payload. ProviderEventID is filled
// whenever the payload carries one, even when the event is ignored.
type Normalization struct {
	ProviderEventID string
	EventType       string
	Event           *PaymentEvent
	Reason          string
}

func (n Normalization) Ignored() bool { return n.Event == nil }

func Ignore(eventID, eventType, reason string) Normalization {
	return Normalization{ProviderEventID: eventID, EventType: eventType, Reason: reason}
}

// Normalizer maps one provider's payload vocabulary onto PaymentEvent.
// Implementations never panic or fail on malformed input; they return an ignored Normalization.
type Normalizer interface {
	Provider() Provider
	Normalize(raw []byte) Normalization
}

// SignatureVerifier authenticates an inbound webhook request.
type SignatureVerifier interface {
	Verify(header http.Header, body []byte) error
}

// Payment is the provider's authoritative view of a payment.
type Payment struct {
	ExternalID     string
	Reference      string
	ProviderStatus string
	Status         orderdomain.Status
	// Known is false when ProviderStatus does not map onto a canonical status.
	Known bool
}

// PaymentLookup fetches a payment by the provider's id. Errors wrap
// ErrProviderCommunication or ErrPaymentNotFound.
type PaymentLookup interface {
	LookupPayment(ctx context.Context, externalID string) (Payment, error)
}

// CanonicalStatus maps a provider status word onto a canonical order status.
// Anything unrecognised (pending, in_process, authorized...) is not a transition.
func CanonicalStatus(signal string) (orderdomain.Status, bool) {
	switch strings.ToLower(strings.TrimSpace(signal)) {
	case "approved", "paid", "charge.paid", "succeeded", "completed":
		return orderdomain.StatusPaid, true
	case "rejected", "cancelled", "canceled", "expired", "declined", "failed":
		return orderdomain.StatusCancelled, true
	case "refunded", "charged_back", "chargeback", "charged-back":
		return orderdomain.StatusRefunded, true
	}
	return "", false
}
