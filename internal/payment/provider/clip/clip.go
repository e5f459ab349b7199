// Package clip adapts Clip payment notifications.
package clip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider"
)

const (
	SignatureHeader = "X-Clip-Signature"
	DefaultBaseURL  = "https://api.payclip.com"
)

type notification struct {
	EventID           provider.FlexString `json:"event_id"`
	ID                provider.FlexString `json:"id"`
	EventType         string              `json:"event_type"`
	PaymentID         provider.FlexString `json:"payment_id"`
	ReceiptNo         provider.FlexString `json:"receipt_no"`
	MerchantReference string              `json:"merchant_reference"`
	OrderReference    string              `json:"order_reference"`
	Status            string              `json:"status"`
}

// Normalizer reads Clip notifications. A notification without a status only
// names the payment, so its status is fetched from the API.
type Normalizer struct{}

func (Normalizer) Provider() domain.Provider { return domain.ProviderClip }

func (Normalizer) Normalize(raw []byte) domain.Normalization {
	var n notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.Ignore("", "", "malformed payload: "+err.Error())
	}
	eventID := provider.FirstNonEmpty(n.EventID.String(), n.ID.String())
	status := strings.ToLower(strings.TrimSpace(n.Status))
	eventType := provider.FirstNonEmpty(n.EventType, status)
	if eventID == "" {
		return domain.Ignore("", eventType, "missing event id")
	}

	externalID := provider.FirstNonEmpty(n.PaymentID.String(), n.ReceiptNo.String())
	correlation := provider.FirstNonEmpty(n.MerchantReference, n.OrderReference)
	if correlation == "" && externalID == "" {
		return domain.Ignore(eventID, eventType, "no correlation identifier")
	}

	ev := &domain.PaymentEvent{
		Provider:        domain.ProviderClip,
		ProviderEventID: eventID,
		EventType:       eventType,
		CorrelationID:   correlation,
		ExternalID:      externalID,
	}
	if status == "" {
		if externalID == "" {
			return domain.Ignore(eventID, eventType, "no status and no payment id")
		}
		ev.RequiresLookup = true
		return domain.Normalization{ProviderEventID: eventID, EventType: eventType, Event: ev}
	}

	target, ok := domain.CanonicalStatus(status)
	if !ok {
		return domain.Ignore(eventID, eventType, "status "+status+" is not a transition")
	}
	ev.TargetStatus = target
	return domain.Normalization{ProviderEventID: eventID, EventType: eventType, Event: ev}
}

// Verifier checks X-Clip-Signature, a hex HMAC-SHA256 of the raw body.
type Verifier struct {
	Secret []byte
}

func NewVerifier(secret string) *Verifier { return &Verifier{Secret: []byte(secret)} }

func (v *Verifier) Verify(header http.Header, body []byte) error {
	got := header.Get(SignatureHeader)
	if got == "" {
		return fmt.Errorf("%w: missing %s", domain.ErrSignature, SignatureHeader)
	}
	if !provider.EqualHex(provider.HMACSHA256Hex(v.Secret, body), got) {
		return fmt.Errorf("%w: digest mismatch", domain.ErrSignature)
	}
	return nil
}

// Lookup reads payments from the Clip API.
type Lookup struct {
	client *provider.Client
}

// NewLookup takes the API token already encoded for Basic auth.
func NewLookup(baseURL, token string, timeout time.Duration) *Lookup {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Lookup{client: provider.NewClient(baseURL, "Basic "+token, timeout)}
}

func (l *Lookup) LookupPayment(ctx context.Context, externalID string) (domain.Payment, error) {
	var p struct {
		PaymentID         provider.FlexString `json:"payment_id"`
		ReceiptNo         provider.FlexString `json:"receipt_no"`
		Status            string              `json:"status"`
		MerchantReference string              `json:"merchant_reference"`
	}
	if err := l.client.GetJSON(ctx, "/payments/"+provider.PathEscape(externalID), &p); err != nil {
		return domain.Payment{}, err
	}
	status, known := domain.CanonicalStatus(p.Status)
	return domain.Payment{
		ExternalID:     provider.FirstNonEmpty(p.PaymentID.String(), p.ReceiptNo.String(), externalID),
		Reference:      p.MerchantReference,
		ProviderStatus: p.Status,
		Status:         status,
		Known:          known,
	}, nil
}
