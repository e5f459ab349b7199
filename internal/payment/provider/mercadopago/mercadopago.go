// Package mercadopago adapts Mercado Pago webhook notifications.
//
// Notifications only say which payment changed; the payment status and the
// external_reference are always read back from the API.
package mercadopago

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
	SignatureHeader  = "X-Signature"
	RequestIDHeader  = "X-Request-Id"
	DefaultBaseURL   = "https://api.mercadopago.com"
	DefaultTolerance = 5 * time.Minute
)

type notification struct {
	ID     provider.FlexString `json:"id"`
	Type   string              `json:"type"`
	Topic  string              `json:"topic"`
	Action string              `json:"action"`
	Data   struct {
		ID provider.FlexString `json:"id"`
	} `json:"data"`
}

func (n notification) kind() string { return provider.FirstNonEmpty(n.Type, n.Topic) }

// Normalizer reads Mercado Pago notifications.
type Normalizer struct{}

func (Normalizer) Provider() domain.Provider { return domain.ProviderMercadoPago }

func (Normalizer) Normalize(raw []byte) domain.Normalization {
	var n notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.Ignore("", "", "malformed payload: "+err.Error())
	}
	eventID := n.ID.String()
	eventType := provider.FirstNonEmpty(n.Action, n.kind())
	if eventID == "" {
		return domain.Ignore("", eventType, "missing event id")
	}
	if n.kind() != "payment" {
		return domain.Ignore(eventID, eventType, "not a payment notification")
	}
	paymentID := n.Data.ID.String()
	if paymentID == "" {
		return domain.Ignore(eventID, eventType, "missing data.id")
	}
	return domain.Normalization{
		ProviderEventID: eventID,
		EventType:       eventType,
		Event: &domain.PaymentEvent{
			Provider:        domain.ProviderMercadoPago,
			ProviderEventID: eventID,
			EventType:       eventType,
			ExternalID:      paymentID,
			RequiresLookup:  true,
		},
	}
}

// Verifier checks x-signature ("ts=...,v1=...") against the manifest
// "id:{data.id};request-id:{x-request-id};ts:{ts};". Absent parts are left out.
type Verifier struct {
	Secret    []byte
	Tolerance time.Duration
	Now       func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{Secret: []byte(secret), Tolerance: DefaultTolerance, Now: time.Now}
}

func (v *Verifier) Verify(header http.Header, body []byte) error {
	parts := provider.ParseSignatureHeader(header.Get(SignatureHeader))
	ts, sigs := parts["ts"], parts["v1"]
	if len(ts) == 0 || len(sigs) == 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrSignature, SignatureHeader)
	}

	// ts is in milliseconds on current deliveries and seconds on older ones.
	tsSeconds := ts[0]
	if len(tsSeconds) > 10 {
		tsSeconds = tsSeconds[:len(tsSeconds)-3]
	}
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	if err := provider.CheckTimestamp(tsSeconds, now(), v.Tolerance); err != nil {
		return err
	}

	manifest := Manifest(dataID(body), header.Get(RequestIDHeader), ts[0])
	if !provider.EqualHex(provider.HMACSHA256Hex(v.Secret, []byte(manifest)), sigs[0]) {
		return fmt.Errorf("%w: manifest digest mismatch", domain.ErrSignature)
	}
	return nil
}

// Manifest builds the signed template.
func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func dataID(body []byte) string {
	var n notification
	if err := json.Unmarshal(body, &n); err != nil {
		return ""
	}
	return n.Data.ID.String()
}

// Lookup reads payments from the Mercado Pago API.
type Lookup struct {
	client *provider.Client
}

func NewLookup(baseURL, accessToken string, timeout time.Duration) *Lookup {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Lookup{client: provider.NewClient(baseURL, "Bearer "+accessToken, timeout)}
}

func (l *Lookup) LookupPayment(ctx context.Context, externalID string) (domain.Payment, error) {
	var p struct {
		ID                provider.FlexString `json:"id"`
		Status            string              `json:"status"`
		ExternalReference string              `json:"external_reference"`
	}
	if err := l.client.GetJSON(ctx, "/v1/payments/"+provider.PathEscape(externalID), &p); err != nil {
		return domain.Payment{}, err
	}
	status, known := domain.CanonicalStatus(p.Status)
	return domain.Payment{
		ExternalID:     provider.FirstNonEmpty(p.ID.String(), externalID),
		Reference:      p.ExternalReference,
		ProviderStatus: p.Status,
		Status:         status,
		Known:          known,
	}, nil
}
