// Package conekta adapts Conekta webhook events.
package conekta

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider"
)

const (
	SignatureHeader = "Digest"
	DefaultBaseURL  = "https://api.conekta.io"
	acceptHeader    = "application/vnd.conekta-v2.1.0+json"
	digestPrefix    = "RSA-SHA256="
)

var eventStatus = map[string]orderdomain.Status{
	"order.paid":                orderdomain.StatusPaid,
	"charge.paid":               orderdomain.StatusPaid,
	"order.canceled":            orderdomain.StatusCancelled,
	"order.expired":             orderdomain.StatusCancelled,
	"charge.declined":           orderdomain.StatusCancelled,
	"order.refunded":            orderdomain.StatusRefunded,
	"charge.refunded":           orderdomain.StatusRefunded,
	"charge.chargeback.created": orderdomain.StatusRefunded,
}

type event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type object struct {
	ID       string            `json:"id"`
	Object   string            `json:"object"`
	OrderID  string            `json:"order_id"`
	Metadata provider.Metadata `json:"metadata"`
}

// Normalizer reads Conekta events. Charges are correlated through their parent order.
type Normalizer struct{}

func (Normalizer) Provider() domain.Provider { return domain.ProviderConekta }

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
	if len(ev.Data.Object) == 0 {
		return domain.Ignore(ev.ID, ev.Type, "missing data.object")
	}
	var obj object
	if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
		return domain.Ignore(ev.ID, ev.Type, "malformed data.object: "+err.Error())
	}

	externalID := obj.ID
	if obj.Object == "charge" || strings.HasPrefix(ev.Type, "charge.") {
		externalID = provider.FirstNonEmpty(obj.OrderID, obj.ID)
	}
	correlation := obj.Metadata[provider.OrderReferenceKey]
	if correlation == "" && externalID == "" {
		return domain.Ignore(ev.ID, ev.Type, "no correlation identifier")
	}

	return domain.Normalization{
		ProviderEventID: ev.ID,
		EventType:       ev.Type,
		Event: &domain.PaymentEvent{
			Provider:        domain.ProviderConekta,
			ProviderEventID: ev.ID,
			EventType:       ev.Type,
			CorrelationID:   correlation,
			ExternalID:      externalID,
			TargetStatus:    target,
		},
	}
}

// Verifier checks the Digest header: a base64 RSA-SHA256 (PKCS#1 v1.5) signature of the body.
type Verifier struct {
	Key *rsa.PublicKey
}

// NewVerifier parses a PEM encoded public key (PKIX or PKCS#1).
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("conekta: public key is not PEM")
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return &Verifier{Key: key}, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("conekta: parse public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("conekta: public key is not RSA")
	}
	return &Verifier{Key: key}, nil
}

func (v *Verifier) Verify(header http.Header, body []byte) error {
	raw := strings.TrimSpace(header.Get(SignatureHeader))
	if raw == "" {
		return fmt.Errorf("%w: missing %s", domain.ErrSignature, SignatureHeader)
	}
	if len(raw) > len(digestPrefix) && strings.EqualFold(raw[:len(digestPrefix)], digestPrefix) {
		raw = raw[len(digestPrefix):]
	}
	sig, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("%w: digest is not base64", domain.ErrSignature)
	}
	sum := sha256.Sum256(body)
	if err := rsa.VerifyPKCS1v15(v.Key, crypto.SHA256, sum[:], sig); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignature, err)
	}
	return nil
}

// Lookup reads orders from the Conekta API.
type Lookup struct {
	client *provider.Client
}

func NewLookup(baseURL, privateKey string, timeout time.Duration) *Lookup {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Lookup{client: provider.NewClient(baseURL, "Bearer "+privateKey, timeout,
		provider.WithHeader("Accept", acceptHeader))}
}

func (l *Lookup) LookupPayment(ctx context.Context, externalID string) (domain.Payment, error) {
	var o struct {
		ID            string            `json:"id"`
		PaymentStatus string            `json:"payment_status"`
		Metadata      provider.Metadata `json:"metadata"`
	}
	if err := l.client.GetJSON(ctx, "/orders/"+provider.PathEscape(externalID), &o); err != nil {
		return domain.Payment{}, err
	}
	status, known := domain.CanonicalStatus(o.PaymentStatus)
	return domain.Payment{
		ExternalID:     o.ID,
		Reference:      o.Metadata[provider.OrderReferenceKey],
		ProviderStatus: o.PaymentStatus,
		Status:         status,
		Known:          known,
	}, nil
}
