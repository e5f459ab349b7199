// Package webhook receives payment provider notifications over HTTP.
//
// Providers treat any non-2xx answer as "redeliver", so the handler only fails
// a request when redelivery can help: a bad signature (401), a dependency that
// is down (503) or a store write that was rejected (500). Everything else,
// including payloads it cannot read, is acknowledged with 200 and logged.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	paymentapp "github.com/dwikikusuma/storefront/internal/payment/app"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	reconcileapp "github.com/dwikikusuma/storefront/internal/reconcile/app"
	reconciledomain "github.com/dwikikusuma/storefront/internal/reconcile/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
)

const defaultMaxBody = 1 << 20

type Intake interface {
	Ingest(ctx context.Context, p paymentdomain.Provider, header http.Header, body []byte) (paymentdomain.Normalization, error)
}

type Reconciler interface {
	Apply(ctx context.Context, ev paymentdomain.PaymentEvent) (reconciledomain.Outcome, error)
}

type Handler struct {
	intake  Intake
	engine  Reconciler
	log     *slog.Logger
	metrics *metrics.Registry
	maxBody int64
}

func NewHandler(intake Intake, engine Reconciler, log *slog.Logger, m *metrics.Registry) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{intake: intake, engine: engine, log: log, metrics: m, maxBody: defaultMaxBody}
}

// SetMaxBody bounds the accepted payload size. Non-positive values keep the default.
func (h *Handler) SetMaxBody(n int64) {
	if n > 0 {
		h.maxBody = n
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/webhooks/{provider}", h.Receive)
}

func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "provider")
	provider, ok := paymentdomain.ParseProvider(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown provider"})
		return
	}
	h.metrics.WebhookReceived(name)
	log := h.log.With(slog.String("provider", name))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WarnContext(ctx, "webhook body too large, acknowledged without processing", slog.Int64("limit", tooLarge.Limit))
			h.metrics.ReconcileOutcome(name, string(reconciledomain.KindIgnored))
			ack(w)
			return
		}
		log.WarnContext(ctx, "webhook body read failed", slog.Any("err", err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	n, err := h.intake.Ingest(ctx, provider, r.Header, body)
	switch {
	case errors.Is(err, paymentdomain.ErrSignature):
		log.WarnContext(ctx, "webhook rejected", slog.Any("err", err))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid signature"})
		return
	case errors.Is(err, paymentapp.ErrUnknownProvider):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "provider not configured"})
		return
	case err != nil:
		log.ErrorContext(ctx, "payment lookup failed, asking provider to redeliver",
			slog.String("event_id", n.ProviderEventID), slog.Any("err", err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "temporarily unavailable"})
		return
	}

	if n.Ignored() {
		h.metrics.ReconcileOutcome(name, string(reconciledomain.KindIgnored))
		log.InfoContext(ctx, "webhook ignored",
			slog.String("event_id", n.ProviderEventID),
			slog.String("event_type", n.EventType),
			slog.String("reason", n.Reason),
		)
		ack(w)
		return
	}

	if _, err := h.engine.Apply(ctx, *n.Event); err != nil {
		if errors.Is(err, reconcileapp.ErrStoreUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "temporarily unavailable"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	ack(w)
}

func ack(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
