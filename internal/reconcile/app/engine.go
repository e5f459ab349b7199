package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/reconcile/domain"
	"github.com/dwikikusuma/storefront/pkg/events"
	"github.com/dwikikusuma/storefront/pkg/metrics"
)

var (
	ErrOrderNotFound    = errors.New("order not found for correlation")
	ErrConflictNotFound = errors.New("conflict not found")
	// ErrStoreUnavailable is returned by stores when the database could not be reached in time.
	ErrStoreUnavailable = errors.New("reconciliation store unavailable")
	// ErrStoreFailure covers every other store error, such as a rejected statement.
	ErrStoreFailure = errors.New("reconciliation store failed")
)

// errRaced aborts a transaction that lost the ledger insert to a concurrent delivery.
var errRaced = errors.New("ledger insert raced")

type Option func(*Engine)

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

func WithMetrics(m *metrics.Registry) Option { return func(e *Engine) { e.metrics = m } }

// WithTimeout bounds the time spent in the store for one event. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Engine applies normalized payment events to orders. The transition table, the
// ledger check and the status write all run in one store transaction.
type Engine struct {
	store     Store
	publisher events.Publisher
	metrics   *metrics.Registry
	log       *slog.Logger
	now       func() time.Time
	timeout   time.Duration
}

func NewEngine(store Store, publisher events.Publisher, log *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		timeout:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	return e
}

// Apply reconciles one event. The error is non-nil only when the store failed:
// ErrStoreUnavailable when it could not be reached in time, ErrStoreFailure
// otherwise. Either way nothing was committed. Conflicts are outcomes, not errors.
func (e *Engine) Apply(ctx context.Context, ev paymentdomain.PaymentEvent) (domain.Outcome, error) {
	out, err := e.apply(ctx, ev)

	provider := string(ev.Provider)
	attrs := []any{
		slog.String("provider", provider),
		slog.String("event_id", ev.ProviderEventID),
		slog.String("event_type", ev.EventType),
		slog.String("attempted", string(ev.TargetStatus)),
	}
	if err != nil {
		e.metrics.ReconcileOutcome(provider, "error")
		e.log.ErrorContext(ctx, "reconcile failed", append(attrs, slog.Any("err", err))...)
		return domain.Outcome{}, err
	}

	e.metrics.ReconcileOutcome(provider, string(out.Kind))
	attrs = append(attrs, slog.String("outcome", out.String()), slog.String("order_id", out.OrderID))
	switch out.Kind {
	case domain.KindConflict:
		e.log.WarnContext(ctx, "reconcile conflict recorded for review", attrs...)
	case domain.KindNotFound:
		e.log.WarnContext(ctx, "reconcile found no order", append(attrs,
			slog.String("correlation_id", ev.CorrelationID), slog.String("external_id", ev.ExternalID))...)
	default:
		e.log.InfoContext(ctx, "reconcile", attrs...)
	}

	if out.Changed() {
		e.publish(ctx, events.Event{
			Type:       events.TypeOrderStatusChanged,
			Key:        out.OrderID,
			OccurredAt: e.now(),
			Payload: orderapp.StatusChange{
				OrderID: out.OrderID,
				Number:  out.OrderNumber,
				From:    out.From,
				To:      out.To,
				Source:  provider,
				EventID: ev.ProviderEventID,
			},
		})
	}
	return out, nil
}

func (e *Engine) apply(ctx context.Context, ev paymentdomain.PaymentEvent) (domain.Outcome, error) {
	switch {
	case strings.TrimSpace(ev.ProviderEventID) == "":
		return domain.Ignored("missing provider event id"), nil
	case ev.RequiresLookup:
		return domain.Ignored("status not verified with provider"), nil
	case !ev.TargetStatus.Valid() || ev.TargetStatus == orderdomain.StatusPending:
		return domain.Ignored("no target status"), nil
	case ev.CorrelationID == "" && ev.ExternalID == "":
		return domain.Ignored("no correlation identifier"), nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	provider := string(ev.Provider)
	var out domain.Outcome

	err := e.store.InTx(ctx, func(tx Tx) error {
		order, viaReference, err := e.resolve(ctx, tx, provider, ev)
		if errors.Is(err, ErrOrderNotFound) {
			out = domain.NotFound()
			return nil
		}
		if err != nil {
			return err
		}

		prior, seen, err := tx.LedgerEntry(ctx, provider, ev.ProviderEventID)
		if err != nil {
			return err
		}
		if seen {
			out = duplicateOutcome(prior, order.Status, ev.TargetStatus)
			out.OrderID, out.OrderNumber = order.ID, order.Number
			return nil
		}

		now := e.now()
		if now.Before(order.UpdatedAt) {
			now = order.UpdatedAt
		}

		switch domain.Decide(order.Status, ev.TargetStatus) {
		case domain.DecisionNoop:
			out = domain.Applied(order.Status, order.Status)
		case domain.DecisionApply:
			if err := tx.UpdateStatus(ctx, order.ID, ev.TargetStatus, now); err != nil {
				return err
			}
			out = domain.Applied(order.Status, ev.TargetStatus)
		case domain.DecisionConflict:
			if err := tx.RecordConflict(ctx, domain.ConflictRecord{
				Provider:        provider,
				ProviderEventID: ev.ProviderEventID,
				OrderID:         order.ID,
				Current:         order.Status,
				Attempted:       ev.TargetStatus,
				Reason:          fmt.Sprintf("%s cannot move %s order to %s", ev.EventType, order.Status, ev.TargetStatus),
				CreatedAt:       now,
			}); err != nil {
				return err
			}
			out = domain.Conflict(order.Status, ev.TargetStatus)
		}
		out.OrderID, out.OrderNumber = order.ID, order.Number

		inserted, err := tx.RecordEvent(ctx, domain.LedgerEntry{
			Provider:        provider,
			ProviderEventID: ev.ProviderEventID,
			OrderID:         order.ID,
			EventType:       ev.EventType,
			Outcome:         out.Kind,
			From:            out.From,
			To:              out.To,
			AppliedAt:       now,
		})
		if err != nil {
			return err
		}
		if !inserted {
			return errRaced
		}

		if viaReference && ev.ExternalID != "" && ev.ExternalID != ev.CorrelationID {
			if err := tx.AttachCorrelation(ctx, provider, ev.ExternalID, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errRaced) {
		out := domain.Ignored("duplicate event")
		out.Duplicate = true
		return out, nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return domain.Outcome{}, err
	}
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return out, nil
}

// resolve looks the order up by the reference first and the provider's payment id second.
func (e *Engine) resolve(ctx context.Context, tx Tx, provider string, ev paymentdomain.PaymentEvent) (domain.LockedOrder, bool, error) {
	if ev.CorrelationID != "" {
		o, err := tx.LockOrder(ctx, provider, ev.CorrelationID)
		if err == nil {
			return o, true, nil
		}
		if !errors.Is(err, ErrOrderNotFound) {
			return domain.LockedOrder{}, false, err
		}
	}
	if ev.ExternalID != "" {
		o, err := tx.LockOrder(ctx, provider, ev.ExternalID)
		return o, false, err
	}
	return domain.LockedOrder{}, false, ErrOrderNotFound
}

// duplicateOutcome answers a redelivered event without touching the order.
func duplicateOutcome(prior domain.LedgerEntry, current, target orderdomain.Status) domain.Outcome {
	var out domain.Outcome
	switch {
	case prior.Outcome == domain.KindConflict:
		out = domain.Conflict(current, target)
	case current == target:
		out = domain.Applied(current, current)
	default:
		out = domain.Ignored("duplicate event")
	}
	out.Duplicate = true
	return out
}

// Conflicts lists the review queue, oldest first.
func (e *Engine) Conflicts(ctx context.Context, includeResolved bool, limit int) ([]domain.ConflictRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return e.store.ListConflicts(ctx, includeResolved, limit)
}

func (e *Engine) ResolveConflict(ctx context.Context, id int64) (domain.ConflictRecord, error) {
	c, err := e.store.ResolveConflict(ctx, id, e.now())
	if err != nil {
		return domain.ConflictRecord{}, err
	}
	e.log.InfoContext(ctx, "conflict resolved", slog.Int64("conflict_id", id), slog.String("order_id", c.OrderID))
	return c, nil
}

func (e *Engine) publish(ctx context.Context, ev events.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, ev); err != nil {
		e.metrics.EventPublishFailed()
		e.log.ErrorContext(ctx, "event publish failed", slog.String("type", ev.Type), slog.String("key", ev.Key), slog.Any("err", err))
	}
}
