package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/reconcile/app"
	"github.com/dwikikusuma/storefront/internal/reconcile/domain"
)

type ReconcileStore struct {
	s *Store
}

func (r *ReconcileStore) InTx(ctx context.Context, fn func(tx app.Tx) error) error {
	err := r.s.write(ctx, func(st *state) error {
		return fn(&reconcileTx{s: r.s, st: st})
	})
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", app.ErrStoreUnavailable, err)
	}
	return err
}

// Ledger returns every processed-events row, for tests and diagnostics.
func (r *ReconcileStore) Ledger(ctx context.Context) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	err := r.s.read(ctx, func(st *state) error {
		for _, e := range st.ledger {
			out = append(out, e)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, err
}

func (r *ReconcileStore) ListConflicts(ctx context.Context, includeResolved bool, limit int) ([]domain.ConflictRecord, error) {
	var out []domain.ConflictRecord
	err := r.s.read(ctx, func(st *state) error {
		for _, c := range st.conflicts {
			if !includeResolved && c.ResolvedAt != nil {
				continue
			}
			out = append(out, c)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *ReconcileStore) ResolveConflict(ctx context.Context, id int64, at time.Time) (domain.ConflictRecord, error) {
	var out domain.ConflictRecord
	err := r.s.write(ctx, func(st *state) error {
		for i := range st.conflicts {
			if st.conflicts[i].ID != id {
				continue
			}
			if st.conflicts[i].ResolvedAt == nil {
				t := at
				st.conflicts[i].ResolvedAt = &t
			}
			out = st.conflicts[i]
			return nil
		}
		return app.ErrConflictNotFound
	})
	return out, err
}

// reconcileTx works on the private copy owned by the enclosing write.
type reconcileTx struct {
	s  *Store
	st *state
}

func (t *reconcileTx) LockOrder(ctx context.Context, provider, k string) (domain.LockedOrder, error) {
	id, ok := t.st.correlations[key{provider, k}]
	if !ok {
		return domain.LockedOrder{}, app.ErrOrderNotFound
	}
	o, ok := t.st.orders[id]
	if !ok {
		return domain.LockedOrder{}, app.ErrOrderNotFound
	}
	return domain.LockedOrder{ID: o.ID, Number: o.Number, Status: o.Status, UpdatedAt: o.UpdatedAt}, nil
}

func (t *reconcileTx) LedgerEntry(ctx context.Context, provider, eventID string) (domain.LedgerEntry, bool, error) {
	e, ok := t.st.ledger[key{provider, eventID}]
	return e, ok, nil
}

func (t *reconcileTx) RecordEvent(ctx context.Context, e domain.LedgerEntry) (bool, error) {
	k := key{e.Provider, e.ProviderEventID}
	if _, exists := t.st.ledger[k]; exists {
		return false, nil
	}
	t.st.ledger[k] = e
	return true, nil
}

func (t *reconcileTx) UpdateStatus(ctx context.Context, orderID string, to orderdomain.Status, at time.Time) error {
	o, ok := t.st.orders[orderID]
	if !ok {
		return fmt.Errorf("update status: order %s missing", orderID)
	}
	o.Status = to
	o.UpdatedAt = at
	t.st.orders[orderID] = o
	return t.s.fault(FaultAfterStatusWrite)
}

func (t *reconcileTx) RecordConflict(ctx context.Context, c domain.ConflictRecord) error {
	t.st.nextConflictID++
	c.ID = t.st.nextConflictID
	t.st.conflicts = append(t.st.conflicts, c)
	return nil
}

func (t *reconcileTx) AttachCorrelation(ctx context.Context, provider, externalID, orderID string) error {
	k := key{provider, externalID}
	if _, exists := t.st.correlations[k]; !exists {
		t.st.correlations[k] = orderID
	}
	return nil
}
