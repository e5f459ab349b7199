package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/reconcile/app"
	"github.com/dwikikusuma/storefront/internal/reconcile/domain"
	"github.com/dwikikusuma/storefront/pkg/postgres"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// InTx runs fn in one transaction. Connection failures and timeouts come back
// wrapping app.ErrStoreUnavailable.
func (s *Store) InTx(ctx context.Context, fn func(tx app.Tx) error) error {
	err := postgres.ExecTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(&storeTx{tx: tx})
	})
	if postgres.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", app.ErrStoreUnavailable, err)
	}
	return err
}

type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) LockOrder(ctx context.Context, provider, key string) (domain.LockedOrder, error) {
	var (
		o      domain.LockedOrder
		status string
	)
	err := t.tx.QueryRowContext(ctx, `
		SELECT o.id::text, o.order_number, o.status, o.updated_at
		FROM payment_correlations c
		JOIN orders o ON o.id = c.order_id
		WHERE c.provider = $1 AND c.external_id = $2
		FOR UPDATE OF o`,
		provider, key,
	).Scan(&o.ID, &o.Number, &status, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LockedOrder{}, app.ErrOrderNotFound
	}
	if err != nil {
		return domain.LockedOrder{}, fmt.Errorf("lock order: %w", err)
	}
	o.Status = orderdomain.Status(status)
	return o, nil
}

func (t *storeTx) LedgerEntry(ctx context.Context, provider, eventID string) (domain.LedgerEntry, bool, error) {
	var (
		e                 domain.LedgerEntry
		outcome, from, to string
	)
	err := t.tx.QueryRowContext(ctx, `
		SELECT provider, provider_event_id, order_id::text, event_type, outcome, from_status, to_status, applied_at
		FROM processed_events
		WHERE provider = $1 AND provider_event_id = $2`,
		provider, eventID,
	).Scan(&e.Provider, &e.ProviderEventID, &e.OrderID, &e.EventType, &outcome, &from, &to, &e.AppliedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LedgerEntry{}, false, nil
	}
	if err != nil {
		return domain.LedgerEntry{}, false, fmt.Errorf("read ledger: %w", err)
	}
	e.Outcome = domain.Kind(outcome)
	e.From = orderdomain.Status(from)
	e.To = orderdomain.Status(to)
	return e, true, nil
}

func (t *storeTx) RecordEvent(ctx context.Context, e domain.LedgerEntry) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO processed_events (provider, provider_event_id, order_id, event_type, outcome, from_status, to_status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (provider, provider_event_id) DO NOTHING`,
		e.Provider, e.ProviderEventID, e.OrderID, e.EventType, string(e.Outcome), string(e.From), string(e.To), e.AppliedAt,
	)
	if err != nil {
		return false, fmt.Errorf("record event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (t *storeTx) UpdateStatus(ctx context.Context, orderID string, to orderdomain.Status, at time.Time) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		orderID, string(to), at,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return fmt.Errorf("update status: %d rows affected", n)
	}
	return nil
}

func (t *storeTx) RecordConflict(ctx context.Context, c domain.ConflictRecord) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO reconciliation_conflicts (provider, provider_event_id, order_id, current_status, attempted_status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.Provider, c.ProviderEventID, c.OrderID, string(c.Current), string(c.Attempted), c.Reason, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record conflict: %w", err)
	}
	return nil
}

func (t *storeTx) AttachCorrelation(ctx context.Context, provider, externalID, orderID string) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO payment_correlations (provider, external_id, order_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, external_id) DO NOTHING`,
		provider, externalID, orderID,
	)
	if err != nil {
		return fmt.Errorf("attach correlation: %w", err)
	}
	return nil
}

const conflictColumns = `id, provider, provider_event_id, order_id::text, current_status, attempted_status, reason, created_at, resolved_at`

func (s *Store) ListConflicts(ctx context.Context, includeResolved bool, limit int) ([]domain.ConflictRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+conflictColumns+`
		FROM reconciliation_conflicts
		WHERE $1 OR resolved_at IS NULL
		ORDER BY created_at, id
		LIMIT $2`,
		includeResolved, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ConflictRecord
	for rows.Next() {
		c, err := scanConflict(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ResolveConflict(ctx context.Context, id int64, at time.Time) (domain.ConflictRecord, error) {
	c, err := scanConflict(s.db.QueryRowContext(ctx, `
		UPDATE reconciliation_conflicts
		SET resolved_at = COALESCE(resolved_at, $2)
		WHERE id = $1
		RETURNING `+conflictColumns,
		id, at,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ConflictRecord{}, app.ErrConflictNotFound
	}
	return c, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConflict(s scanner) (domain.ConflictRecord, error) {
	var (
		c                  domain.ConflictRecord
		current, attempted string
		resolved           sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.Provider, &c.ProviderEventID, &c.OrderID, &current, &attempted, &c.Reason, &c.CreatedAt, &resolved); err != nil {
		return domain.ConflictRecord{}, err
	}
	c.Current = orderdomain.Status(current)
	c.Attempted = orderdomain.Status(attempted)
	if resolved.Valid {
		t := resolved.Time
		c.ResolvedAt = &t
	}
	return c, nil
}
