package app

import (
	"context"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/reconcile/domain"
)

// Store is the persistence boundary of the engine. Everything the engine does for
// one event happens inside a single InTx call; returning an error rolls it back.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	ListConflicts(ctx context.Context, includeResolved bool, limit int) ([]domain.ConflictRecord, error)
	// ResolveConflict marks a conflict reviewed. Returns ErrConflictNotFound.
	ResolveConflict(ctx context.Context, id int64, at time.Time) (domain.ConflictRecord, error)
}

type Tx interface {
	// LockOrder resolves (provider, key) through the correlation index by exact
	// match and locks the order row. Returns ErrOrderNotFound.
	LockOrder(ctx context.Context, provider, key string) (domain.LockedOrder, error)
	LedgerEntry(ctx context.Context, provider, eventID string) (domain.LedgerEntry, bool, error)
	// RecordEvent inserts into the ledger; inserted is false when the pair already exists.
	RecordEvent(ctx context.Context, e domain.LedgerEntry) (inserted bool, err error)
	UpdateStatus(ctx context.Context, orderID string, to orderdomain.Status, at time.Time) error
	RecordConflict(ctx context.Context, c domain.ConflictRecord) error
	// AttachCorrelation maps (provider, externalID) to orderID; existing mappings are kept.
	AttachCorrelation(ctx context.Context, provider, externalID, orderID string) error
}
