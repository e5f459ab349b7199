// Package memory implements every repository port in process. Each write runs
// against a private copy of the state that replaces the shared one only on
// success, so a failed call leaves nothing behind. Writers are serialized.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	customerdomain "github.com/dwikikusuma/storefront/internal/customer/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	reconciledomain "github.com/dwikikusuma/storefront/internal/reconcile/domain"
)

// Fault names a point inside a write where an injected error is returned.
type Fault string

const (
	FaultAfterOrderInsert Fault = "after_order_insert"
	FaultAfterItemsInsert Fault = "after_items_insert"
	FaultAfterStatusWrite Fault = "after_status_write"
)

var ErrUnavailable = errors.New("memory store unavailable")

type key struct{ a, b string }

type state struct {
	products       map[string]catalogdomain.Product
	customers      map[string]customerdomain.Customer
	orders         map[string]orderdomain.Order
	correlations   map[key]string
	ledger         map[key]reconciledomain.LedgerEntry
	conflicts      []reconciledomain.ConflictRecord
	nextConflictID int64
}

func newState() *state {
	return &state{
		products:     make(map[string]catalogdomain.Product),
		customers:    make(map[string]customerdomain.Customer),
		orders:       make(map[string]orderdomain.Order),
		correlations: make(map[key]string),
		ledger:       make(map[key]reconciledomain.LedgerEntry),
	}
}

func (s *state) clone() *state {
	c := &state{
		products:       make(map[string]catalogdomain.Product, len(s.products)),
		customers:      make(map[string]customerdomain.Customer, len(s.customers)),
		orders:         make(map[string]orderdomain.Order, len(s.orders)),
		correlations:   make(map[key]string, len(s.correlations)),
		ledger:         make(map[key]reconciledomain.LedgerEntry, len(s.ledger)),
		conflicts:      make([]reconciledomain.ConflictRecord, len(s.conflicts)),
		nextConflictID: s.nextConflictID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.orders {
		v.OrderItems = append([]orderdomain.OrderItem(nil), v.OrderItems...)
		c.orders[k] = v
	}
	for k, v := range s.correlations {
		c.correlations[k] = v
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	copy(c.conflicts, s.conflicts)
	return c
}

type Store struct {
	mu          sync.Mutex
	state       *state
	faults      map[Fault]error
	unavailable error
	now         func() time.Time
}

func New() *Store {
	return &Store{
		state:  newState(),
		faults: make(map[Fault]error),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// InjectFault makes the next writes fail at f with err. A nil err clears it.
func (s *Store) InjectFault(f Fault, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, f)
		return
	}
	s.faults[f] = err
}

// SetUnavailable makes every call fail with err until cleared with nil.
func (s *Store) SetUnavailable(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = err
}

func (s *Store) fault(f Fault) error { return s.faults[f] }

func unavailable(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// write runs fn on a copy of the state and publishes the copy if fn succeeds.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable != nil {
		return unavailable(s.unavailable)
	}
	work := s.state.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable != nil {
		return unavailable(s.unavailable)
	}
	return fn(s.state)
}

// Ping reports store availability for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	return s.read(ctx, func(*state) error { return nil })
}

// Counts returns row counts per table, for tests and diagnostics.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := 0
	for _, o := range s.state.orders {
		items += len(o.OrderItems)
	}
	return map[string]int{
		"products":                 len(s.state.products),
		"customers":                len(s.state.customers),
		"orders":                   len(s.state.orders),
		"order_items":              items,
		"payment_correlations":     len(s.state.correlations),
		"processed_events":         len(s.state.ledger),
		"reconciliation_conflicts": len(s.state.conflicts),
	}
}

func (s *Store) Products() *ProductRepo   { return &ProductRepo{s: s} }
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }
func (s *Store) Orders() *OrderRepo       { return &OrderRepo{s: s} }
func (s *Store) Reconcile() *ReconcileStore {
	return &ReconcileStore{s: s}
}
