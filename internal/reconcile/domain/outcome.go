package domain

import (
	"fmt"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

type Kind string

const (
	KindApplied  Kind = "applied"
	KindIgnored  Kind = "ignored"
	KindNotFound Kind = "not_found"
	KindConflict Kind = "conflict"
)

// Outcome is the result of applying one payment event.
//
//	Applied:  From is the old status, To the new one (equal for a no-op).
//	Conflict: From is the current status, To the attempted one.
type Outcome struct {
	Kind        Kind
	From        orderdomain.Status
	To          orderdomain.Status
	Reason      string
	OrderID     string
	OrderNumber string
	// Duplicate marks an event whose id was already in the ledger.
	Duplicate bool
}

func Applied(from, to orderdomain.Status) Outcome {
	return Outcome{Kind: KindApplied, From: from, To: to}
}

func Ignored(reason string) Outcome { return Outcome{Kind: KindIgnored, Reason: reason} }

func NotFound() Outcome { return Outcome{Kind: KindNotFound} }

func Conflict(current, attempted orderdomain.Status) Outcome {
	return Outcome{Kind: KindConflict, From: current, To: attempted}
}

// Changed reports whether the outcome moved the order to a new status.
func (o Outcome) Changed() bool { return o.Kind == KindApplied && o.From != o.To }

func (o Outcome) String() string {
	switch o.Kind {
	case KindApplied:
		return fmt.Sprintf("Applied(%s, %s)", o.From, o.To)
	case KindIgnored:
		return fmt.Sprintf("Ignored(%s)", o.Reason)
	case KindConflict:
		return fmt.Sprintf("Conflict(%s, %s)", o.From, o.To)
	}
	return "NotFound"
}

type Decision int

const (
	DecisionNoop Decision = iota
	DecisionApply
	DecisionConflict
)

// Decide evaluates the automatic transition table. paid -> cancelled is reserved
// for the administrative override and is a conflict here.
func Decide(current, target orderdomain.Status) Decision {
	if current == target {
		return DecisionNoop
	}
	switch {
	case current == orderdomain.StatusPending && target == orderdomain.StatusPaid,
		current == orderdomain.StatusPending && target == orderdomain.StatusCancelled,
		current == orderdomain.StatusPaid && target == orderdomain.StatusRefunded:
		return DecisionApply
	}
	return DecisionConflict
}

// LockedOrder is the slice of an order the engine reads under a row lock.
type LockedOrder struct {
	ID        string
	Number    string
	Status    orderdomain.Status
	UpdatedAt time.Time
}

// LedgerEntry is one row of the processed-events ledger.
type LedgerEntry struct {
	Provider        string
	ProviderEventID string
	OrderID         string
	EventType       string
	Outcome         Kind
	From            orderdomain.Status
	To              orderdomain.Status
	AppliedAt       time.Time
}

// ConflictRecord is an entry of the manual review queue.
type ConflictRecord struct {
	ID              int64
	Provider        string
	ProviderEventID string
	OrderID         string
	Current         orderdomain.Status
	Attempted       orderdomain.Status
	Reason          string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}
