package domain

import (
	"testing"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

func TestDecide(t *testing.T) {
	const (
		pending   = orderdomain.StatusPending
		paid      = orderdomain.StatusPaid
		cancelled = orderdomain.StatusCancelled
		refunded  = orderdomain.StatusRefunded
	)
	tests := []struct {
		from, to orderdomain.Status
		want     Decision
	}{
		{pending, paid, DecisionApply},
		{pending, cancelled, DecisionApply},
		{pending, refunded, DecisionConflict},
		{pending, pending, DecisionNoop},
		{paid, refunded, DecisionApply},
		{paid, cancelled, DecisionConflict},
		{paid, pending, DecisionConflict},
		{paid, paid, DecisionNoop},
		{cancelled, paid, DecisionConflict},
		{cancelled, pending, DecisionConflict},
		{cancelled, refunded, DecisionConflict},
		{cancelled, cancelled, DecisionNoop},
		{refunded, paid, DecisionConflict},
		{refunded, cancelled, DecisionConflict},
		{refunded, refunded, DecisionNoop},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := Decide(tt.from, tt.to); got != tt.want {
				t.Fatalf("Decide(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if got := Applied(orderdomain.StatusPending, orderdomain.StatusPaid).String(); got != "Applied(pending, paid)" {
		t.Fatalf("got %q", got)
	}
	if got := Conflict(orderdomain.StatusPending, orderdomain.StatusRefunded).String(); got != "Conflict(pending, refunded)" {
		t.Fatalf("got %q", got)
	}
	if !Applied(orderdomain.StatusPending, orderdomain.StatusPaid).Changed() {
		t.Fatal("expected change")
	}
	if Applied(orderdomain.StatusPaid, orderdomain.StatusPaid).Changed() {
		t.Fatal("no-op reported as change")
	}
}
