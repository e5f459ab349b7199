package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", fmt.Errorf("lock order: %w", context.DeadlineExceeded), true},
		{"cancelled", context.Canceled, true},
		{"connection closed", sql.ErrConnDone, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain", errors.New("syntax error"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}

func TestViolatedConstraint(t *testing.T) {
	name, ok := ViolatedConstraint(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}))
	assert.True(t, ok)
	assert.Equal(t, "orders_order_number_key", name)
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))

	_, ok = ViolatedConstraint(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)
}
