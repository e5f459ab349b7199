package domain

import (
	"testing"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		signal string
		want   orderdomain.Status
		ok     bool
	}{
		{"approved", orderdomain.StatusPaid, true},
		{"PAID", orderdomain.StatusPaid, true},
		{"charge.paid", orderdomain.StatusPaid, true},
		{"rejected", orderdomain.StatusCancelled, true},
		{"cancelled", orderdomain.StatusCancelled, true},
		{"expired", orderdomain.StatusCancelled, true},
		{"refunded", orderdomain.StatusRefunded, true},
		{"charged_back", orderdomain.StatusRefunded, true},
		{"pending", "", false},
		{"in_process", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.signal, func(t *testing.T) {
			got, ok := CanonicalStatus(tt.signal)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProvider(t *testing.T) {
	p, ok := ParseProvider("mercadopago")
	assert.True(t, ok)
	assert.Equal(t, ProviderMercadoPago, p)

	_, ok = ParseProvider("paypal")
	assert.False(t, ok)
}
