package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{"small", 450, 160, 610, false},
		{"up to max", math.MaxInt64 - 100, 100, math.MaxInt64, false},
		{"past max", math.MaxInt64 - 100, 101, 0, true},
		{"negative", -5, 3, -2, false},
		{"past min", math.MinInt64, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSum(t *testing.T) {
	got, err := Sum(2000, 500, 160)
	require.NoError(t, err)
	assert.Equal(t, int64(2660), got)

	_, err = Sum(1, math.MaxInt64-100, 100)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMul(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{"line total", 450, 3, 1350, false},
		{"zero", math.MaxInt64, 0, 0, false},
		{"half max times two", math.MaxInt64 / 2, 2, math.MaxInt64 - 1, false},
		{"half max times three", math.MaxInt64 / 2, 3, 0, true},
		{"huge times huge", math.MaxInt64, math.MaxInt64, 0, true},
		{"negative", -7, 6, -42, false},
		{"min int", math.MinInt64, 1, math.MinInt64, false},
		{"min int times minus one", math.MinInt64, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mul(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
