package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusCompleted, OrderStatusCancelled, true},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCompleted.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
}
