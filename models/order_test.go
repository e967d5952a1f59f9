package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CSINCE90/retail-project/models/enum"
)

func TestAllowChangeStatus(t *testing.T) {
	cases := []struct {
		name string
		from enum.OrderStatus
		to   enum.OrderStatus
		want bool
	}{
		{"pending_to_paid", enum.OrderStatusPending, enum.OrderStatusPaid, true},
		{"pending_to_cancelled", enum.OrderStatusPending, enum.OrderStatusCancelled, true},
		{"pending_to_completed", enum.OrderStatusPending, enum.OrderStatusCompleted, false},
		{"paid_to_processing", enum.OrderStatusPaid, enum.OrderStatusProcessing, true},
		{"completed_to_refunded", enum.OrderStatusCompleted, enum.OrderStatusRefunded, true},
		{"cancelled_is_terminal", enum.OrderStatusCancelled, enum.OrderStatusPaid, false},
		{"refunded_is_terminal", enum.OrderStatusRefunded, enum.OrderStatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := Order{Status: tc.from}
			assert.Equal(t, tc.want, o.AllowChangeStatus(tc.to))
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, (&Order{Status: enum.OrderStatusPending}).CanCancel())
	assert.True(t, (&Order{Status: enum.OrderStatusPaid}).CanCancel())
	assert.False(t, (&Order{Status: enum.OrderStatusProcessing}).CanCancel())
	assert.False(t, (&Order{Status: enum.OrderStatusCompleted}).CanCancel())
}
