package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderID(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "DH1741944413000", NewOrderID(at))
}

func TestNewOrderIDChangesWithTime(t *testing.T) {
	at := time.Now()
	assert.NotEqual(t, NewOrderID(at), NewOrderID(at.Add(time.Millisecond)))
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}
	assert.False(t, OrderStatus("Refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusesCoversAllFour(t *testing.T) {
	statuses := OrderStatuses()
	assert.Len(t, statuses, 4)
	assert.Equal(t, OrderStatusPending, statuses[0], "Pending should come first")
}

func TestOrderDateFormat(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2025-03-14", at.Format(OrderDateFormat))
}
