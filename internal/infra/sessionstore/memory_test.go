package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		FacilityID:    "1",
		FacilityName:  "Elite Basketball Arena",
		Date:          "2025-01-10",
		StartTime:     "09:00",
		DurationHours: 1,
		Customer: domain.CustomerInfo{
			Name:        "Jane",
			Email:       "jane@example.com",
			Phone:       "+254700000000",
			PlayerCount: 1,
		},
		TotalAmount:   1500,
		Status:        domain.StatusConfirmed,
		PaymentMethod: domain.PaymentMpesa,
		CreatedAt:     time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func newTestStore(t *testing.T, ttl time.Duration) *MemoryStore {
	t.Helper()
	stopCh := make(chan struct{})
	t.Cleanup(func() { close(stopCh) })
	return NewMemoryStore(ttl, stopCh)
}

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Minute)

	require.NoError(t, store.Put(ctx, "session-1", testBooking("BK000001")))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "BK000001", got.ID)
	assert.Equal(t, "Jane", got.Customer.Name)
}

func TestMemoryStore_Get_UnknownSession(t *testing.T) {
	store := newTestStore(t, time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryStore_Put_OverwritesPrevious(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Minute)

	require.NoError(t, store.Put(ctx, "session-1", testBooking("BK000001")))
	require.NoError(t, store.Put(ctx, "session-1", testBooking("BK000002")))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "BK000002", got.ID)
}

func TestMemoryStore_Get_ExpiredEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Millisecond)

	require.NoError(t, store.Put(ctx, "session-1", testBooking("BK000001")))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "session-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Minute)

	require.NoError(t, store.Put(ctx, "session-1", testBooking("BK000001")))

	_, err := store.Get(ctx, "session-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
