package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/internal/infra/sessionstore"
	"github.com/sportbook/SB-BookingService/pkg/ptr"
)

type fakeStore struct {
	bookings map[string]*domain.Booking
	getErr   error
}

func (f *fakeStore) Get(ctx context.Context, sessionID string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	booking, ok := f.bookings[sessionID]
	if !ok {
		return nil, sessionstore.ErrBookingNotFound
	}
	return booking, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_GetCurrent(t *testing.T) {
	booking := &domain.Booking{
		ID:            "BK123456",
		FacilityID:    "1",
		FacilityName:  "Elite Basketball Arena",
		Date:          "2025-01-10",
		StartTime:     "09:00",
		DurationHours: 1,
		Customer: domain.CustomerInfo{
			Name:            "Jane",
			Email:           "jane@example.com",
			Phone:           "+254700000000",
			PlayerCount:     4,
			SpecialRequests: ptr.Ptr("extra balls please"),
		},
		TotalAmount:   1500,
		Status:        domain.StatusConfirmed,
		PaymentMethod: domain.PaymentMpesa,
		CreatedAt:     time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	store := &fakeStore{bookings: map[string]*domain.Booking{"session-1": booking}}
	svc := NewService(store, noopLogger{})

	resp, err := svc.GetCurrent(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, "BK123456", resp.ID)
	assert.Equal(t, "Elite Basketball Arena", resp.FacilityName)
	assert.Equal(t, "09:00", resp.Time)
	assert.Equal(t, 1, resp.Duration)
	assert.Equal(t, "Jane", resp.CustomerInfo.Name)
	assert.Equal(t, 4, resp.CustomerInfo.PlayerCount)
	require.NotNil(t, resp.CustomerInfo.SpecialRequests)
	assert.Equal(t, "extra balls please", *resp.CustomerInfo.SpecialRequests)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-01-10T09:00:00Z", resp.CreatedAt)
}

func TestService_GetCurrent_NotFound(t *testing.T) {
	svc := NewService(&fakeStore{bookings: map[string]*domain.Booking{}}, noopLogger{})

	_, err := svc.GetCurrent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetCurrent_StoreError(t *testing.T) {
	svc := NewService(&fakeStore{getErr: errors.New("connection refused")}, noopLogger{})

	_, err := svc.GetCurrent(context.Background(), "session-1")
	assert.ErrorIs(t, err, ErrInternal)
}
