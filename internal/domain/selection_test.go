package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAvailability() Availability {
	return Availability{
		"2025-01-10": DaySlots{
			"09:00": SlotAvailable,
			"10:00": SlotBooked,
		},
		"2025-01-11": DaySlots{
			"09:00": SlotAvailable,
		},
	}
}

func TestSelection_InitialState(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-01-10")

	assert.Equal(t, "2025-01-10", s.Date())
	assert.True(t, s.Time().IsZero())
	assert.False(t, s.CanSubmit())
}

func TestSelection_SelectTime_Available(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-01-10")

	ok := s.SelectTime("09:00")

	require.True(t, ok)
	assert.Equal(t, "09:00", s.Time().String())
	assert.True(t, s.CanSubmit())
}

func TestSelection_SelectTime_BookedSlotIsNoOp(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-01-10")
	require.True(t, s.SelectTime("09:00"))

	// Занятый слот не меняет выбор
	ok := s.SelectTime("10:00")

	assert.False(t, ok)
	assert.Equal(t, "09:00", s.Time().String())
}

func TestSelection_SelectTime_UnknownSlotIsNoOp(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-01-10")

	assert.False(t, s.SelectTime("23:00"))
	assert.True(t, s.Time().IsZero())
}

func TestSelection_SelectTime_UnknownDate(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-02-01")

	assert.False(t, s.SelectTime("09:00"))
	assert.False(t, s.CanSubmit())
}

func TestSelection_SelectDate_ResetsTime(t *testing.T) {
	s := NewSelection(testAvailability(), "2025-01-10")
	require.True(t, s.SelectTime("09:00"))

	s.SelectDate("2025-01-11")

	assert.Equal(t, "2025-01-11", s.Date())
	assert.True(t, s.Time().IsZero())
	assert.False(t, s.CanSubmit())
}

func TestNewBookingID(t *testing.T) {
	now := time.UnixMilli(1736500123456)

	id := NewBookingID(now)

	assert.Equal(t, "BK123456", id)
	assert.Len(t, id, 8)
}
