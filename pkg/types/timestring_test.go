package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 1, 10, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestNewTimeStringFromString_Valid(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"", "8:00pm", "25:00", "10:61", "abc"}
	for _, input := range cases {
		_, err := NewTimeStringFromString(input)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", input)
	}
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("22:00").IsAfter("08:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	shifted, err := TimeString("09:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), shifted)
}

func TestTimeString_AddMinutes_CrossesMidnight(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
