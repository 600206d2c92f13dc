package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestLocalDate(t *testing.T) {
	t.Run("zone ahead of UTC rolls the date forward", func(t *testing.T) {
		instant := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-16", LocalDate(mustLocation(t, "Asia/Tokyo"), instant))
	})

	t.Run("zone behind UTC rolls the date back", func(t *testing.T) {
		instant := time.Date(2026, 3, 16, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-15", LocalDate(mustLocation(t, "America/New_York"), instant))
	})

	t.Run("same date when no boundary is crossed", func(t *testing.T) {
		instant := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-15", LocalDate(mustLocation(t, "Europe/Madrid"), instant))
	})
}

func TestLocalMinutes(t *testing.T) {
	madrid := mustLocation(t, "Europe/Madrid")

	// 2026-03-15 is before the DST switch: Madrid is UTC+1
	instant := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, 8*60+30, LocalMinutes(madrid, instant))

	tokyo := mustLocation(t, "Asia/Tokyo")
	midnightUTC := time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC) // 00:00 JST next day
	assert.Equal(t, 0, LocalMinutes(tokyo, midnightUTC))

	endOfDay := time.Date(2026, 3, 15, 14, 59, 0, 0, time.UTC) // 23:59 JST
	assert.Equal(t, 1439, LocalMinutes(tokyo, endOfDay))
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2026-02-23", 7, "2026-03-02"},  // month rollover
		{"2026-12-30", 5, "2027-01-04"},  // year rollover
		{"2028-02-28", 1, "2028-02-29"},  // leap day
		{"2026-02-28", 1, "2026-03-01"},  // non-leap year
		{"2026-01-15", 0, "2026-01-15"},  // identity
		{"2026-01-01", 365, "2027-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AddDays("not-a-date", 1)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDayOfWeek(t *testing.T) {
	day, err := DayOfWeek("2026-03-16") // a Monday
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	day, err = DayOfWeek("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)
}

func TestDateStringOrdering(t *testing.T) {
	// ISO date strings must order lexically; the date-window checks rely on it
	assert.True(t, "2026-03-15" < "2026-03-16")
	assert.True(t, "2026-12-31" < "2027-01-01")
	assert.True(t, "2026-09-30" < "2026-10-01")
}
