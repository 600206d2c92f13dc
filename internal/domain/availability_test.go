package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractBookings(t *testing.T) {
	open := []TimeRange{
		mustRange(t, 540, 840),  // 09:00-14:00
		mustRange(t, 960, 1200), // 16:00-20:00
	}

	t.Run("no bookings keeps opening hours", func(t *testing.T) {
		free := SubtractBookings(open, nil)
		require.Len(t, free, 2)
		assert.True(t, free[0].Equal(open[0]))
		assert.True(t, free[1].Equal(open[1]))
	})

	t.Run("one booking fragments the morning", func(t *testing.T) {
		booked := []TimeRange{mustRange(t, 600, 660)} // 10:00-11:00
		free := SubtractBookings(open, booked)
		require.Len(t, free, 3)
		assert.Equal(t, "09:00-10:00", free[0].String())
		assert.Equal(t, "11:00-14:00", free[1].String())
		assert.Equal(t, "16:00-20:00", free[2].String())
	})

	t.Run("booking order does not change the result", func(t *testing.T) {
		a := mustRange(t, 600, 660)
		b := mustRange(t, 990, 1020)
		forward := SubtractBookings(open, []TimeRange{a, b})
		backward := SubtractBookings(open, []TimeRange{b, a})
		require.Equal(t, len(forward), len(backward))
		for i := range forward {
			assert.True(t, forward[i].Equal(backward[i]))
		}
	})

	t.Run("bookings covering everything leave nothing", func(t *testing.T) {
		booked := []TimeRange{mustRange(t, 540, 840), mustRange(t, 960, 1200)}
		assert.Empty(t, SubtractBookings(open, booked))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := open[0]
		SubtractBookings(open, []TimeRange{mustRange(t, 540, 600)})
		assert.True(t, open[0].Equal(before))
	})
}

func TestGenerateSlots(t *testing.T) {
	t.Run("trailing remainder is discarded", func(t *testing.T) {
		// 09:00-10:15 with 30-minute interval: the 10:00-10:15 remainder is dropped
		slots := GenerateSlots([]TimeRange{mustRange(t, 540, 615)}, 30)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00-09:30", slots[0].String())
		assert.Equal(t, "09:30-10:00", slots[1].String())
	})

	t.Run("exact fit emits all slots", func(t *testing.T) {
		slots := GenerateSlots([]TimeRange{mustRange(t, 540, 840)}, 30)
		assert.Len(t, slots, 10)
	})

	t.Run("range shorter than interval yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateSlots([]TimeRange{mustRange(t, 540, 555)}, 30))
	})

	t.Run("multiple ranges walk independently", func(t *testing.T) {
		slots := GenerateSlots([]TimeRange{
			mustRange(t, 540, 840),  // 10 slots
			mustRange(t, 960, 1200), // 8 slots
		}, 30)
		require.Len(t, slots, 18)
		assert.Equal(t, "09:00-09:30", slots[0].String())
		assert.Equal(t, "16:00-16:30", slots[10].String())
	})
}

func TestCanFitService(t *testing.T) {
	free := []TimeRange{
		mustRange(t, 540, 600), // 09:00-10:00
		mustRange(t, 660, 840), // 11:00-14:00
	}

	t.Run("fits inside one fragment", func(t *testing.T) {
		assert.True(t, CanFitService(540, 60, free))
		assert.True(t, CanFitService(660, 90, free))
	})

	t.Run("never straddles fragments", func(t *testing.T) {
		// 90 minutes starting 09:00 would need 09:00-10:30, but 10:00-11:00 is booked
		assert.False(t, CanFitService(540, 90, free))
	})

	t.Run("exact fragment boundary fits", func(t *testing.T) {
		assert.True(t, CanFitService(540, 60, free))
		assert.True(t, CanFitService(780, 60, free)) // 13:00-14:00
	})

	t.Run("outside free time fails", func(t *testing.T) {
		assert.False(t, CanFitService(600, 30, free))
		assert.False(t, CanFitService(840, 30, free))
	})

	t.Run("invalid span fails closed", func(t *testing.T) {
		assert.False(t, CanFitService(1430, 30, free)) // runs past midnight
		assert.False(t, CanFitService(540, 0, free))
	})
}
