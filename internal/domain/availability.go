package domain

// Availability calculator: pure range algebra over opening hours and
// existing bookings. No I/O, no clocks.

// SubtractBookings removes every booked range from the opening ranges,
// returning the free fragments in the original relative order.
// The order of bookedRanges does not affect the final result.
func SubtractBookings(openRanges, bookedRanges []TimeRange) []TimeRange {
	free := make([]TimeRange, len(openRanges))
	copy(free, openRanges)

	for _, booked := range bookedRanges {
		next := make([]TimeRange, 0, len(free)+1)
		for _, r := range free {
			next = append(next, r.Subtract(booked)...)
		}
		free = next
	}

	return free
}

// GenerateSlots walks each range from its start in steps of intervalMinutes,
// emitting [t, t+interval) while the slot still fits in the range.
// A trailing remainder shorter than one interval is discarded.
func GenerateSlots(ranges []TimeRange, intervalMinutes int) []TimeRange {
	slots := make([]TimeRange, 0)
	for _, r := range ranges {
		for start := r.Start; start+intervalMinutes <= r.End; start += intervalMinutes {
			slots = append(slots, TimeRange{Start: start, End: start + intervalMinutes})
		}
	}
	return slots
}

// CanFitService reports whether [startMinute, startMinute+durationMinutes)
// fits entirely within a single free fragment. A span straddling two
// fragments never fits, even if their combined duration would suffice.
func CanFitService(startMinute, durationMinutes int, freeRanges []TimeRange) bool {
	needed, err := NewTimeRange(startMinute, startMinute+durationMinutes)
	if err != nil {
		return false
	}
	for _, free := range freeRanges {
		if free.Contains(needed) {
			return true
		}
	}
	return false
}
