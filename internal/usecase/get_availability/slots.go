package get_availability

import "github.com/avelesk/TenantBookingService/internal/domain"

// buildSlots строит список слотов на день.
// Кандидаты генерируются из рабочих интервалов (не из свободных), поэтому
// занятые слоты остаются в списке с Available=false. Если cutoffMinute >= 0,
// слоты с началом раньше cutoffMinute отбрасываются (запрос на сегодня).
func buildSlots(openRanges, freeRanges []domain.TimeRange, cutoffMinute int) []Slot {
	candidates := domain.GenerateSlots(openRanges, domain.SlotIntervalMinutes)

	slots := make([]Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if cutoffMinute >= 0 && candidate.Start < cutoffMinute {
			continue
		}

		slots = append(slots, Slot{
			StartTime: candidate.StartHHMM(),
			EndTime:   candidate.EndHHMM(),
			Available: isSlotFree(candidate, freeRanges),
		})
	}

	return slots
}

// isSlotFree проверяет, что слот целиком лежит в одном свободном интервале
func isSlotFree(slot domain.TimeRange, freeRanges []domain.TimeRange) bool {
	for _, free := range freeRanges {
		if free.Contains(slot) {
			return true
		}
	}
	return false
}

// bookedRanges извлекает занятые интервалы из активных бронирований
func bookedRanges(bookings []*domain.Booking) []domain.TimeRange {
	ranges := make([]domain.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		ranges = append(ranges, b.TimeRange)
	}
	return ranges
}
