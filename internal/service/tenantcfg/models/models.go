package models

import (
	"fmt"
	"time"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// UpdatePolicyRequest запрос на обновление политики бронирования.
// Незаполненные поля сохраняют дефолтные значения
type UpdatePolicyRequest struct {
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"minAdvanceMinutes,omitempty"`
	MaxAdvanceDays    *int    `json:"maxAdvanceDays,omitempty"`
}

// ToDomainOverrides конвертирует request в domain overrides
func (r *UpdatePolicyRequest) ToDomainOverrides() domain.PolicyOverrides {
	return domain.PolicyOverrides{
		Timezone:          r.Timezone,
		MinAdvanceMinutes: r.MinAdvanceMinutes,
		MaxAdvanceDays:    r.MaxAdvanceDays,
	}
}

// PolicyResponse ответ с политикой бронирования тенанта
type PolicyResponse struct {
	TenantID          string `json:"tenantId"`
	Timezone          string `json:"timezone"`
	MinAdvanceMinutes int    `json:"minAdvanceMinutes"`
	MaxAdvanceDays    int    `json:"maxAdvanceDays"`
}

// FromDomainPolicy конвертирует domain политику в response модель
func FromDomainPolicy(tenantID string, p domain.BookingPolicy) *PolicyResponse {
	return &PolicyResponse{
		TenantID:          tenantID,
		Timezone:          p.Timezone,
		MinAdvanceMinutes: p.MinAdvanceMinutes,
		MaxAdvanceDays:    p.MaxAdvanceDays,
	}
}

// ScheduleRange рабочий интервал в формате HH:MM
type ScheduleRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleDay рабочие интервалы одного дня недели (0=воскресенье)
type ScheduleDay struct {
	DayOfWeek int             `json:"dayOfWeek"`
	Ranges    []ScheduleRange `json:"ranges"`
}

// ReplaceScheduleRequest запрос на полную замену недельного расписания.
// Дни, не указанные в запросе, становятся выходными
type ReplaceScheduleRequest struct {
	Days []ScheduleDay `json:"days"`
}

// ScheduleResponse ответ с недельным расписанием тенанта
type ScheduleResponse struct {
	TenantID string        `json:"tenantId"`
	Days     []ScheduleDay `json:"days"`
}

// ToDomainSchedule конвертирует request в domain расписание
func (r *ReplaceScheduleRequest) ToDomainSchedule(tenantID string) (*domain.WeeklySchedule, error) {
	entries := make([]domain.DaySchedule, 0, len(r.Days))
	for _, day := range r.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return nil, fmt.Errorf("day of week must be in [0,6], got %d", day.DayOfWeek)
		}
		ranges := make([]domain.TimeRange, 0, len(day.Ranges))
		for _, tr := range day.Ranges {
			dr, err := domain.NewTimeRangeFromHHMM(tr.StartTime, tr.EndTime)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, dr)
		}
		entries = append(entries, domain.DaySchedule{
			Day:    time.Weekday(day.DayOfWeek),
			Ranges: ranges,
		})
	}
	return domain.NewWeeklySchedule(tenantID, entries), nil
}

// FromDomainSchedule конвертирует domain расписание в response модель
func FromDomainSchedule(schedule *domain.WeeklySchedule) *ScheduleResponse {
	days := make([]ScheduleDay, 0, 7)
	for _, day := range schedule.Days() {
		ranges := make([]ScheduleRange, 0, len(day.Ranges))
		for _, tr := range day.Ranges {
			ranges = append(ranges, ScheduleRange{
				StartTime: tr.StartHHMM(),
				EndTime:   tr.EndHHMM(),
			})
		}
		days = append(days, ScheduleDay{
			DayOfWeek: int(day.Day),
			Ranges:    ranges,
		})
	}
	return &ScheduleResponse{
		TenantID: schedule.TenantID,
		Days:     days,
	}
}
