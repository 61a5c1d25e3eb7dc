package get_day_schedule

import (
	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	getDaySchedule "github.com/m-andrianov/BRB-BookingService/internal/usecase/get_day_schedule"
)

// SlotResponse HTTP модель слота расписания
type SlotResponse struct {
	ID           string `json:"id"`          // "2026-01-14T10:00"
	Time         string `json:"time"`        // "10:00"
	DisplayTime  string `json:"displayTime"` // "10:00 AM"
	IsAvailable  bool   `json:"isAvailable"`
	IsPast       bool   `json:"isPast"`
	IsBooked     bool   `json:"isBooked"`
	IsOwnBooking bool   `json:"isOwnBooking"`
}

// ScheduleResponse HTTP модель сетки слотов на день
type ScheduleResponse struct {
	Date                string         `json:"date"` // "2026-01-14"
	IsBusinessDay       bool           `json:"isBusinessDay"`
	SlotDurationMinutes int            `json:"slotDurationMinutes"`
	Slots               []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		IsBusinessDay:       resp.IsBusinessDay,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:           slot.ID,
			Time:         string(slot.Time),
			DisplayTime:  slot.DisplayTime,
			IsAvailable:  slot.IsAvailable,
			IsPast:       slot.IsPast,
			IsBooked:     slot.IsBooked,
			IsOwnBooking: slot.IsOwnBooking,
		})
	}

	return out
}
