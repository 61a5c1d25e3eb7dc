package models

import (
	"errors"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/picker"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
)

// Коды ошибок выбора слотов, отдаваемые клиенту
const (
	SelectionErrorSlotUnavailable = "slot_unavailable"
	SelectionErrorSpansLunch      = "spans_lunch"
	SelectionErrorNotEnoughSlots  = "not_enough_slots"
	SelectionErrorUnknown         = "selection_error"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// PackageResponse пакет услуг каталога
type PackageResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ServiceIDs      []int64 `json:"serviceIds"`
}

// SlotResponse слот расписания на выбранную дату
type SlotResponse struct {
	ID           string `json:"id"`          // "2026-01-14T10:00"
	Time         string `json:"time"`        // "10:00"
	DisplayTime  string `json:"displayTime"` // "10:00 AM"
	IsAvailable  bool   `json:"isAvailable"`
	IsPast       bool   `json:"isPast"`
	IsBooked     bool   `json:"isBooked"`
	IsOwnBooking bool   `json:"isOwnBooking"`
	IsSelected   bool   `json:"isSelected"`
}

// SelectionResponse пересчитанный выбор услуг или пакета
type SelectionResponse struct {
	Mode                   string  `json:"mode"`
	ServiceIDs             []int64 `json:"serviceIds"`
	PackageID              *int64  `json:"packageId,omitempty"`
	DurationMinutes        int     `json:"durationMinutes"`
	RoundedDurationMinutes int     `json:"roundedDurationMinutes"`
	RequiredSlots          int     `json:"requiredSlots"`
	SubtotalPrice          float64 `json:"subtotalPrice"`
}

// StateResponse полное состояние выбора пользователя
type StateResponse struct {
	Services []ServiceResponse `json:"services"`
	Packages []PackageResponse `json:"packages"`

	Selection     SelectionResponse `json:"selection"`
	SelectedDate  string            `json:"selectedDate"` // "2026-01-14"
	SelectedSlots []string          `json:"selectedSlots"`
	Slots         []SlotResponse    `json:"slots"`

	SelectionError *string `json:"selectionError,omitempty"`
	CanProceed     bool    `json:"canProceed"`
}

// FromState конвертирует состояние пикера в DTO
// Сетка слотов передается отдельно, т.к. она вычисляется по бронированиям на дату
func FromState(state picker.State, slots []domain.TimeSlot) *StateResponse {
	resp := &StateResponse{
		Services:      make([]ServiceResponse, 0, len(state.Services)),
		Packages:      make([]PackageResponse, 0, len(state.Packages)),
		SelectedDate:  state.SelectedDate.Format(domain.DateFormat),
		SelectedSlots: state.SelectedSlots,
		Slots:         make([]SlotResponse, 0, len(slots)),
		CanProceed:    state.CanProceed(),
	}

	for _, svc := range state.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	for _, pkg := range state.Packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:              pkg.ID,
			Name:            pkg.Name,
			DurationMinutes: pkg.DurationMinutes,
			Price:           pkg.Price,
			ServiceIDs:      pkg.ServiceIDs,
		})
	}

	sel := state.Selection
	resp.Selection = SelectionResponse{
		Mode:                   string(sel.Mode),
		ServiceIDs:             sel.ServiceIDs,
		PackageID:              sel.PackageID,
		DurationMinutes:        sel.DurationMinutes,
		RoundedDurationMinutes: sel.RoundedDurationMinutes,
		RequiredSlots:          sel.RequiredSlots,
		SubtotalPrice:          sel.SubtotalPrice,
	}
	if resp.Selection.ServiceIDs == nil {
		resp.Selection.ServiceIDs = []int64{}
	}

	if resp.SelectedSlots == nil {
		resp.SelectedSlots = []string{}
	}

	selected := make(map[string]struct{}, len(state.SelectedSlots))
	for _, id := range state.SelectedSlots {
		selected[id] = struct{}{}
	}

	for _, slot := range slots {
		_, isSelected := selected[slot.ID]
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:           slot.ID,
			Time:         string(slot.Time),
			DisplayTime:  slot.DisplayTime,
			IsAvailable:  slot.IsAvailable,
			IsPast:       slot.IsPast,
			IsBooked:     slot.IsBooked,
			IsOwnBooking: slot.IsOwnBooking,
			IsSelected:   isSelected,
		})
	}

	if state.SelectionError != nil {
		code := selectionErrorCode(state.SelectionError)
		resp.SelectionError = &code
	}

	return resp
}

// selectionErrorCode переводит ошибку планировщика в стабильный код для клиента
func selectionErrorCode(err error) string {
	switch {
	case errors.Is(err, schedule.ErrSlotUnavailable):
		return SelectionErrorSlotUnavailable
	case errors.Is(err, schedule.ErrSpansLunch):
		return SelectionErrorSpansLunch
	case errors.Is(err, schedule.ErrNotEnoughSlots):
		return SelectionErrorNotEnoughSlots
	default:
		return SelectionErrorUnknown
	}
}
