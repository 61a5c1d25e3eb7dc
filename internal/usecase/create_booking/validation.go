package create_booking

import (
	"fmt"
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 && req.PackageID == nil {
		return fmt.Errorf("%w: serviceIds or packageId is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > 0 && req.PackageID != nil {
		return fmt.Errorf("%w: serviceIds and packageId cannot be combined", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом и не выходной
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if !schedule.IsBusinessDay(bookingDate) {
		return ErrShopClosed
	}

	return nil
}

// validateStartTime проверяет, что время начала лежит на 30-минутной сетке
// внутри рабочих часов
func validateStartTime(req *Request) error {
	minutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if minutes%domain.SlotDurationMinutes != 0 {
		return ErrInvalidTimeSlot
	}

	openHour, closeHour := schedule.BusinessHours(req.Date)
	if minutes < openHour*60 || minutes+domain.SlotDurationMinutes > closeHour*60 {
		return ErrInvalidTimeSlot
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
