package get_day_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
)

// UseCase use case построения сетки слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetDaySchedule: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Выходной день: пустая сетка без похода в БД
	if !schedule.IsBusinessDay(req.Date) {
		uc.logger.Info("GetDaySchedule: %s is not a business day", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:                req.Date,
			IsBusinessDay:       false,
			SlotDurationMinutes: domain.SlotDurationMinutes,
			Slots:               []domain.TimeSlot{},
		}, nil
	}

	// 3. Активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.DayBookingsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Сетка строится заново при каждом запросе, слоты нигде не хранятся
	slots := schedule.GenerateTimeSlots(req.Date, bookings, req.UserID, now)

	uc.logger.Info("GetDaySchedule: generated %d slots for date=%s (bookings=%d)",
		len(slots), req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:                req.Date,
		IsBusinessDay:       true,
		SlotDurationMinutes: domain.SlotDurationMinutes,
		Slots:               slots,
	}, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
