// Package schedule строит сетку 30-минутных слотов одного дня и отвечает на
// вопрос, какие слоты доступны с учётом прошедшего времени, обеденного
// перерыва и существующих бронирований.
//
// Рабочие часы фиксированы таблицей по дням недели: Пн-Пт 09:00-19:00,
// Сб 10:00-16:00, воскресенье - выходной. Обед 12:00-13:00 не бронируется
// никогда.
package schedule

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// Рабочие часы по дням недели
const (
	WeekdayOpenHour   = 9
	WeekdayCloseHour  = 19
	SaturdayOpenHour  = 10
	SaturdayCloseHour = 16
)

// Обеденный перерыв, полуинтервал [LunchStart, LunchEnd)
const (
	LunchStart = types.TimeString("12:00")
	LunchEnd   = types.TimeString("13:00")
)

// IsBusinessDay возвращает false только для фиксированного выходного дня
func IsBusinessDay(date time.Time) bool {
	return date.Weekday() != time.Sunday
}

// BusinessHours возвращает часы работы для дня недели.
// Для выходного дня возвращает (0, 0).
func BusinessHours(date time.Time) (openHour, closeHour int) {
	switch date.Weekday() {
	case time.Sunday:
		return 0, 0
	case time.Saturday:
		return SaturdayOpenHour, SaturdayCloseHour
	default:
		return WeekdayOpenHour, WeekdayCloseHour
	}
}

// IsLunch проверяет, что время начала слота попадает в обеденный перерыв
func IsLunch(t types.TimeString) bool {
	return !t.IsBefore(LunchStart) && t.IsBefore(LunchEnd)
}

// WouldSpanLunchBreak проверяет, что интервал [start, start+duration)
// пересекает обеденный перерыв хотя бы частично. Частичное пересечение
// тоже дисквалифицирует слот: многослотовое бронирование не может
// переходить через обед.
func WouldSpanLunchBreak(start types.TimeString, durationMinutes int) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return start.IsBefore(LunchEnd) && end.IsAfter(LunchStart)
}

// IsPastTime проверяет, что время уже прошло. Имеет смысл только для
// сегодняшней даты: для будущих дат всегда false. Слот, начинающийся ровно
// сейчас, считается прошедшим.
func IsPastTime(t types.TimeString, date, now time.Time) bool {
	if !isSameDay(date, now) {
		return false
	}
	return !t.IsAfter(types.NewTimeString(now))
}

// ConflictInfo находит первое активное бронирование, пересекающееся со слотом.
// Одного пересечения достаточно, чтобы пометить слот занятым.
//
// Каждое бронирование занимает ровно один 30-минутный блок от своего времени
// начала, независимо от записанной длительности. Менять это правило на
// блокировку ceil(duration/30) слотов нельзя молча: уже созданные длинные
// бронирования изменят видимую занятость календаря.
func ConflictInfo(
	slotTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	requesterID int64,
) domain.ConflictInfo {
	slotEnd, err := slotTime.AddMinutes(durationMinutes)
	if err != nil {
		return domain.ConflictInfo{}
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := bookingStart.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничащие интервалы не пересекаются
		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotTime) {
			id := booking.ID
			return domain.ConflictInfo{
				HasConflict:  true,
				IsOwnBooking: booking.IsOwnedBy(requesterID),
				BookingID:    &id,
			}
		}
	}

	return domain.ConflictInfo{}
}

// GenerateTimeSlots строит полную сетку слотов дня по возрастанию времени.
// Порядок значим: проверка подряд идущих слотов (ValidateConsecutiveRun)
// индексирует последовательность по позиции.
//
// Для выходного дня возвращает пустую последовательность.
func GenerateTimeSlots(
	date time.Time,
	bookings []*domain.Booking,
	requesterID int64,
	now time.Time,
) []domain.TimeSlot {
	if !IsBusinessDay(date) {
		return []domain.TimeSlot{}
	}

	openHour, closeHour := BusinessHours(date)

	slots := make([]domain.TimeSlot, 0, (closeHour-openHour)*60/domain.SlotDurationMinutes)
	for minutes := openHour * 60; minutes+domain.SlotDurationMinutes <= closeHour*60; minutes += domain.SlotDurationMinutes {
		slotTime, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			break
		}

		isPast := IsPastTime(slotTime, date, now)
		isLunch := IsLunch(slotTime)
		conflict := ConflictInfo(slotTime, domain.SlotDurationMinutes, bookings, requesterID)

		display, err := slotTime.Display12Hour()
		if err != nil {
			display = slotTime.String()
		}

		slots = append(slots, domain.TimeSlot{
			ID:           domain.SlotID(date, slotTime),
			Time:         slotTime,
			DisplayTime:  display,
			IsAvailable:  !isPast && !isLunch && !conflict.HasConflict,
			IsPast:       isPast,
			IsBooked:     conflict.HasConflict,
			IsOwnBooking: conflict.IsOwnBooking,
			BookingID:    conflict.BookingID,
		})
	}

	return slots
}

// ValidateConsecutiveRun проверяет, что начиная с позиции startIndex в сетке
// есть requiredSlots подряд идущих доступных слотов и бронирование не
// переходит через обед. Возвращает id слотов будущего бронирования.
func ValidateConsecutiveRun(slots []domain.TimeSlot, startIndex, requiredSlots int) ([]string, error) {
	if startIndex < 0 || startIndex >= len(slots) {
		return nil, ErrSlotUnavailable
	}

	start := slots[startIndex]
	if !start.IsAvailable {
		return nil, ErrSlotUnavailable
	}

	if WouldSpanLunchBreak(start.Time, requiredSlots*domain.SlotDurationMinutes) {
		return nil, ErrSpansLunch
	}

	run := make([]string, 0, requiredSlots)
	for i := 0; i < requiredSlots; i++ {
		index := startIndex + i
		if index >= len(slots) {
			return nil, ErrNotEnoughSlots
		}

		slot := slots[index]
		if IsLunch(slot.Time) {
			return nil, ErrSpansLunch
		}
		if !slot.IsAvailable {
			return nil, ErrSlotUnavailable
		}

		run = append(run, slot.ID)
	}

	return run, nil
}

// FindSlotIndex возвращает позицию слота с данным id в сетке, либо -1
func FindSlotIndex(slots []domain.TimeSlot, slotID string) int {
	for i, slot := range slots {
		if slot.ID == slotID {
			return i
		}
	}
	return -1
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
