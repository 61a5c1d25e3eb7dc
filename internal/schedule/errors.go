package schedule

import "errors"

var (
	// ErrSpansLunch возвращается, когда бронирование пересекло бы обеденный перерыв
	ErrSpansLunch = errors.New("schedule: booking would span the lunch break")

	// ErrNotEnoughSlots возвращается, когда до закрытия не хватает подряд идущих слотов
	ErrNotEnoughSlots = errors.New("schedule: not enough consecutive slots before closing")

	// ErrSlotUnavailable возвращается, когда нужный слот занят или в прошлом
	ErrSlotUnavailable = errors.New("schedule: slot is not available")
)
