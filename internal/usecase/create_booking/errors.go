package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrEmptySelection возвращается, когда выбор услуг или пакета пуст либо устарел
	ErrEmptySelection = errors.New("create_booking: selection is empty")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrShopClosed возвращается, когда в выбранную дату выходной
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время начала не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или в прошлом
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSpansLunch возвращается, когда бронирование пересекло бы обеденный перерыв
	ErrSpansLunch = errors.New("create_booking: booking would span the lunch break")

	// ErrNotEnoughSlots возвращается, когда до закрытия не хватает свободных слотов подряд
	ErrNotEnoughSlots = errors.New("create_booking: not enough consecutive slots before closing")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
