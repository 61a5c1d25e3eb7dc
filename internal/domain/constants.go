package domain

// Slot sizing
const (
	// SlotDurationMinutes фиксированный размер ячейки календаря
	SlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот в календаре
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByShop,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
