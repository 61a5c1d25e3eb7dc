package domain

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCompleted       BookingStatus = "completed"
	StatusCancelledByUser BookingStatus = "cancelled_by_user"
	StatusCancelledByShop BookingStatus = "cancelled_by_shop"
	StatusNoShow          BookingStatus = "no_show"
)

// Booking represents a confirmed appointment in the shop calendar
type Booking struct {
	ID              int64
	UserID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Selection that produced the booking
	ServiceIDs []int64
	PackageID  *int64

	// Denormalized data for history
	Title      string
	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByShop &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByShop
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// DayBookingsFilter фильтр для получения бронирований на дату
type DayBookingsFilter struct {
	Date            time.Time      // Обязательный параметр (только дата, без времени)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
