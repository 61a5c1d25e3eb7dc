package domain

import (
	"fmt"
	"time"

	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// TimeSlot is one 30-minute cell of the day grid, annotated with availability.
// The full day's sequence is regenerated from scratch on every request; it is
// a pure projection of the underlying bookings and is never persisted.
type TimeSlot struct {
	ID          string           // composite "YYYY-MM-DDTHH:MM", stable across regenerations
	Time        types.TimeString // slot start, on the 30-minute grid
	DisplayTime string           // 12-hour formatted start time

	IsAvailable  bool
	IsPast       bool
	IsBooked     bool
	IsOwnBooking bool
	BookingID    *int64
}

// ConflictInfo describes a collision between a slot and an existing booking
type ConflictInfo struct {
	HasConflict  bool
	IsOwnBooking bool
	BookingID    *int64
}

// SlotID builds the composite slot identifier for a date and start time.
func SlotID(date time.Time, t types.TimeString) string {
	return fmt.Sprintf("%sT%s", date.Format(DateFormat), t)
}
