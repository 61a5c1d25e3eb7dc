package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

var (
	testNow       = time.Date(2026, time.January, 13, 10, 0, 0, 0, time.UTC)
	testWednesday = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2026, time.January, 18, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	calls    int
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	r.calls++
	return r.bookings, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_WeekdayGrid(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, Date: testWednesday})

	require.NoError(t, err)
	assert.True(t, resp.IsBusinessDay)
	assert.Equal(t, domain.SlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Len(t, resp.Slots, 20)
	assert.Equal(t, "2026-01-14T09:00", resp.Slots[0].ID)
}

func TestExecute_SundayEmptyWithoutRepoCall(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, Date: testSunday})

	require.NoError(t, err)
	assert.False(t, resp.IsBusinessDay)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, repo.calls)
}

func TestExecute_OwnBookingMarked(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			ID:              7,
			UserID:          100,
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, Date: testWednesday})

	require.NoError(t, err)
	var marked bool
	for _, slot := range resp.Slots {
		if slot.Time == "10:00" {
			marked = slot.IsBooked && slot.IsOwnBooking
		}
	}
	assert.True(t, marked)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 100, Date: testNow.AddDate(0, 0, -1)})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 100})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
