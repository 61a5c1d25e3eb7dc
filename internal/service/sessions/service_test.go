package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/picker"
	sessionmodels "github.com/m-andrianov/BRB-BookingService/internal/service/sessions/models"
)

// 2026-01-13 вторник, 10:00; дата по умолчанию — среда 14-е
var testNow = time.Date(2026, time.January, 13, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	calls    int
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	r.calls++
	return r.bookings, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) ListServices(_ context.Context) ([]domain.Service, error) {
	return []domain.Service{
		{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 25},
		{ID: 2, Name: "Beard trim", DurationMinutes: 30, Price: 15},
	}, nil
}

func (fakeCatalogRepo) ListPackages(_ context.Context) ([]domain.ServicePackage, error) {
	return []domain.ServicePackage{
		{ID: 10, Name: "Full grooming", DurationMinutes: 61, Price: 50, ServiceIDs: []int64{1, 2}},
	}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, fakeCatalogRepo{}, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func TestGet_CreatesStateWithCatalog(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	resp, err := svc.Get(context.Background(), 100)

	require.NoError(t, err)
	assert.Len(t, resp.Services, 2)
	assert.Len(t, resp.Packages, 1)
	assert.Equal(t, "2026-01-14", resp.SelectedDate)
	assert.Len(t, resp.Slots, 20)
	assert.Empty(t, resp.SelectedSlots)
	assert.False(t, resp.CanProceed)
}

func TestDispatch_FullBookingFlow(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, 100, picker.ToggleService{ID: 1})
	require.NoError(t, err)

	resp, err := svc.Dispatch(ctx, 100, picker.ToggleSlot{SlotID: "2026-01-14T10:00"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-01-14T10:00"}, resp.SelectedSlots)
	assert.Equal(t, 1, resp.Selection.RequiredSlots)
	assert.True(t, resp.CanProceed)
	assert.Nil(t, resp.SelectionError)
}

func TestDispatch_SlotErrorExposedAsCode(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	ctx := context.Background()

	// Два слота с 11:30 пересекают обед
	_, err := svc.Dispatch(ctx, 100, picker.ToggleService{ID: 1})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, 100, picker.ToggleService{ID: 2})
	require.NoError(t, err)

	resp, err := svc.Dispatch(ctx, 100, picker.ToggleSlot{SlotID: "2026-01-14T11:30"})
	require.NoError(t, err)

	require.NotNil(t, resp.SelectionError)
	assert.Equal(t, sessionmodels.SelectionErrorSpansLunch, *resp.SelectionError)
	assert.False(t, resp.CanProceed)
}

func TestDispatch_BookedSlotMarkedInGrid(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			ID:              5,
			UserID:          200,
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	svc := newTestService(repo)

	resp, err := svc.Get(context.Background(), 100)
	require.NoError(t, err)

	var found bool
	for _, slot := range resp.Slots {
		if slot.Time == "10:00" {
			found = true
			assert.True(t, slot.IsBooked)
			assert.False(t, slot.IsAvailable)
			assert.False(t, slot.IsOwnBooking)
		}
	}
	assert.True(t, found)
}

func TestDispatch_StatesIsolatedPerUser(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, 100, picker.ToggleService{ID: 1})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, 200)
	require.NoError(t, err)

	assert.Empty(t, resp.Selection.ServiceIDs)
	assert.Equal(t, 0, resp.Selection.RequiredSlots)
}

func TestDispatch_ResetKeepsCatalog(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, 100, picker.ToggleService{ID: 1})
	require.NoError(t, err)

	resp, err := svc.Dispatch(ctx, 100, picker.Reset{})
	require.NoError(t, err)

	assert.Len(t, resp.Services, 2)
	assert.Empty(t, resp.Selection.ServiceIDs)
	assert.Empty(t, resp.SelectedSlots)
}

func TestDispatch_InvalidUser(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.Dispatch(context.Background(), 0, picker.Reset{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
