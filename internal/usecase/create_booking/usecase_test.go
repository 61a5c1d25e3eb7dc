package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/pkg/ptr"
	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

var (
	testNow       = time.Date(2026, time.January, 13, 10, 0, 0, 0, time.UTC)
	testWednesday = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2026, time.January, 18, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = testNow
	booking.UpdatedAt = testNow
	r.created = append(r.created, booking)
	return booking, nil
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
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
		{ID: 10, Name: "Full grooming", DurationMinutes: 61, Price: 50},
	}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, fakeCatalogRepo{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_SingleService(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		Date:       testWednesday,
		StartTime:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 1, resp.RequiredSlots)
	assert.Equal(t, "Haircut", resp.Title)
	assert.Equal(t, 25.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.Len(t, repo.created, 1)
}

func TestExecute_PackageNeedsThreeSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		PackageID: ptr.Ptr(int64(10)),
		Date:      testWednesday,
		StartTime: "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 3, resp.RequiredSlots)
	assert.Equal(t, "Full grooming", resp.Title)
}

func TestExecute_SpansLunchRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// Два слота с 11:30 пересекают обед
	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1, 2},
		Date:       testWednesday,
		StartTime:  "11:30",
	})

	assert.ErrorIs(t, err, ErrSpansLunch)
}

func TestExecute_NotEnoughSlotsBeforeClosing(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		PackageID: ptr.Ptr(int64(10)),
		Date:      testWednesday,
		StartTime: "18:00",
	})

	assert.ErrorIs(t, err, ErrNotEnoughSlots)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			ID:              5,
			UserID:          200,
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		Date:       testWednesday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		Date:       testSunday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		Date:       testNow.AddDate(0, 0, -1),
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		Date:       testWednesday,
		StartTime:  "10:15",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StaleSelectionRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{999},
		Date:       testWednesday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestExecute_ServicesAndPackageRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1},
		PackageID:  ptr.Ptr(int64(10)),
		Date:       testWednesday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MultiSlotStoresRoundedDuration(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     100,
		ServiceIDs: []int64{1, 2},
		Date:       testWednesday,
		StartTime:  "13:00",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, 60, created.DurationMinutes)
	assert.Equal(t, types.TimeString("13:00"), created.StartTime)
	assert.ElementsMatch(t, []int64{1, 2}, created.ServiceIDs)
	assert.Equal(t, "Haircut, Beard trim", created.Title)
}
