package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
	"github.com/m-andrianov/BRB-BookingService/pkg/ptr"
	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

var (
	// Вторник 13 января 2026; дата по умолчанию - среда 14 января
	now       = time.Date(2026, time.January, 13, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)

	catalogServices = []domain.Service{
		{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 25},
		{ID: 2, Name: "Beard trim", DurationMinutes: 30, Price: 15},
	}
	catalogPackages = []domain.ServicePackage{
		{ID: 10, Name: "Full grooming", DurationMinutes: 61, Price: 50},
	}
)

func env(bookings ...*domain.Booking) Env {
	return Env{Now: now, Bookings: bookings, RequesterID: 100}
}

func newTestState() State {
	state := NewState(now)
	state = Reduce(state, SetServices{Services: catalogServices}, env())
	state = Reduce(state, SetPackages{Packages: catalogPackages}, env())
	return state
}

func slotID(timeStr string) string {
	return domain.SlotID(wednesday, types.TimeString(timeStr))
}

func TestDefaultDate(t *testing.T) {
	// Обычный день: завтра
	assert.Equal(t, wednesday, DefaultDate(now))

	// Суббота: ближайший понедельник (воскресенье - выходной)
	sat := time.Date(2026, time.January, 17, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, DefaultDate(sat))
}

func TestNewState(t *testing.T) {
	state := NewState(now)

	assert.Equal(t, domain.ModeServices, state.Selection.Mode)
	assert.True(t, state.Selection.IsEmpty())
	assert.Equal(t, wednesday, state.SelectedDate)
	assert.Empty(t, state.SelectedSlots)
	assert.NoError(t, state.SelectionError)
	assert.False(t, state.CanProceed())
}

func TestReduce_ToggleService(t *testing.T) {
	state := newTestState()

	state = Reduce(state, ToggleService{ID: 1}, env())
	assert.Equal(t, []int64{1}, state.Selection.ServiceIDs)
	assert.Equal(t, 1, state.Selection.RequiredSlots)

	state = Reduce(state, ToggleService{ID: 2}, env())
	assert.ElementsMatch(t, []int64{1, 2}, state.Selection.ServiceIDs)
	assert.Equal(t, 2, state.Selection.RequiredSlots)
	assert.Equal(t, 40.0, state.Selection.SubtotalPrice)

	// Повторный toggle убирает услугу
	state = Reduce(state, ToggleService{ID: 1}, env())
	assert.Equal(t, []int64{2}, state.Selection.ServiceIDs)
	assert.Equal(t, 1, state.Selection.RequiredSlots)
}

func TestReduce_ToggleServiceClearsSlots(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	require.Len(t, state.SelectedSlots, 1)

	// Длительность изменилась - выбранные слоты устарели
	state = Reduce(state, ToggleService{ID: 2}, env())
	assert.Empty(t, state.SelectedSlots)
	assert.NoError(t, state.SelectionError)
}

func TestReduce_SingleServiceFlow(t *testing.T) {
	state := newTestState()

	state = Reduce(state, ToggleService{ID: 1}, env())
	assert.Equal(t, 30, state.Selection.RoundedDurationMinutes)
	assert.Equal(t, 1, state.Selection.RequiredSlots)
	assert.False(t, state.CanProceed())

	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	assert.Equal(t, []string{slotID("09:00")}, state.SelectedSlots)
	assert.True(t, state.CanProceed())

	payload, ok := state.BookingPayload()
	require.True(t, ok)
	assert.Equal(t, []int64{1}, payload.ServiceIDs)
	assert.Nil(t, payload.PackageID)
	assert.Equal(t, wednesday, payload.Date)
	assert.Equal(t, types.TimeString("09:00"), payload.StartTime)
	assert.Equal(t, 30, payload.DurationMinutes)
	assert.Equal(t, 25.0, payload.SubtotalPrice)
}

func TestReduce_ToggleSlotDeselectsAll(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	require.Len(t, state.SelectedSlots, 1)

	// Повторный клик по выбранному слоту - сброс выбора целиком
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	assert.Empty(t, state.SelectedSlots)
	assert.False(t, state.CanProceed())
}

func TestReduce_MultiSlotSelection(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleService{ID: 2}, env())
	require.Equal(t, 2, state.Selection.RequiredSlots)

	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	assert.Equal(t, []string{slotID("09:00"), slotID("09:30")}, state.SelectedSlots)
	assert.NoError(t, state.SelectionError)
	assert.True(t, state.CanProceed())
}

func TestReduce_MultiSlotSpansLunchRejected(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleService{ID: 2}, env())

	// [11:30, 12:30) пересекает обед [12:00, 13:00)
	state = Reduce(state, ToggleSlot{SlotID: slotID("11:30")}, env())
	assert.Empty(t, state.SelectedSlots)
	assert.ErrorIs(t, state.SelectionError, schedule.ErrSpansLunch)
	assert.False(t, state.CanProceed())
}

func TestReduce_PackageThreeSlots(t *testing.T) {
	state := newTestState()
	state = Reduce(state, SetSelectionMode{Mode: domain.ModePackage}, env())
	state = Reduce(state, SelectPackage{ID: ptr.Ptr(int64(10))}, env())

	require.Equal(t, 90, state.Selection.RoundedDurationMinutes)
	require.Equal(t, 3, state.Selection.RequiredSlots)

	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	assert.Equal(t, []string{slotID("09:00"), slotID("09:30"), slotID("10:00")}, state.SelectedSlots)
	assert.True(t, state.CanProceed())
}

func TestReduce_PackageNotEnoughSlotsBeforeClosing(t *testing.T) {
	state := newTestState()
	state = Reduce(state, SetSelectionMode{Mode: domain.ModePackage}, env())
	state = Reduce(state, SelectPackage{ID: ptr.Ptr(int64(10))}, env())

	// 18:00 + 3 слота выходит за закрытие в 19:00
	state = Reduce(state, ToggleSlot{SlotID: slotID("18:00")}, env())
	assert.Empty(t, state.SelectedSlots)
	assert.ErrorIs(t, state.SelectionError, schedule.ErrNotEnoughSlots)
}

func TestReduce_MultiSlotBlockedByBooking(t *testing.T) {
	taken := &domain.Booking{
		ID:              5,
		UserID:          200,
		StartTime:       "09:30",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}

	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env(taken))
	state = Reduce(state, ToggleService{ID: 2}, env(taken))

	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env(taken))
	assert.Empty(t, state.SelectedSlots)
	assert.ErrorIs(t, state.SelectionError, schedule.ErrSlotUnavailable)

	// Ошибка сбрасывается после удачного выбора
	state = Reduce(state, ToggleSlot{SlotID: slotID("10:00")}, env(taken))
	assert.Equal(t, []string{slotID("10:00"), slotID("10:30")}, state.SelectedSlots)
	assert.NoError(t, state.SelectionError)
}

func TestReduce_SlotCountInvariant(t *testing.T) {
	// После любого ToggleSlot выбрано либо 0 слотов, либо ровно requiredSlots
	state := newTestState()
	state = Reduce(state, SetSelectionMode{Mode: domain.ModePackage}, env())
	state = Reduce(state, SelectPackage{ID: ptr.Ptr(int64(10))}, env())

	for _, id := range []string{slotID("09:00"), slotID("11:30"), slotID("18:00"), slotID("13:00")} {
		state = Reduce(state, ToggleSlot{SlotID: id}, env())
		ok := len(state.SelectedSlots) == 0 || len(state.SelectedSlots) == state.Selection.RequiredSlots
		assert.True(t, ok, "slot=%s selected=%d", id, len(state.SelectedSlots))
	}
}

func TestReduce_ModeSwitchClearsCrossModeState(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	require.Len(t, state.SelectedSlots, 1)

	state = Reduce(state, SetSelectionMode{Mode: domain.ModePackage}, env())
	assert.Empty(t, state.Selection.ServiceIDs)
	assert.Nil(t, state.Selection.PackageID)
	assert.Empty(t, state.SelectedSlots)
	assert.NoError(t, state.SelectionError)
}

func TestReduce_SetDateRejectsPast(t *testing.T) {
	state := newTestState()
	yesterday := now.AddDate(0, 0, -1)

	next := Reduce(state, SetDate{Date: yesterday}, env())
	assert.Equal(t, state.SelectedDate, next.SelectedDate)
}

func TestReduce_SetDateClearsSlots(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())
	require.Len(t, state.SelectedSlots, 1)

	friday := time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC)
	state = Reduce(state, SetDate{Date: friday}, env())
	assert.Equal(t, friday, state.SelectedDate)
	assert.Empty(t, state.SelectedSlots)
}

func TestReduce_Preselect(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())

	state = Reduce(state, PreselectPackage{ID: 10}, env())
	assert.Equal(t, domain.ModePackage, state.Selection.Mode)
	require.NotNil(t, state.Selection.PackageID)
	assert.Equal(t, int64(10), *state.Selection.PackageID)
	assert.Empty(t, state.Selection.ServiceIDs)

	state = Reduce(state, PreselectService{ID: 2}, env())
	assert.Equal(t, domain.ModeServices, state.Selection.Mode)
	assert.Equal(t, []int64{2}, state.Selection.ServiceIDs)
	assert.Nil(t, state.Selection.PackageID)
}

func TestReduce_Reset(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())

	state = Reduce(state, Reset{}, env())
	assert.True(t, state.Selection.IsEmpty())
	assert.Equal(t, wednesday, state.SelectedDate)
	assert.Empty(t, state.SelectedSlots)

	// Каталог переживает сброс
	assert.Equal(t, catalogServices, state.Services)
	assert.Equal(t, catalogPackages, state.Packages)
}

func TestReduce_CatalogRefreshKeepsSelection(t *testing.T) {
	state := newTestState()
	state = Reduce(state, ToggleService{ID: 1}, env())
	state = Reduce(state, ToggleSlot{SlotID: slotID("09:00")}, env())

	state = Reduce(state, SetServices{Services: catalogServices}, env())
	assert.Equal(t, []int64{1}, state.Selection.ServiceIDs)
	assert.Len(t, state.SelectedSlots, 1)
}
