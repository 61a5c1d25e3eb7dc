// Package picker реализует машину состояний интерактивного выбора слотов:
// (state, action) -> state. Редьюсер синхронный и однопоточный, все внешние
// зависимости (текущее время, бронирования выбранного дня) передаются явно
// через Env, глобальные часы не читаются.
package picker

import (
	"strings"
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
	"github.com/m-andrianov/BRB-BookingService/internal/selection"
	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// Env внешние данные одного шага редьюсера
type Env struct {
	Now         time.Time
	Bookings    []*domain.Booking // активные бронирования на State.SelectedDate
	RequesterID int64
}

// State состояние выбора. Значение, а не указатель: Reduce возвращает копию
type State struct {
	Services []domain.Service
	Packages []domain.ServicePackage

	Selection     domain.BookingSelection
	SelectedDate  time.Time
	SelectedSlots []string

	// SelectionError последняя ошибка выбора слота; nil, когда выбор корректен
	SelectionError error
}

// NewState возвращает начальное состояние: режим услуг, пустой выбор,
// дата по умолчанию
func NewState(now time.Time) State {
	return State{
		Selection:     selection.Empty(domain.ModeServices),
		SelectedDate:  DefaultDate(now),
		SelectedSlots: []string{},
	}
}

// DefaultDate возвращает дату по умолчанию: завтра, либо ближайший
// понедельник, если сегодня суббота (воскресенье - выходной).
func DefaultDate(now time.Time) time.Time {
	today := truncateToDay(now)
	if now.Weekday() == time.Saturday {
		return today.AddDate(0, 0, 2)
	}
	return today.AddDate(0, 0, 1)
}

// Reduce применяет событие к состоянию и возвращает новое состояние.
// Исходное состояние не изменяется.
func Reduce(state State, action Action, env Env) State {
	switch a := action.(type) {
	case SetServices:
		// Обновление каталога не должно молча ломать начатый выбор
		state.Services = a.Services
		return state

	case SetPackages:
		state.Packages = a.Packages
		return state

	case SetSelectionMode:
		// Смена режима меняет число требуемых слотов, прежний выбор слотов устарел
		state.Selection = selection.New(a.Mode, state.Services, state.Packages, nil, nil)
		return clearSlots(state)

	case ToggleService:
		ids := toggleID(state.Selection.ServiceIDs, a.ID)
		state.Selection = selection.New(state.Selection.Mode, state.Services, state.Packages, ids, state.Selection.PackageID)
		return clearSlots(state)

	case SelectPackage:
		state.Selection = selection.New(state.Selection.Mode, state.Services, state.Packages, nil, a.ID)
		return clearSlots(state)

	case ClearSelection:
		state.Selection = selection.Empty(state.Selection.Mode)
		return clearSlots(state)

	case SetDate:
		// Даты в прошлом игнорируются целиком
		if truncateToDay(a.Date).Before(truncateToDay(env.Now)) {
			return state
		}
		state.SelectedDate = truncateToDay(a.Date)
		return clearSlots(state)

	case ToggleSlot:
		return toggleSlot(state, a.SlotID, env)

	case ClearSlots:
		return clearSlots(state)

	case PreselectService:
		state.Selection = selection.New(domain.ModeServices, state.Services, state.Packages, []int64{a.ID}, nil)
		return clearSlots(state)

	case PreselectPackage:
		id := a.ID
		state.Selection = selection.New(domain.ModePackage, state.Services, state.Packages, nil, &id)
		return clearSlots(state)

	case Reset:
		fresh := NewState(env.Now)
		fresh.Services = state.Services
		fresh.Packages = state.Packages
		return fresh

	default:
		return state
	}
}

// toggleSlot обрабатывает клик по слоту.
// Повторный клик по выбранному слоту сбрасывает выбор целиком ("начать
// заново", а не "убрать один из"). Для многослотового бронирования стартовый
// слот принимается, только если от него есть непрерывная цепочка доступных
// слотов нужной длины, не переходящая через обед.
func toggleSlot(state State, slotID string, env Env) State {
	for _, selected := range state.SelectedSlots {
		if selected == slotID {
			return clearSlots(state)
		}
	}

	required := state.Selection.RequiredSlots
	if required <= 1 {
		state.SelectedSlots = []string{slotID}
		state.SelectionError = nil
		return state
	}

	slots := schedule.GenerateTimeSlots(state.SelectedDate, env.Bookings, env.RequesterID, env.Now)
	index := schedule.FindSlotIndex(slots, slotID)

	run, err := schedule.ValidateConsecutiveRun(slots, index, required)
	if err != nil {
		// Выбор слотов не трогаем, пользователь просто выберет другой слот
		state.SelectionError = err
		return state
	}

	state.SelectedSlots = run
	state.SelectionError = nil
	return state
}

// CanProceed решает, можно ли отправлять бронирование: дата выбрана, число
// выбранных слотов совпадает с требуемым, ошибок нет и выбор не пуст.
// Предикат вычисляется заново на каждом состоянии и нигде не кешируется.
func (s State) CanProceed() bool {
	return !s.SelectedDate.IsZero() &&
		s.Selection.RequiredSlots > 0 &&
		len(s.SelectedSlots) == s.Selection.RequiredSlots &&
		s.SelectionError == nil &&
		!s.Selection.IsEmpty()
}

// Payload данные для создания бронирования, собранные из состояния
type Payload struct {
	ServiceIDs      []int64
	PackageID       *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	SubtotalPrice   float64
}

// BookingPayload собирает payload создания бронирования из текущего
// состояния. ok == false, пока выбор не готов к отправке.
func (s State) BookingPayload() (Payload, bool) {
	if !s.CanProceed() {
		return Payload{}, false
	}

	startTime, err := slotTimeFromID(s.SelectedSlots[0])
	if err != nil {
		return Payload{}, false
	}

	return Payload{
		ServiceIDs:      s.Selection.ServiceIDs,
		PackageID:       s.Selection.PackageID,
		Date:            s.SelectedDate,
		StartTime:       startTime,
		DurationMinutes: s.Selection.RoundedDurationMinutes,
		SubtotalPrice:   s.Selection.SubtotalPrice,
	}, true
}

func clearSlots(state State) State {
	state.SelectedSlots = []string{}
	state.SelectionError = nil
	return state
}

// toggleID возвращает новый список id с добавленным либо убранным id
func toggleID(ids []int64, id int64) []int64 {
	result := make([]int64, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		result = append(result, existing)
	}
	if !found {
		result = append(result, id)
	}
	return result
}

// slotTimeFromID извлекает время начала из составного id слота "YYYY-MM-DDTHH:MM"
func slotTimeFromID(slotID string) (types.TimeString, error) {
	_, timePart, found := strings.Cut(slotID, "T")
	if !found {
		return types.NewTimeStringFromString(slotID)
	}
	return types.NewTimeStringFromString(timePart)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
