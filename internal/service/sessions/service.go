package sessions

import (
	"context"
	"fmt"
	"sync"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/picker"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
	"github.com/m-andrianov/BRB-BookingService/internal/service/sessions/models"
)

// Service хранит состояние выбора каждого пользователя на сервере.
// Состояния лежат в map под мьютексом: клиенты (бот, SPA) шлют действия
// и читают обратно состояние с сеткой слотов, ничего не держа у себя.
type Service struct {
	mu     sync.Mutex
	states map[int64]picker.State

	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий выбора
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		states:       make(map[int64]picker.State),
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает текущее состояние выбора пользователя.
// Если состояния еще нет, создает новое с датой по умолчанию.
func (s *Service) Get(ctx context.Context, userID int64) (*models.StateResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.refreshedState(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.states[userID] = state

	return s.buildResponse(ctx, userID, state)
}

// Dispatch применяет действие к состоянию выбора пользователя и возвращает
// новое состояние. Каталог перечитывается перед каждым действием, а для
// действий со слотами подгружаются бронирования на выбранную дату.
func (s *Service) Dispatch(ctx context.Context, userID int64, action picker.Action) (*models.StateResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if action == nil {
		return nil, fmt.Errorf("%w: action is required", ErrInvalidInput)
	}

	s.logger.Info("Dispatch: user=%d, action=%T", userID, action)

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.refreshedState(ctx, userID)
	if err != nil {
		return nil, err
	}

	env := picker.Env{
		Now:         s.timeProvider.Now(),
		RequesterID: userID,
	}

	// Для действий со слотами нужны бронирования на выбранную дату
	if _, ok := action.(picker.ToggleSlot); ok {
		bookings, err := s.dayBookings(ctx, state)
		if err != nil {
			return nil, err
		}
		env.Bookings = bookings
	}

	state = picker.Reduce(state, action, env)
	s.states[userID] = state

	if state.SelectionError != nil {
		s.logger.Warn("Dispatch: user=%d, action=%T rejected: %v", userID, action, state.SelectionError)
	}

	return s.buildResponse(ctx, userID, state)
}

// refreshedState достает состояние пользователя (или создает новое)
// и обновляет в нем каталог услуг и пакетов
func (s *Service) refreshedState(ctx context.Context, userID int64) (picker.State, error) {
	state, ok := s.states[userID]
	if !ok {
		state = picker.NewState(s.timeProvider.Now())
		s.logger.Info("refreshedState: created new selection state for user=%d", userID)
	}

	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("refreshedState: failed to list services: %v", err)
		return state, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	packages, err := s.catalogRepo.ListPackages(ctx)
	if err != nil {
		s.logger.Error("refreshedState: failed to list packages: %v", err)
		return state, fmt.Errorf("%w: failed to list packages: %v", ErrInternal, err)
	}

	env := picker.Env{Now: s.timeProvider.Now(), RequesterID: userID}
	state = picker.Reduce(state, picker.SetServices{Services: services}, env)
	state = picker.Reduce(state, picker.SetPackages{Packages: packages}, env)

	return state, nil
}

// buildResponse собирает DTO состояния с сеткой слотов на выбранную дату
func (s *Service) buildResponse(ctx context.Context, userID int64, state picker.State) (*models.StateResponse, error) {
	bookings, err := s.dayBookings(ctx, state)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateTimeSlots(state.SelectedDate, bookings, userID, s.timeProvider.Now())
	return models.FromState(state, slots), nil
}

// dayBookings загружает активные бронирования на выбранную дату состояния
func (s *Service) dayBookings(ctx context.Context, state picker.State) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByDate(ctx, domain.DayBookingsFilter{Date: state.SelectedDate})
	if err != nil {
		s.logger.Error("dayBookings: failed to get bookings for date=%s: %v",
			state.SelectedDate.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}
