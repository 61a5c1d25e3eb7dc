package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/schedule"
	"github.com/m-andrianov/BRB-BookingService/internal/selection"
)

// UseCase use case создания бронирования.
// Клиентская машина состояний могла устареть между выбором слота и отправкой,
// поэтому выбор пересчитывается по каталогу заново, а доступность цепочки
// слотов перепроверяется внутри сериализуемой транзакции.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, services=%v, package=%v, date=%s, time=%s",
		req.UserID, req.ServiceIDs, req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Валидация времени начала (сетка 30 минут, рабочие часы)
	if err := validateStartTime(req); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 5. Загружаем каталог и пересчитываем выбор авторитетно на сервере
	services, err := uc.catalogRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	packages, err := uc.catalogRepo.ListPackages(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list packages: %v", err)
		return nil, fmt.Errorf("%w: failed to list packages: %v", ErrInternal, err)
	}

	mode := domain.ModeServices
	if req.PackageID != nil {
		mode = domain.ModePackage
	}

	sel := selection.New(mode, services, packages, req.ServiceIDs, req.PackageID)
	if sel.IsEmpty() || sel.DurationMinutes == 0 {
		// Пустой пересчитанный выбор означает, что клиент прислал устаревшие id
		uc.logger.Warn("CreateBooking: selection is empty after recompute: user=%d", req.UserID)
		return nil, ErrEmptySelection
	}

	title := buildTitle(sel, services, packages)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка доступности и создание в сериализуемой транзакции,
	// чтобы два клиента не заняли одну цепочку слотов
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования на дату
		bookings, err := uc.bookingRepo.GetByDate(txCtx, domain.DayBookingsFilter{Date: req.Date})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем цепочку из requiredSlots подряд идущих слотов
		slots := schedule.GenerateTimeSlots(req.Date, bookings, req.UserID, now)
		index := schedule.FindSlotIndex(slots, domain.SlotID(req.Date, req.StartTime))

		if _, err := schedule.ValidateConsecutiveRun(slots, index, sel.RequiredSlots); err != nil {
			uc.logger.Warn("CreateBooking: slot run validation failed: user=%d, time=%s, slots=%d: %v",
				req.UserID, req.StartTime, sel.RequiredSlots, err)
			return mapScheduleError(err)
		}

		// 6.3. Создаем бронирование с денормализацией каталога
		booking := &domain.Booking{
			UserID:          req.UserID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: sel.RoundedDurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceIDs:      sel.ServiceIDs,
			PackageID:       sel.PackageID,
			Title:           title,
			TotalPrice:      sel.SubtotalPrice,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (%d slots from %s)",
		result.ID, sel.RequiredSlots, result.StartTime)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ServiceIDs:      result.ServiceIDs,
		PackageID:       result.PackageID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		RequiredSlots:   sel.RequiredSlots,
		Status:          string(result.Status),
		Title:           result.Title,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// buildTitle собирает человекочитаемое название бронирования из каталога
func buildTitle(sel domain.BookingSelection, services []domain.Service, packages []domain.ServicePackage) string {
	if sel.Mode == domain.ModePackage && sel.PackageID != nil {
		for _, pkg := range packages {
			if pkg.ID == *sel.PackageID {
				return pkg.Name
			}
		}
		return ""
	}

	names := make([]string, 0, len(sel.ServiceIDs))
	for _, svc := range services {
		if sel.HasService(svc.ID) {
			names = append(names, svc.Name)
		}
	}
	return strings.Join(names, ", ")
}

// mapScheduleError переводит ошибки планировщика в ошибки use case
func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrSpansLunch):
		return ErrSpansLunch
	case errors.Is(err, schedule.ErrNotEnoughSlots):
		return ErrNotEnoughSlots
	case errors.Is(err, schedule.ErrSlotUnavailable):
		return ErrSlotNotAvailable
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
