package create_booking

import (
	"errors"
	"net/http"

	"github.com/m-andrianov/BRB-BookingService/internal/api/handlers"
	"github.com/m-andrianov/BRB-BookingService/internal/api/middleware"
	createBooking "github.com/m-andrianov/BRB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgEmptySelection     = "выбор услуг пуст или устарел"
	msgInvalidDate        = "некорректная дата бронирования"
	msgShopClosed         = "барбершоп закрыт в выбранную дату"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgSpansLunch         = "бронирование пересекает обеденный перерыв"
	msgNotEnoughSlots     = "недостаточно свободных слотов до закрытия"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSpansLunch):
			h.logger.Warn("POST /bookings - Booking spans lunch: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSpansLunch)

		case errors.Is(err, createBooking.ErrNotEnoughSlots):
			h.logger.Warn("POST /bookings - Not enough slots: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughSlots)

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, slots=%d",
		result.ID, userID, result.RequiredSlots)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
