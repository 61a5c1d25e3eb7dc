package dispatch_selection

import (
	"errors"
	"net/http"

	"github.com/m-andrianov/BRB-BookingService/internal/api/handlers"
	"github.com/m-andrianov/BRB-BookingService/internal/api/middleware"
	"github.com/m-andrianov/BRB-BookingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownAction      = "неизвестный тип действия"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection/actions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP модель в действие машины состояний
	action, err := req.ToPickerAction()
	if err != nil {
		h.logger.Warn("POST /selection/actions - Invalid action: user_id=%d, type=%s, error=%v",
			userID, req.Type, err)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	state, err := h.service.Dispatch(r.Context(), userID, action)
	if err != nil {
		if errors.Is(err, sessions.ErrInvalidInput) {
			h.logger.Warn("POST /selection/actions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /selection/actions - Failed to dispatch action: user_id=%d, type=%s, error=%v",
			userID, req.Type, err)
		handlers.RespondInternalError(w)
		return
	}

	// Отклонённый выбор слота - не ошибка HTTP: клиент читает selectionError из состояния
	h.logger.Info("POST /selection/actions - Action dispatched: user_id=%d, type=%s, canProceed=%t",
		userID, req.Type, state.CanProceed)
	handlers.RespondJSON(w, http.StatusOK, state)
}
