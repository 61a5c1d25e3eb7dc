package get_selection

import (
	"net/http"

	"github.com/m-andrianov/BRB-BookingService/internal/api/handlers"
	"github.com/m-andrianov/BRB-BookingService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /selection - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	state, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /selection - Failed to get selection state: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /selection - Selection state retrieved: user_id=%d, canProceed=%t",
		userID, state.CanProceed)
	handlers.RespondJSON(w, http.StatusOK, state)
}
