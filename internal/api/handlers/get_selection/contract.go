package get_selection

import (
	"context"

	"github.com/m-andrianov/BRB-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	Get(ctx context.Context, userID int64) (*models.StateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
