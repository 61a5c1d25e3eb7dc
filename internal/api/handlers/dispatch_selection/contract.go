package dispatch_selection

import (
	"context"

	"github.com/m-andrianov/BRB-BookingService/internal/picker"
	"github.com/m-andrianov/BRB-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	Dispatch(ctx context.Context, userID int64, action picker.Action) (*models.StateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
