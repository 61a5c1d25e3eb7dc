package get_catalog

import (
	"context"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

// CatalogProvider интерфейс каталога услуг и пакетов
type CatalogProvider interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListPackages(ctx context.Context) ([]domain.ServicePackage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
