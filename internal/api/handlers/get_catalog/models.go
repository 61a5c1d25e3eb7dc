package get_catalog

import (
	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// PackageResponse HTTP модель пакета услуг
type PackageResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ServiceIDs      []int64 `json:"serviceIds"`
}

// CatalogResponse HTTP модель каталога
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Packages []PackageResponse `json:"packages"`
}

// FromDomain конвертирует domain модели каталога в HTTP response
func FromDomain(services []domain.Service, packages []domain.ServicePackage) *CatalogResponse {
	resp := &CatalogResponse{
		Services: make([]ServiceResponse, 0, len(services)),
		Packages: make([]PackageResponse, 0, len(packages)),
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	for _, pkg := range packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:              pkg.ID,
			Name:            pkg.Name,
			DurationMinutes: pkg.DurationMinutes,
			Price:           pkg.Price,
			ServiceIDs:      pkg.ServiceIDs,
		})
	}

	return resp
}
