package get_catalog

import (
	"net/http"

	"github.com/m-andrianov/BRB-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogProvider
	logger  Logger
}

func NewHandler(catalog CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	packages, err := h.catalog.ListPackages(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved successfully: services=%d, packages=%d",
		len(services), len(packages))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services, packages))
}
