package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"drportal/internal/catalog/service"
	httputil "drportal/pkg/http"
	"drportal/pkg/logger"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// ListServices returns the name projection of the catalog.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	names, err := h.service.ListNames(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListServices", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, names); err != nil {
		h.log.Error("failed to write success response", "handler", "ListServices", "error", err)
	}
}

// Available returns every service with the slots still open on the
// requested date.
func (h *CatalogHandler) Available(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date := r.URL.Query().Get("date")

	services, err := h.service.Availability(r.Context(), date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Available", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, services); err != nil {
		h.log.Error("failed to write success response", "handler", "Available", "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/service", h.ListServices)
	router.GET("/available", h.Available)
}
