package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"bookable/internal/catalog/service"
	httputil "bookable/pkg/http"
	"bookable/pkg/logger"
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

func (h *CatalogHandler) ListTenants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tenants, err := h.service.ListTenants(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListTenants", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tenants); err != nil {
		h.log.Error("failed to write success response", "handler", "ListTenants", "error", err)
	}
}

func (h *CatalogHandler) ListResources(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenantID := ps.ByName("tenantId")

	resources, err := h.service.ListResources(r.Context(), tenantID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListResources", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resources); err != nil {
		h.log.Error("failed to write success response", "handler", "ListResources", "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tenants", h.ListTenants)
	router.GET("/api/v1/tenants/:tenantId/resources", h.ListResources)
}
