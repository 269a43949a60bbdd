package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"bookable/internal/assistant"
	httputil "bookable/pkg/http"
	"bookable/pkg/logger"
	"bookable/pkg/middleware"
)

type queryRequest struct {
	Query string `json:"query"`
}

type AssistantHandler struct {
	service *assistant.Service
	log     *logger.Logger
}

func NewAssistantHandler(service *assistant.Service, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log,
	}
}

func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenantID := ps.ByName("tenantId")

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		if writeErr := httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{
			Error: "Authentication required",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Query", "error", writeErr)
		}
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Query", "error", writeErr)
		}
		return
	}

	identity := assistant.Identity{Name: claims.Name, Email: claims.Email}

	reply, err := h.service.HandleQuery(r.Context(), tenantID, identity, req.Query)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Query", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reply); err != nil {
		h.log.Error("failed to write success response", "handler", "Query", "error", err)
	}
}

func (h *AssistantHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/tenants/:tenantId/assistant", h.Query)
}
