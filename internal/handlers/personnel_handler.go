package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cuadrantes/backend/internal/middleware"
	"github.com/cuadrantes/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PersonnelService is the interface that wraps methods for personnel business logic.
type PersonnelService interface {
	// Method UpdateField overwrites one attribute ("nombre", "ci" or "cel") of a personnel slot.
	//
	// "principal" parameter is the authenticated caller, or nil when access control is disabled.
	// Unrecognised field names are ignored and no error is returned.
	// If the slot does not exist, an error wrapping models.ErrNotFound will be returned.
	// If the caller may not edit the slot's quadrant, an error wrapping models.ErrForbidden will be returned.
	UpdateField(ctx context.Context, principal *models.Principal, req *models.UpdatePersonnelRequest) error
}

// PersonnelHandler handles write requests for personnel slots
type PersonnelHandler struct {
	BaseHandler
	service PersonnelService
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(svc PersonnelService, logger *zap.Logger) *PersonnelHandler {
	return &PersonnelHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all personnel handler routes
func (h *PersonnelHandler) RegisterRoutes(r chi.Router, authenticated func(http.Handler) http.Handler) {
	r.With(authenticated).Post("/update/personal", h.UpdateField)
}

// UpdateField handles POST /update/personal
// @Summary Update a personnel field
// @Description Overwrite the name (nombre), national ID (ci) or phone (cel) of a personnel slot. Unknown fields are ignored.
// @Tags personnel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdatePersonnelRequest true "Update request"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Quadrant not accessible"
// @Failure 404 {object} map[string]string "Personnel not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /update/personal [post]
func (h *PersonnelHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePersonnelRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	err := h.service.UpdateField(r.Context(), middleware.GetPrincipal(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "personnel not found")
		case errors.Is(err, models.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "quadrant not accessible")
		default:
			h.logger.Error("failed to update personnel", zap.Error(err), zap.Int("id", req.ID))
			h.respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
