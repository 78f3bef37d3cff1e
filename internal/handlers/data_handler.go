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

// VenueService is the interface that wraps methods for venue business logic.
type VenueService interface {
	// Method GetAll retrieves every venue with its personnel, grouped by quadrant.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) (models.QuadrantData, error)
	// Method GetByQuadrant retrieves the venues of one quadrant, keyed by that quadrant.
	//
	// "principal" parameter is the authenticated caller, or nil when access control is disabled.
	// If the caller may not read the quadrant, an error wrapping models.ErrForbidden will be returned.
	// Please reference GetAll method for other error values.
	GetByQuadrant(ctx context.Context, principal *models.Principal, quadrant string) (models.QuadrantData, error)
}

// DataHandler handles read requests for venues and their personnel
type DataHandler struct {
	BaseHandler
	service VenueService
}

// NewDataHandler creates a new data handler
func NewDataHandler(svc VenueService, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all data handler routes.
// "authenticated" guards every route; "adminOnly" additionally guards the full dump.
func (h *DataHandler) RegisterRoutes(r chi.Router, authenticated, adminOnly func(http.Handler) http.Handler) {
	r.Route("/data", func(r chi.Router) {
		r.Use(authenticated)
		r.With(adminOnly).Get("/full", h.GetAll)
		r.Get("/quadrant/{quad}", h.GetByQuadrant)
	})
}

// GetAll handles GET /data/full
// @Summary Get all venues
// @Description Get every venue with its personnel, grouped by quadrant
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.QuadrantData
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /data/full [get]
func (h *DataHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get all venues", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, data)
}

// GetByQuadrant handles GET /data/quadrant/{quad}
// @Summary Get quadrant venues
// @Description Get the venues of one quadrant with their personnel. Unknown quadrants yield an empty list.
// @Tags data
// @Produce json
// @Security BearerAuth
// @Param quad path string true "Quadrant identifier" example(1-A)
// @Success 200 {object} models.QuadrantData
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Quadrant not accessible"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /data/quadrant/{quad} [get]
func (h *DataHandler) GetByQuadrant(w http.ResponseWriter, r *http.Request) {
	quadrant := chi.URLParam(r, "quad")

	data, err := h.service.GetByQuadrant(r.Context(), middleware.GetPrincipal(r.Context()), quadrant)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			h.respondError(w, http.StatusForbidden, "quadrant not accessible")
			return
		}
		h.logger.Error("failed to get venues by quadrant", zap.Error(err), zap.String("quadrant", quadrant))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, data)
}
