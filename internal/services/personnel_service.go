package services

import (
	"context"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

// PersonnelRepository is the interface that wraps methods for Personnel table data access
type PersonnelRepository interface {
	// Method GetByID retrieves a personnel row together with the quadrant of its venue.
	//
	// If the row does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Personnel, error)
	// Method UpdateField overwrites one editable attribute ("nombre", "ci" or "cel") of a personnel row.
	//
	// Other field names are rejected with an error and no query is issued.
	UpdateField(ctx context.Context, id int, field models.PersonnelField, value string) error
}

type personnelService struct {
	repo   PersonnelRepository
	logger *zap.Logger
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(repo PersonnelRepository, logger *zap.Logger) *personnelService {
	return &personnelService{
		repo:   repo,
		logger: logger,
	}
}

// UpdateField fills one attribute of a personnel slot.
//
// An unknown id yields models.ErrNotFound and nothing is written.
// An unrecognised field name is accepted and ignored.
// A nil principal means access control is disabled; otherwise users may only edit
// personnel of venues in their own quadrant (models.ErrForbidden).
func (s *personnelService) UpdateField(ctx context.Context, principal *models.Principal, req *models.UpdatePersonnelRequest) error {
	p, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to get personnel: %w", err)
	}

	if principal != nil && !principal.CanAccessQuadrant(p.Quadrant) {
		return fmt.Errorf("personnel %d in quadrant %s: %w", p.ID, p.Quadrant, models.ErrForbidden)
	}

	if !req.Field.Valid() {
		s.logger.Debug("ignoring unknown personnel field", zap.Int("id", req.ID), zap.String("field", string(req.Field)))
		return nil
	}

	if err := s.repo.UpdateField(ctx, p.ID, req.Field, req.Value); err != nil {
		s.logger.Error("failed to update personnel", zap.Error(err), zap.Int("id", p.ID))
		return fmt.Errorf("failed to update personnel: %w", err)
	}

	return nil
}
