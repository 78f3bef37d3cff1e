package services

import (
	"context"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

// VenueRepository is the interface that wraps methods for Venues table data access
type VenueRepository interface {
	// Method GetAll retrieves every venue with its personnel, ordered by quadrant and seed order.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Venue, error)
	// Method GetByQuadrant retrieves the venues of one quadrant with their personnel.
	//
	// Unknown quadrants yield an empty slice. Please reference GetAll method for error values.
	GetByQuadrant(ctx context.Context, quadrant string) ([]models.Venue, error)
}

type venueService struct {
	repo   VenueRepository
	logger *zap.Logger
}

// NewVenueService creates a new venue service
func NewVenueService(repo VenueRepository, logger *zap.Logger) *venueService {
	return &venueService{
		repo:   repo,
		logger: logger,
	}
}

// GetAll returns every venue grouped by quadrant.
// Quadrants without venues are absent from the result.
func (s *venueService) GetAll(ctx context.Context) (models.QuadrantData, error) {
	venues, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all venues", zap.Error(err))
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	data := models.QuadrantData{}
	for i := range venues {
		q := venues[i].Quadrant
		data[q] = append(data[q], venues[i].ToResponse())
	}

	return data, nil
}

// GetByQuadrant returns the venues of one quadrant keyed by that quadrant.
// The key is always present, with an empty list for unknown quadrants.
//
// A nil principal means access control is disabled.
// Otherwise users may only read their own quadrant (models.ErrForbidden).
func (s *venueService) GetByQuadrant(ctx context.Context, principal *models.Principal, quadrant string) (models.QuadrantData, error) {
	if principal != nil && !principal.CanAccessQuadrant(quadrant) {
		return nil, fmt.Errorf("quadrant %s: %w", quadrant, models.ErrForbidden)
	}

	venues, err := s.repo.GetByQuadrant(ctx, quadrant)
	if err != nil {
		s.logger.Error("failed to get venues by quadrant", zap.Error(err), zap.String("quadrant", quadrant))
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	list := make([]models.VenueResponse, 0, len(venues))
	for i := range venues {
		list = append(list, venues[i].ToResponse())
	}

	return models.QuadrantData{quadrant: list}, nil
}
