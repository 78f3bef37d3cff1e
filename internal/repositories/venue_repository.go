package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

// venueSelect joins every venue with its roster.
// LEFT JOIN keeps venues without personnel; their personnel columns scan as NULL.
const venueSelect = `
	SELECT v.id, v.name, v.quadrant, v.voter_count, v.required_delegate_count, v.sort_order,
		p.id, p.role_label, p.name, p.national_id, p.phone
	FROM venues v
	LEFT JOIN personnel p ON p.venue_id = v.id
`

const venueOrder = `
	ORDER BY v.quadrant, v.sort_order, v.id, p.id
`

type venueRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB, logger *zap.Logger) *venueRepository {
	return &venueRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves every venue with its personnel, ordered by quadrant and seed order
func (r *venueRepository) GetAll(ctx context.Context) ([]models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, venueSelect+venueOrder)
	if err != nil {
		r.logger.Error("failed to query venues", zap.Error(err))
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// GetByQuadrant retrieves the venues of one quadrant with their personnel
func (r *venueRepository) GetByQuadrant(ctx context.Context, quadrant string) ([]models.Venue, error) {
	query := venueSelect + `
	WHERE v.quadrant = ?
	` + venueOrder

	rows, err := r.db.QueryContext(ctx, query, quadrant)
	if err != nil {
		r.logger.Error("failed to query venues by quadrant", zap.Error(err), zap.String("quadrant", quadrant))
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// scanVenues folds the joined rows into venues.
// Rows of the same venue are adjacent because of venueOrder.
func (r *venueRepository) scanVenues(rows *sql.Rows) ([]models.Venue, error) {
	venues := []models.Venue{}
	for rows.Next() {
		var (
			v           models.Venue
			personnelID sql.NullInt64
			roleLabel   sql.NullString
			name        sql.NullString
			nationalID  sql.NullString
			phone       sql.NullString
		)
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Quadrant, &v.VoterCount, &v.RequiredDelegateCount, &v.SortOrder,
			&personnelID, &roleLabel, &name, &nationalID, &phone,
		); err != nil {
			r.logger.Error("failed to scan venue", zap.Error(err))
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}

		if n := len(venues); n == 0 || venues[n-1].ID != v.ID {
			v.Personnel = []models.Personnel{}
			venues = append(venues, v)
		}

		if personnelID.Valid {
			current := &venues[len(venues)-1]
			current.Personnel = append(current.Personnel, models.Personnel{
				ID:         int(personnelID.Int64),
				VenueID:    current.ID,
				RoleLabel:  roleLabel.String,
				Name:       name.String,
				NationalID: nationalID.String,
				Phone:      phone.String,
				Quadrant:   current.Quadrant,
			})
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return venues, nil
}
