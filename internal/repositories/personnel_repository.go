package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

// personnelColumns maps editable wire fields to table columns.
// Only these columns are ever interpolated into UPDATE statements.
var personnelColumns = map[models.PersonnelField]string{
	models.FieldName:       "name",
	models.FieldNationalID: "national_id",
	models.FieldPhone:      "phone",
}

type personnelRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPersonnelRepository creates a new personnel repository
func NewPersonnelRepository(db *sql.DB, logger *zap.Logger) *personnelRepository {
	return &personnelRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a personnel row together with the quadrant of its venue
func (r *personnelRepository) GetByID(ctx context.Context, id int) (*models.Personnel, error) {
	query := `
		SELECT p.id, p.venue_id, p.role_label, p.name, p.national_id, p.phone, v.quadrant
		FROM personnel p
		JOIN venues v ON v.id = p.venue_id
		WHERE p.id = ?
	`

	var p models.Personnel
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.VenueID,
		&p.RoleLabel,
		&p.Name,
		&p.NationalID,
		&p.Phone,
		&p.Quadrant,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("personnel %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get personnel by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}

	return &p, nil
}

// UpdateField overwrites one editable attribute of a personnel row
func (r *personnelRepository) UpdateField(ctx context.Context, id int, field models.PersonnelField, value string) error {
	column, ok := personnelColumns[field]
	if !ok {
		return fmt.Errorf("invalid personnel field: %s", field)
	}

	query := fmt.Sprintf(`UPDATE personnel SET %s = ? WHERE id = ?`, column)

	if _, err := r.db.ExecContext(ctx, query, value, id); err != nil {
		r.logger.Error("failed to update personnel", zap.Error(err), zap.Int("id", id), zap.String("field", string(field)))
		return fmt.Errorf("failed to update personnel: %w", err)
	}

	return nil
}
