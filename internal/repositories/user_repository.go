package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUsername retrieves a user by exact username match
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, role, quadrant
		FROM users
		WHERE username = ?
		LIMIT 1
	`

	var (
		user     models.User
		role     string
		quadrant sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&role,
		&quadrant,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get user by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	user.Role = models.Role(role)
	if quadrant.Valid {
		user.Quadrant = &quadrant.String
	}

	return &user, nil
}
