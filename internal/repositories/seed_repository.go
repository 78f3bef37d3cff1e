package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
)

type seedRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSeedRepository creates a new seed repository
func NewSeedRepository(db *sql.DB, logger *zap.Logger) *seedRepository {
	return &seedRepository{
		db:     db,
		logger: logger,
	}
}

// HasUsers reports whether at least one user exists
func (r *seedRepository) HasUsers(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users)`).Scan(&exists); err != nil {
		r.logger.Error("failed to check users existence", zap.Error(err))
		return false, fmt.Errorf("failed to check users existence: %w", err)
	}

	return exists, nil
}

// Insert writes users, venues and their personnel in a single transaction
func (r *seedRepository) Insert(ctx context.Context, users []models.User, venues []models.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if len(users) > 0 {
		placeholders := make([]string, len(users))
		args := make([]any, 0, len(users)*4)
		for i, u := range users {
			placeholders[i] = "(?, ?, ?, ?)"
			args = append(args, u.Username, u.PasswordHash, string(u.Role), u.Quadrant)
		}

		query := fmt.Sprintf(`
			INSERT INTO users (username, password_hash, role, quadrant)
			VALUES %s
		`, strings.Join(placeholders, ","))

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("failed to insert users", zap.Error(err))
			return fmt.Errorf("failed to insert users: %w", err)
		}
	}

	if len(venues) > 0 {
		placeholders := make([]string, len(venues))
		args := make([]any, 0, len(venues)*6)
		for i, v := range venues {
			placeholders[i] = "(?, ?, ?, ?, ?, ?)"
			args = append(args, v.ID, v.Name, v.Quadrant, v.VoterCount, v.RequiredDelegateCount, v.SortOrder)
		}

		query := fmt.Sprintf(`
			INSERT INTO venues (id, name, quadrant, voter_count, required_delegate_count, sort_order)
			VALUES %s
		`, strings.Join(placeholders, ","))

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("failed to insert venues", zap.Error(err))
			return fmt.Errorf("failed to insert venues: %w", err)
		}
	}

	var (
		placeholders []string
		args         []any
	)
	for _, v := range venues {
		for _, p := range v.Personnel {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
			args = append(args, v.ID, p.RoleLabel, p.Name, p.NationalID, p.Phone)
		}
	}
	if len(placeholders) > 0 {
		query := fmt.Sprintf(`
			INSERT INTO personnel (venue_id, role_label, name, national_id, phone)
			VALUES %s
		`, strings.Join(placeholders, ","))

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("failed to insert personnel", zap.Error(err))
			return fmt.Errorf("failed to insert personnel: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
