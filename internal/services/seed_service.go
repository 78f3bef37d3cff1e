package services

import (
	"context"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"github.com/cuadrantes/backend/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedRepository is the interface that wraps methods for initial data loading
type SeedRepository interface {
	// Method HasUsers reports whether at least one user exists.
	HasUsers(ctx context.Context) (bool, error)
	// Method Insert writes users, venues and the venues' personnel in a single transaction.
	//
	// If some error occurs, nothing is written and the error is returned.
	Insert(ctx context.Context, users []models.User, venues []models.Venue) error
}

// SeedResult reports what a seed run wrote
type SeedResult struct {
	Skipped   bool
	Users     int
	Venues    int
	Personnel int
}

type seedService struct {
	repo     SeedRepository
	logger   *zap.Logger
	hashCost int
}

// NewSeedService creates a new seed service
func NewSeedService(repo SeedRepository, logger *zap.Logger) *seedService {
	return &seedService{
		repo:     repo,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Run loads the dataset into an empty database.
//
// If any user already exists the run is a no-op and the result is marked Skipped.
// Venues whose slug repeats an earlier venue are skipped together with their roster.
func (s *seedService) Run(ctx context.Context, ds *seed.Dataset) (*SeedResult, error) {
	exists, err := s.repo.HasUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing data: %w", err)
	}
	if exists {
		s.logger.Info("seed skipped, users already exist")
		return &SeedResult{Skipped: true}, nil
	}

	users := make([]models.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if u.Quadrant != "" {
			quadrant := u.Quadrant
			user.Quadrant = &quadrant
		}
		users = append(users, user)
	}

	roles := ds.RoleLabels()
	result := &SeedResult{Users: len(users)}
	seen := make(map[string]string)
	var venues []models.Venue
	for _, q := range ds.Quadrants {
		for order, name := range q.Venues {
			id := seed.Slug(name)
			if first, ok := seen[id]; ok {
				s.logger.Warn("skipping venue with duplicate id",
					zap.String("id", id),
					zap.String("name", name),
					zap.String("first", first),
				)
				continue
			}
			seen[id] = name

			personnel := make([]models.Personnel, 0, len(roles))
			for _, role := range roles {
				personnel = append(personnel, models.Personnel{VenueID: id, RoleLabel: role, Quadrant: q.ID})
			}

			venues = append(venues, models.Venue{
				ID:        id,
				Name:      name,
				Quadrant:  q.ID,
				SortOrder: order,
				Personnel: personnel,
			})
			result.Personnel += len(personnel)
		}
	}
	result.Venues = len(venues)

	if err := s.repo.Insert(ctx, users, venues); err != nil {
		return nil, fmt.Errorf("failed to insert seed data: %w", err)
	}

	s.logger.Info("seed completed",
		zap.Int("users", result.Users),
		zap.Int("venues", result.Venues),
		zap.Int("personnel", result.Personnel),
	)

	return result, nil
}
