package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/cuadrantes/backend/internal/models"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user *models.User
	err  error
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) GenerateAccessToken(user *models.User) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

// memoryStore keeps users, venues and personnel in memory.
// It implements SeedRepository, VenueRepository and PersonnelRepository
// so tests can exercise services against one shared state.
type memoryStore struct {
	users     []models.User
	venues    []models.Venue
	personnel []models.Personnel
	nextID    int

	insertErr error
	queryErr  error
	updateErr error
	updates   int
}

func (m *memoryStore) HasUsers(ctx context.Context) (bool, error) {
	return len(m.users) > 0, nil
}

func (m *memoryStore) Insert(ctx context.Context, users []models.User, venues []models.Venue) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.users = append(m.users, users...)
	for _, v := range venues {
		for _, p := range v.Personnel {
			m.nextID++
			p.ID = m.nextID
			p.VenueID = v.ID
			p.Quadrant = v.Quadrant
			m.personnel = append(m.personnel, p)
		}
		v.Personnel = nil
		m.venues = append(m.venues, v)
	}
	return nil
}

func (m *memoryStore) collect(filter func(models.Venue) bool) []models.Venue {
	var out []models.Venue
	for _, v := range m.venues {
		if !filter(v) {
			continue
		}
		v.Personnel = []models.Personnel{}
		for _, p := range m.personnel {
			if p.VenueID == v.ID {
				v.Personnel = append(v.Personnel, p)
			}
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quadrant != out[j].Quadrant {
			return out[i].Quadrant < out[j].Quadrant
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

func (m *memoryStore) GetAll(ctx context.Context) ([]models.Venue, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.collect(func(models.Venue) bool { return true }), nil
}

func (m *memoryStore) GetByQuadrant(ctx context.Context, quadrant string) ([]models.Venue, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.collect(func(v models.Venue) bool { return v.Quadrant == quadrant }), nil
}

func (m *memoryStore) GetByID(ctx context.Context, id int) (*models.Personnel, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	for _, p := range m.personnel {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("personnel %d: %w", id, models.ErrNotFound)
}

func (m *memoryStore) UpdateField(ctx context.Context, id int, field models.PersonnelField, value string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.personnel {
		if m.personnel[i].ID != id {
			continue
		}
		m.updates++
		switch field {
		case models.FieldName:
			m.personnel[i].Name = value
		case models.FieldNationalID:
			m.personnel[i].NationalID = value
		case models.FieldPhone:
			m.personnel[i].Phone = value
		default:
			return fmt.Errorf("invalid personnel field: %s", field)
		}
		return nil
	}
	return fmt.Errorf("personnel %d: %w", id, models.ErrNotFound)
}
