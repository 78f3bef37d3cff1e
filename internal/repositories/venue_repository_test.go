package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cuadrantes/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	venuesAllQuery        = `SELECT v.id, v.name, v.quadrant, .* FROM venues v LEFT JOIN personnel p ON p.venue_id = v.id ORDER BY v.quadrant, v.sort_order, v.id, p.id`
	venuesByQuadrantQuery = `SELECT v.id, v.name, v.quadrant, .* FROM venues v LEFT JOIN personnel p ON p.venue_id = v.id WHERE v.quadrant = \? ORDER BY v.quadrant, v.sort_order, v.id, p.id`
)

var venueColumns = []string{
	"id", "name", "quadrant", "voter_count", "required_delegate_count", "sort_order",
	"p_id", "role_label", "p_name", "national_id", "phone",
}

func TestVenueRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validate      func(*testing.T, []models.Venue)
	}{
		{
			name: "success groups personnel by venue",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(venueColumns).
					AddRow("u.e.-cielito-lindo", "U.E. Cielito Lindo", "1-A", 900, 9, 0, 1, "Jefe de Recinto", "Ana", "123", "700").
					AddRow("u.e.-cielito-lindo", "U.E. Cielito Lindo", "1-A", 900, 9, 0, 2, "1", "", "", "").
					AddRow("luz-del-mundo-c", "Luz Del Mundo C", "1-A", 0, 0, 1, 19, "Jefe de Recinto", "", "", "").
					AddRow("colegio-san-felipe", "Colegio San Felipe", "2-B", 0, 0, 0, 163, "Jefe de Recinto", "", "", "")
				mock.ExpectQuery(venuesAllQuery).WillReturnRows(rows)
			},
			validate: func(t *testing.T, venues []models.Venue) {
				require.Len(t, venues, 3)

				assert.Equal(t, "u.e.-cielito-lindo", venues[0].ID)
				assert.Equal(t, 900, venues[0].VoterCount)
				assert.Equal(t, 9, venues[0].RequiredDelegateCount)
				require.Len(t, venues[0].Personnel, 2)
				assert.Equal(t, models.Personnel{
					ID: 1, VenueID: "u.e.-cielito-lindo", RoleLabel: "Jefe de Recinto",
					Name: "Ana", NationalID: "123", Phone: "700", Quadrant: "1-A",
				}, venues[0].Personnel[0])
				assert.Equal(t, "1", venues[0].Personnel[1].RoleLabel)

				assert.Equal(t, "luz-del-mundo-c", venues[1].ID)
				assert.Len(t, venues[1].Personnel, 1)

				assert.Equal(t, "2-B", venues[2].Quadrant)
				assert.Equal(t, 163, venues[2].Personnel[0].ID)
			},
		},
		{
			name: "venue without personnel",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(venueColumns).
					AddRow("motacusal", "Motacusal", "5-E", 0, 0, 0, nil, nil, nil, nil, nil)
				mock.ExpectQuery(venuesAllQuery).WillReturnRows(rows)
			},
			validate: func(t *testing.T, venues []models.Venue) {
				require.Len(t, venues, 1)
				assert.NotNil(t, venues[0].Personnel)
				assert.Len(t, venues[0].Personnel, 0)
			},
		},
		{
			name: "empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(venuesAllQuery).WillReturnRows(sqlmock.NewRows(venueColumns))
			},
			validate: func(t *testing.T, venues []models.Venue) {
				assert.NotNil(t, venues)
				assert.Len(t, venues, 0)
			},
		},
		{
			name: "database query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(venuesAllQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(venueColumns).
					AddRow("motacusal", "Motacusal", "5-E", "many", 0, 0, nil, nil, nil, nil, nil)
				mock.ExpectQuery(venuesAllQuery).WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(venueColumns).
					AddRow("motacusal", "Motacusal", "5-E", 0, 0, 0, 1, "1", "", "", "").
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(venuesAllQuery).WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewVenueRepository(db, logger)

			tt.setupMock(mock)

			venues, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, venues)
			} else {
				assert.NoError(t, err)
				tt.validate(t, venues)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVenueRepository_GetByQuadrant(t *testing.T) {
	tests := []struct {
		name          string
		quadrant      string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:     "success",
			quadrant: "8-H",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(venueColumns).
					AddRow("u.-e.-el-retoño", "U. E. El Retoño", "8-H", 0, 0, 0, 800, "Jefe de Recinto", "", "", "").
					AddRow("u.-e.-el-retoño", "U. E. El Retoño", "8-H", 0, 0, 0, 801, "Jefe Suplente", "", "", "").
					AddRow("u.e.-libertad", "U.E. Libertad", "8-H", 0, 0, 2, 836, "Jefe de Recinto", "", "", "")
				mock.ExpectQuery(venuesByQuadrantQuery).WithArgs("8-H").WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:     "unknown quadrant",
			quadrant: "9-Z",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(venuesByQuadrantQuery).WithArgs("9-Z").WillReturnRows(sqlmock.NewRows(venueColumns))
			},
			expectedCount: 0,
		},
		{
			name:     "database error",
			quadrant: "8-H",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(venuesByQuadrantQuery).WithArgs("8-H").WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewVenueRepository(db, logger)

			tt.setupMock(mock)

			venues, err := repo.GetByQuadrant(context.Background(), tt.quadrant)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, venues)
			} else {
				assert.NoError(t, err)
				assert.Len(t, venues, tt.expectedCount)
				for _, v := range venues {
					assert.Equal(t, tt.quadrant, v.Quadrant)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
