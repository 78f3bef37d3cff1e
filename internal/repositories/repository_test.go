package repositories

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupMockDB creates a mock database and a development logger
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *zap.Logger, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, logger, cleanup
}

func strPtr(s string) *string { return &s }
