package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// sql.Open не устанавливает соединение, поэтому настройку пула можно
// проверить без живой базы.
func TestTunePool(t *testing.T) {
	db, err := sql.Open("pgx", "postgres://localhost:5432/unused?sslmode=disable")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	tunePool(db)

	require.Equal(t, poolMaxOpenConns, db.Stats().MaxOpenConnections)
}
