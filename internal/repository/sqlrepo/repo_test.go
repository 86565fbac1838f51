package sqlrepo

import (
	"context"
	"testing"

	"go-vacancy-backend/pkg/database"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory SQLite record store.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }
