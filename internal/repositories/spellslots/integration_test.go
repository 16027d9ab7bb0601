//go:build integration
// +build integration

package spellslots

import (
	"context"
	"testing"

	"github.com/Kkzin999/sun/internal/database"
	"github.com/Kkzin999/sun/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	catalog := testCatalog(t)
	exerciseRepository(t, NewRedis(client, catalog), catalog)
}

func TestPostgresRepository_Integration(t *testing.T) {
	dsn := testutils.CreateTestPostgresOrSkip(t)

	db, err := database.Open(context.Background(), database.Config{Driver: database.DialectPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	catalog := testCatalog(t)
	exerciseRepository(t, NewSQLRepository(&SQLRepoConfig{DB: db, Defaults: catalog}), catalog)
}
