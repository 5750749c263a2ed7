package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	files, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_create_leads.sql")

	content, err := fs.ReadFile(Migrations(), "00001_create_leads.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")
}

func TestConnect_EmptyURL(t *testing.T) {
	pool, err := Connect(context.Background(), "")
	assert.Nil(t, pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestMigrate_NilPool(t *testing.T) {
	err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database pool is required")
}

func TestQB_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := QB.Insert("leads").Columns("id", "full_name").Values("x", "y").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO leads (id,full_name) VALUES ($1,$2)", query)
	assert.Equal(t, []any{"x", "y"}, args)
}
