package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordvault/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.DictionaryEntry{}))
	assert.True(t, gormDB.Migrator().HasIndex(&model.DictionaryEntry{}, "idx_word_definition"))

	require.NoError(t, Reset(gormDB))
	assert.False(t, gormDB.Migrator().HasTable(&model.User{}))
}
