package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wordvault/internal/db"
	"wordvault/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Email: "ana@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)

	err := repo.Create(ctx, &model.User{Email: "ana@example.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.SetAdmin(ctx, user.ID))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsAdmin)

	assert.ErrorIs(t, repo.SetAdmin(ctx, 9999), gorm.ErrRecordNotFound)
	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDictionaryRepository(t *testing.T) {
	repo := NewDictionaryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.DictionaryEntry{Word: "cat", Definition: "a feline"}))
	require.NoError(t, repo.Create(ctx, &model.DictionaryEntry{Word: "cat", Definition: "a jazz musician"}))
	require.NoError(t, repo.Create(ctx, &model.DictionaryEntry{Word: "dog", Definition: "a canine"}))

	err := repo.Create(ctx, &model.DictionaryEntry{Word: "cat", Definition: "a feline"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := repo.Exists(ctx, "cat", "a feline")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, "cat", "a canine")
	require.NoError(t, err)
	assert.False(t, exists)

	entries, err := repo.FindByWord(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a feline", entries[0].Definition)
	assert.Equal(t, "a jazz musician", entries[1].Definition)

	removed, err := repo.DeleteByWord(ctx, "cat")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	entries, err = repo.FindByWord(ctx, "cat")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = repo.FindByWord(ctx, "dog")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	removed, err = repo.DeleteByWord(ctx, "cat")
	require.NoError(t, err)
	assert.Zero(t, removed)
}
