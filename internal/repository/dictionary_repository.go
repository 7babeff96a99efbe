package repository

import (
	"context"

	"gorm.io/gorm"

	"wordvault/internal/model"
)

// DictionaryRepository defines dictionary persistence operations.
type DictionaryRepository interface {
	Create(ctx context.Context, entry *model.DictionaryEntry) error
	Exists(ctx context.Context, word, definition string) (bool, error)
	FindByWord(ctx context.Context, word string) ([]model.DictionaryEntry, error)
	DeleteByWord(ctx context.Context, word string) (int64, error)
}

type dictionaryRepository struct {
	db *gorm.DB
}

// NewDictionaryRepository builds a GORM-backed repository.
func NewDictionaryRepository(db *gorm.DB) DictionaryRepository {
	return &dictionaryRepository{db: db}
}

// Create inserts the entry. An identical (word, definition) pair yields gorm.ErrDuplicatedKey.
func (r *dictionaryRepository) Create(ctx context.Context, entry *model.DictionaryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Exists reports whether the exact (word, definition) pair is stored.
func (r *dictionaryRepository) Exists(ctx context.Context, word, definition string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DictionaryEntry{}).
		Where("word = ? AND definition = ?", word, definition).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByWord returns every entry for the exact word, oldest first.
func (r *dictionaryRepository) FindByWord(ctx context.Context, word string) ([]model.DictionaryEntry, error) {
	var entries []model.DictionaryEntry
	if err := r.db.WithContext(ctx).Where("word = ?", word).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByWord removes every entry for the word and returns how many were removed.
func (r *dictionaryRepository) DeleteByWord(ctx context.Context, word string) (int64, error) {
	res := r.db.WithContext(ctx).Where("word = ?", word).Delete(&model.DictionaryEntry{})
	return res.RowsAffected, res.Error
}
