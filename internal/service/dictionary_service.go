package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"wordvault/internal/cache"
	apperrors "wordvault/internal/errors"
	"wordvault/internal/model"
	"wordvault/internal/repository"
)

const searchCacheTTL = 5 * time.Minute

// DictionaryService exposes word lookup and admin-only mutation.
type DictionaryService interface {
	Search(ctx context.Context, word string) ([]string, error)
	AddWord(ctx context.Context, actor *model.User, word, definition string) (Outcome, error)
	RemoveWord(ctx context.Context, actor *model.User, word string) (Outcome, int64, error)
}

type dictionaryService struct {
	repo   repository.DictionaryRepository
	cache  *cache.Client
	logger *slog.Logger
}

// NewDictionaryService builds a DictionaryService.
func NewDictionaryService(repo repository.DictionaryRepository, cache *cache.Client, logger *slog.Logger) DictionaryService {
	return &dictionaryService{repo: repo, cache: cache, logger: logger}
}

func (s *dictionaryService) cacheKey(word string) string {
	return "search:" + word
}

// Search returns every definition of word. An unknown word is an empty slice, not an error.
func (s *dictionaryService) Search(ctx context.Context, word string) ([]string, error) {
	if word == "" {
		return nil, apperrors.ErrMissingFields
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(word)); data != nil {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.FindByWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("find word: %w", err)
	}
	definitions := make([]string, 0, len(entries))
	for _, e := range entries {
		definitions = append(definitions, e.Definition)
	}

	if len(definitions) > 0 {
		if payload, err := json.Marshal(definitions); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(word), payload, searchCacheTTL)
		}
	}
	return definitions, nil
}

// AddWord stores a new (word, definition) pair. Only admins may add.
func (s *dictionaryService) AddWord(ctx context.Context, actor *model.User, word, definition string) (Outcome, error) {
	if err := RequireAdmin(actor); err != nil {
		return "", err
	}
	if word == "" || definition == "" {
		return "", apperrors.ErrMissingFields
	}

	exists, err := s.repo.Exists(ctx, word, definition)
	if err != nil {
		return "", fmt.Errorf("check entry: %w", err)
	}
	if exists {
		return OutcomeAlreadyExists, nil
	}

	if err := s.repo.Create(ctx, &model.DictionaryEntry{Word: word, Definition: definition}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return OutcomeAlreadyExists, nil
		}
		return "", fmt.Errorf("create entry: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(word))

	s.logger.InfoContext(ctx, "word added", "word", word, "by", actor.ID)
	return OutcomeCreated, nil
}

// RemoveWord deletes every definition of word. Only admins may remove.
func (s *dictionaryService) RemoveWord(ctx context.Context, actor *model.User, word string) (Outcome, int64, error) {
	if err := RequireAdmin(actor); err != nil {
		return "", 0, err
	}
	if word == "" {
		return "", 0, apperrors.ErrMissingFields
	}

	removed, err := s.repo.DeleteByWord(ctx, word)
	if err != nil {
		return "", 0, fmt.Errorf("delete word: %w", err)
	}
	if removed == 0 {
		return OutcomeNotFound, 0, nil
	}
	_ = s.cache.Delete(ctx, s.cacheKey(word))

	s.logger.InfoContext(ctx, "word removed", "word", word, "entries", removed, "by", actor.ID)
	return OutcomeRemoved, removed, nil
}
