package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"wordvault/internal/config"
	"wordvault/internal/db"
	"wordvault/internal/logging"
	"wordvault/internal/model"
	"wordvault/internal/repository"
	"wordvault/internal/service"
)

// SeedWord is one entry of the SEED_WORDS document.
type SeedWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

func main() {
	cfg := config.Load()
	logger := logging.New("wordvault-seed", cfg.LogLevel)
	logger.Info("starting seed script")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations completed")

	ctx := context.Background()

	// The seed runs without redis: nothing is cached yet.
	userService := service.NewUserService(repository.NewUserRepository(gormDB), nil, logger)
	dictionaryService := service.NewDictionaryService(repository.NewDictionaryRepository(gormDB), nil, logger)

	outcome, admin, err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Error("failed to ensure admin (set ADMIN_EMAIL and ADMIN_PASSWORD)", "error", err)
		os.Exit(1)
	}
	logger.Info("admin ready", "email", admin.Email, "outcome", string(outcome))

	if cfg.SeedWords == "" {
		logger.Info("SEED_WORDS not set, skipping dictionary import")
		return
	}

	logger.Info("loading seed words", "source", cfg.SeedWords)
	words, err := loadSeedWords(ctx, cfg.SeedWords)
	if err != nil {
		logger.Error("failed to load seed words", "error", err)
		os.Exit(1)
	}

	created, skipped, err := seedWords(ctx, dictionaryService, admin, words, logger)
	if err != nil {
		logger.Error("failed to seed words", "error", err)
		os.Exit(1)
	}

	logger.Info("seed completed",
		"created", created,
		"skipped", skipped,
		"processed", len(words),
	)
}

// loadSeedWords reads the JSON list from an http(s) URL or a local file.
func loadSeedWords(ctx context.Context, source string) ([]SeedWord, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var words []SeedWord
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return words, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// seedWords adds every valid entry as admin. Entries that are empty, too long
// or already present are counted as skipped.
func seedWords(ctx context.Context, svc service.DictionaryService, admin *model.User, words []SeedWord, logger *slog.Logger) (created, skipped int, err error) {
	for _, w := range words {
		if w.Word == "" || w.Definition == "" ||
			len(w.Word) > model.MaxWordLength || len(w.Definition) > model.MaxDefinitionLength {
			logger.Warn("skipping invalid entry", "word", w.Word)
			skipped++
			continue
		}

		outcome, err := svc.AddWord(ctx, admin, w.Word, w.Definition)
		if err != nil {
			return created, skipped, fmt.Errorf("error adding %q: %w", w.Word, err)
		}
		if outcome == service.OutcomeCreated {
			created++
		} else {
			skipped++
		}
	}
	return created, skipped, nil
}
