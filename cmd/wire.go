package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/zlarouche/deck-of-cards/internal/adapters/api"
	tomlrepo "github.com/zlarouche/deck-of-cards/internal/adapters/repo/toml"
	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/ports"
	"github.com/zlarouche/deck-of-cards/internal/session"
)

const (
	baseURLKey     = "api.base_url"
	logLevelKey    = "log.level"
	defaultBaseURL = "http://localhost:8080/api"
)

type app struct {
	service *application.Service
	store   *session.Store
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(logLevelKey, "warn")

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.GetString(logLevelKey))
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	baseURL := envOrDefault("CARDS_API_BASE_URL", cfg.GetString(baseURLKey))
	client := api.NewClient(baseURL, http.DefaultClient, log)

	state, err := repo.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	store := session.Restore(state)

	return &app{
		service: application.NewService(client, store, repo, ports.SystemClock{}),
		store:   store,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
