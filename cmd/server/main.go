package main

import (
	"context"
	"errors"
	"os"

	"github.com/basketsync/backend/config"
	httpDelivery "github.com/basketsync/backend/internal/delivery/http"
	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/infrastructure/bring"
	"github.com/basketsync/backend/internal/infrastructure/cache"
	"github.com/basketsync/backend/internal/logger"
	"github.com/basketsync/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "basketsync").Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Log.Level, "basketsync")

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(0)

	bringClient := bring.NewClient(bring.Config{
		BaseURL:    cfg.Bring.BaseURL,
		WebURL:     cfg.Bring.WebURL,
		APIKey:     cfg.Bring.APIKey,
		Country:    cfg.Bring.Country,
		Username:   cfg.Bring.Username,
		Password:   cfg.Bring.Password,
		Timeout:    cfg.Bring.Timeout,
		RateLimit:  cfg.Bring.RateLimit,
		CatalogTTL: cfg.Catalog.TTL,
	}, memoryCache, log)

	code := run(context.Background(), cfg, bringClient, log, func(router *gin.Engine) error {
		return router.Run(cfg.Server.Address())
	})

	memoryCache.Close()
	os.Exit(code)
}

// run connects to the configured list and serves the webhook until serve
// returns. The result is the process exit code.
func run(ctx context.Context, cfg *config.Config, session domain.BringSession, log *logger.Logger, serve func(*gin.Engine) error) int {
	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("address", cfg.Server.Address()).
		Str("list", cfg.Bring.ListName).
		Bool("fuzzy_matching", cfg.Matching.FuzzyEnabled()).
		Int("threshold", cfg.Matching.Threshold).
		Msg("Starting basketsync")

	translator := usecase.NewTranslator(nil, usecase.MatchConfig{Threshold: cfg.Matching.Threshold}, log)

	listClient, err := usecase.NewListSyncClient(
		ctx,
		session,
		translator,
		usecase.ListSyncConfig{
			ListName:      cfg.Bring.ListName,
			FuzzyMatching: cfg.Matching.FuzzyEnabled(),
		},
		log,
	)
	if err != nil {
		// The list client already logged the missing list at fatal level
		if !errors.Is(err, domain.ErrListNotFound) {
			log.Critical().Err(err).Msg("Failed to initialize Bring list")
		}
		return exitFailure
	}

	parser := usecase.NewIngredientParser(cfg.Recipe.IgnoredList(), cfg.Recipe.UseAbbreviation, log)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(listClient, parser, log)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, log)

	log.Info().Str("address", cfg.Server.Address()).Msg("Server listening")

	if err := serve(router); err != nil {
		log.Critical().Err(err).Msg("Failed to start server")
		return exitFailure
	}
	return exitOK
}
