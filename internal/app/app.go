// Package app wires configuration into the running services.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/config"
	"github.com/justsurfingit/job-canvas/internal/database"
	"github.com/justsurfingit/job-canvas/internal/layout"
	"github.com/justsurfingit/job-canvas/internal/llm"
	"github.com/justsurfingit/job-canvas/internal/services"
)

type App struct {
	Store     database.Store
	Completer llm.Completer
	Jobs      *services.JobService
	Diagrams  *services.DiagramService
}

// Wire builds the store, the completer and the services described by cfg.
// An empty DatabaseURL selects the in-memory store.
func Wire(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	var store database.Store
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, diagram runs are kept in memory")
		store = database.NewMemoryStore()
	} else {
		db, err := database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		store = database.NewGormStore(db)
	}

	completer, err := llm.New(ctx, llm.Options{
		Provider:       cfg.LLM.Provider,
		APIKey:         cfg.LLM.APIKey,
		Model:          cfg.LLM.Model,
		CacheSize:      cfg.LLM.CacheSize,
		StaticResponse: cfg.LLM.StaticResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create completer: %w", err)
	}
	logger.Info("Completer ready", zap.String("provider", completer.Name()), zap.String("model", cfg.LLM.Model))

	jobs := services.NewJobService(store, completer, logger.Named("jobs"))
	diagrams := services.NewDiagramService(completer, store, jobs, logger.Named("diagrams"), services.DiagramOptions{
		Timeout:      cfg.LLM.Timeout,
		FlowStrategy: layout.ParseStrategy(cfg.FlowLayout),
		Grouping:     cfg.CanvasGrouping,
	})

	return &App{Store: store, Completer: completer, Jobs: jobs, Diagrams: diagrams}, nil
}
