package app

import (
	"context"

	"github.com/mcorpas/podarc/internal/config"
	"github.com/mcorpas/podarc/internal/domain"
	"github.com/mcorpas/podarc/internal/logger"
)

// ArchiveStore is what the commands and the API need from persistence.
// Declared here so callers don't import the store package directly.
type ArchiveStore interface {
	RecordRun(ctx context.Context, run *domain.FetchRun) error
	RecordResult(ctx context.Context, res *domain.FetchResult) error
	UpsertEpisode(ctx context.Context, ep *domain.Episode) error
	ListEpisodes(ctx context.Context) ([]*domain.Episode, error)
	ListRuns(ctx context.Context) ([]*domain.FetchRun, error)
	ListResults(ctx context.Context, runID string) ([]*domain.FetchResult, error)
	Close() error
}

// Context holds the core environment and shared resources for podarc.
// It acts as the "Single Source of Truth" for the application state.
type Context struct {
	Config *config.Config
	Logger *logger.Logger
	Store  ArchiveStore
}

// NewContext initializes the base environment.
func NewContext(cfg *config.Config, log *logger.Logger) *Context {
	return &Context{
		Config: cfg,
		Logger: log,
	}
}
