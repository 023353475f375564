package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/leflux-api/internal/api"
	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/generation"
	"github.com/phrazzld/leflux-api/internal/platform/gemini"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/platform/postgres"
	"github.com/phrazzld/leflux-api/internal/platform/webdict"
	"github.com/phrazzld/leflux-api/internal/redact"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/service/review"
	"github.com/phrazzld/leflux-api/internal/store"
)

// application holds the shared dependencies of a running server so they
// can be released together on shutdown.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	db        *sql.DB

	vocabStore store.VocabStore
	textStore  store.TextStore
	logStore   store.ReviewLogStore

	vocabService   service.VocabService
	libraryService service.LibraryService
	storyService   service.StoryService
	reviewService  review.Service
}

// setupLogger builds the process logger from cfg.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	log, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return log, closer, nil
}

// newApplication connects to the database and wires stores, services and
// the optional story generator.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger, logCloser io.Closer) (*application, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established",
		slog.String("url", postgres.MaskURL(cfg.Database.URL)))

	var generator generation.StoryGenerator
	if cfg.LLM.Enabled() {
		g, err := gemini.NewGeminiGenerator(ctx, log, cfg.LLM)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create story generator: %w", err)
		}
		generator = g
	} else {
		log.Warn("no Gemini API key configured, story generation is disabled")
	}

	app := &application{
		config:    cfg,
		logger:    log,
		logCloser: logCloser,
		db:        db,
	}
	app.wire(generator)
	return app, nil
}

// wire builds stores and services on top of app.db.
func (app *application) wire(generator generation.StoryGenerator) {
	cfg := app.config

	app.vocabStore = postgres.NewPostgresVocabStore(app.db, app.logger)
	app.textStore = postgres.NewPostgresTextStore(app.db, app.logger)
	app.logStore = postgres.NewPostgresReviewLogStore(app.db, app.logger)

	scheduler := srs.NewServiceWithParams(srs.NewParams(cfg.SRS))
	runTx := service.NewSQLTxRunner(app.db)

	app.vocabService = service.NewVocabService(app.vocabStore, app.logStore, scheduler,
		app.dictionaryLookup(), runTx, app.logger)
	app.libraryService = service.NewLibraryService(app.textStore, app.vocabStore, app.logger)
	app.storyService = service.NewStoryService(generator, app.libraryService, cfg.LLM.MaxStoryChars, app.logger)
	app.reviewService = review.NewService(app.vocabStore, app.logStore, scheduler, runTx, cfg.Review, app.logger)
}

// dictionaryLookup returns the cached web dictionary, or nil when disabled.
func (app *application) dictionaryLookup() dictionary.Lookup {
	cfg := app.config.Dictionary
	if !cfg.Enabled {
		app.logger.Info("dictionary lookup is disabled")
		return nil
	}
	return dictionary.NewCache(webdict.NewClient(cfg, app.logger), cfg.CacheSize)
}

// router returns the HTTP handler tree.
func (app *application) router() http.Handler {
	return api.NewRouter(api.Handlers{
		Vocab:  api.NewVocabHandler(app.vocabService, app.logger),
		Review: api.NewReviewHandler(app.reviewService, app.logger),
		Texts:  api.NewTextHandler(app.libraryService, app.logger),
		Story:  api.NewStoryHandler(app.storyService, app.logger),
		DB:     app.db,
	}, app.logger)
}

// cleanup releases the database pool and log file.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", redact.Error(err)))
		}
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
}
