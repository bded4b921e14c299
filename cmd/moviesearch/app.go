package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/amaumene/gomoviesearch/internal/cache"
	"github.com/amaumene/gomoviesearch/internal/config"
	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/database"
	"github.com/amaumene/gomoviesearch/internal/details"
	"github.com/amaumene/gomoviesearch/internal/search"
	"github.com/amaumene/gomoviesearch/internal/services"
	"github.com/amaumene/gomoviesearch/pkg/logger"
	"github.com/amaumene/gomoviesearch/pkg/security"
)

// appOptions selects how the shared wiring is built for a command.
type appOptions struct {
	// ephemeral keeps the snapshot in memory instead of the bolt file
	ephemeral bool
	// quiet lowers the default log level to warn for terminal commands
	quiet     bool
	logOutput io.Writer
}

type app struct {
	cfg      *config.Config
	log      logger.Logger
	services *services.Container
	search   *search.Controller
	details  *details.Controller
}

func newApp(c *cli.Command, opts appOptions) (*app, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, c, opts.quiet)

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Output: opts.logOutput,
	})

	tmdb := services.NewTMDB(services.TMDBOptions{
		APIKey:       cfg.TMDBAPIKey,
		BaseURL:      cfg.TMDBBaseURL,
		ImageBaseURL: cfg.TMDBImageBaseURL,
		Language:     cfg.TMDBLanguage,
		Timeout:      cfg.HTTPTimeout,
	}, log)
	switch {
	case !tmdb.IsConfigured():
		log.Warnf("[App] no TMDB API key configured, set TMDB_API_KEY or VITE_API_KEY")
	case !security.NewAPIKeyValidator().IsValidTMDBKey(cfg.TMDBAPIKey):
		log.Warnf("[App] TMDB API key does not look like a 32 character v3 key")
	}

	container := &services.Container{
		TMDB:   tmdb,
		Logger: log,
	}

	if opts.ephemeral {
		container.Store = cache.NewMemoryStore()
		log.Infof("[App] using in-memory search snapshot")
	} else {
		db, err := database.NewBolt(cfg.DatabasePath, constants.SearchBucket)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		container.DB = db
		container.Store = cache.NewBoltStore(db)
		log.Debugf("[App] bolt database opened at %s", cfg.DatabasePath)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		services: container,
		search:   search.New(tmdb, container.Store, log),
		details:  details.New(tmdb, tmdb.ImageBaseURL(), log),
	}, nil
}

// applyFlags lets global command line flags override loaded configuration.
func applyFlags(cfg *config.Config, c *cli.Command, quiet bool) {
	if db := c.String("db"); db != "" {
		cfg.DatabasePath = db
	}

	switch {
	case c.String("log-level") != "":
		cfg.LogLevel = c.String("log-level")
	case quiet && os.Getenv("LOG_LEVEL") == "":
		cfg.LogLevel = "warn"
	}
}

func (a *app) Close() {
	if err := a.services.Close(); err != nil {
		a.log.Errorf("[App] failed to close database: %v", err)
	}
}
