// Package services provides the TMDB endpoint adapter and the dependency
// injection container for application services.
package services

import (
	"github.com/amaumene/gomoviesearch/internal/cache"
	"github.com/amaumene/gomoviesearch/internal/database"
	"github.com/amaumene/gomoviesearch/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB   *TMDB
	Store  cache.Store
	DB     database.Database
	Logger logger.Logger
}

// Close releases the database, if one was opened.
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
