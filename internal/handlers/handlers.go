// Package handlers implements the HTTP routes: the two screen shells and
// the JSON API they drive.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/details"
	"github.com/amaumene/gomoviesearch/internal/search"
	"github.com/amaumene/gomoviesearch/pkg/logger"
)

// Handler handles HTTP requests for both screens.
type Handler struct {
	search       *search.Controller
	details      *details.Controller
	imageBaseURL string
	logger       logger.Logger
}

// New creates a new Handler over the search and details controllers.
func New(searchCtl *search.Controller, detailsCtl *details.Controller, imageBaseURL string, log logger.Logger) *Handler {
	if imageBaseURL == "" {
		imageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		search:       searchCtl,
		details:      detailsCtl,
		imageBaseURL: imageBaseURL,
		logger:       log,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Screens
	r.GET("/", h.handleSearchPage)
	r.GET("/details/:id", h.handleDetailsPage)
	r.GET(constants.SearchPosterPlaceholder, h.handlePlaceholder)

	// Search API
	api := r.Group("/api")
	api.GET("/search", h.handleSearchState)
	api.PUT("/search/query", h.handleSetQuery)
	api.POST("/search", h.handleSearch)
	api.POST("/search/page/:page", h.handleGoToPage)
	api.POST("/search/next", h.handleNext)
	api.POST("/search/prev", h.handlePrev)

	// Details API
	api.GET("/details/:id", h.handleDetails)

	r.GET("/health", h.handleHealth)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.AppVersion})
}

// fetchContext detaches remote calls from the client connection: a fetch
// that was started completes and updates state even if the browser
// navigates away, as it would in a single page app.
func fetchContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
