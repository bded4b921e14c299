// Package search implements the search screen state: query text, result
// page, pagination and persistence of the last successful search.
//
// The controller is safe for concurrent use. Each fetch captures a request
// generation when it is dispatched; a response whose generation is no
// longer the latest (a newer search, page change or query edit happened
// meanwhile) is dropped without touching state.
package search

import (
	"context"
	"strings"
	"sync"

	"github.com/amaumene/gomoviesearch/internal/cache"
	"github.com/amaumene/gomoviesearch/internal/constants"
	apperrors "github.com/amaumene/gomoviesearch/internal/errors"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/pkg/logger"
)

// Searcher fetches one page of search results.
type Searcher interface {
	SearchMovies(ctx context.Context, query string, page int) (*models.SearchPage, error)
}

// View is an immutable copy of the controller state for rendering.
type View struct {
	Query       string                `json:"query"`
	Results     []models.MovieSummary `json:"results"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
	State       models.UIState        `json:"state"`
	Pagination  models.Pagination     `json:"pagination"`
}

type Controller struct {
	mu       sync.Mutex
	searcher Searcher
	store    cache.Store
	logger   logger.Logger

	query       string
	results     []models.MovieSummary
	currentPage int
	totalPages  int
	state       models.UIState

	// generation of the most recently dispatched fetch
	gen uint64
}

func New(searcher Searcher, store cache.Store, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		searcher:    searcher,
		store:       store,
		logger:      log,
		currentPage: constants.FirstPage,
		state:       models.Idle(),
	}
}

// Restore loads the persisted snapshot, if any, without any network call.
// An unreadable snapshot is logged and treated as absent.
func (c *Controller) Restore() View {
	snap, err := c.store.Read()
	if err != nil {
		c.logger.Warnf("[Search] ignoring unreadable snapshot: %v", err)
		snap = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if snap == nil {
		c.logger.Debugf("[Search] no snapshot to restore")
		return c.viewLocked()
	}

	c.query = snap.Query
	c.results = append([]models.MovieSummary(nil), snap.Results...)
	c.currentPage = snap.CurrentPage
	if c.currentPage < constants.FirstPage {
		c.currentPage = constants.FirstPage
	}
	c.totalPages = snap.TotalPages
	if c.totalPages < 0 {
		c.totalPages = 0
	}
	if len(c.results) > 0 {
		c.state = models.Loaded()
	} else {
		c.state = models.Idle()
	}

	c.logger.Infof("[Search] restored '%s' page %d of %d (%d results)", c.query, c.currentPage, c.totalPages, len(c.results))
	return c.viewLocked()
}

// SetQuery replaces the query text. An edited query invalidates the current
// result set: results are cleared, pagination is reset, the persisted
// snapshot is deleted and any in-flight fetch is abandoned.
func (c *Controller) SetQuery(text string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setQueryLocked(text)
	return c.viewLocked()
}

func (c *Controller) setQueryLocked(text string) {
	c.gen++
	c.query = text
	c.results = nil
	c.currentPage = constants.FirstPage
	c.totalPages = 0
	c.state = models.Idle()

	if err := c.store.Clear(); err != nil {
		c.logger.Errorf("[Search] failed to clear snapshot: %v", err)
	}
}

// Search fetches the current page for the current query.
func (c *Controller) Search(ctx context.Context) View {
	c.mu.Lock()
	return c.searchLocked(ctx)
}

// SearchFor sets the query to text, unless it already matches, and
// searches it. Both steps happen under one lock, so no other operation
// can land between the edit and the dispatch.
func (c *Controller) SearchFor(ctx context.Context, text string) View {
	c.mu.Lock()
	if text != c.query {
		c.setQueryLocked(text)
	}
	return c.searchLocked(ctx)
}

// searchLocked is entered with c.mu held and releases it.
func (c *Controller) searchLocked(ctx context.Context) View {
	if strings.TrimSpace(c.query) == "" {
		c.state = models.Failed(apperrors.MessageEmptyQuery)
		defer c.mu.Unlock()
		return c.viewLocked()
	}
	query, page := c.query, c.currentPage
	gen := c.dispatchLocked()
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, page)
}

// GoToPage moves to page n and fetches it. Out of range pages are
// ignored: the returned bool is false and nothing changes.
func (c *Controller) GoToPage(ctx context.Context, n int) (View, bool) {
	c.mu.Lock()
	if n < 1 || n > c.totalPages {
		defer c.mu.Unlock()
		c.logger.Debugf("[Search] ignoring page %d outside 1..%d", n, c.totalPages)
		return c.viewLocked(), false
	}
	c.currentPage = n
	query := c.query
	gen := c.dispatchLocked()
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, n), true
}

// Next goes to the following page; a no-op on the last page.
func (c *Controller) Next(ctx context.Context) (View, bool) {
	c.mu.Lock()
	n := c.currentPage + 1
	c.mu.Unlock()
	return c.GoToPage(ctx, n)
}

// Prev goes to the previous page; a no-op on the first page.
func (c *Controller) Prev(ctx context.Context) (View, bool) {
	c.mu.Lock()
	n := c.currentPage - 1
	c.mu.Unlock()
	return c.GoToPage(ctx, n)
}

// State returns the current view.
func (c *Controller) State() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) dispatchLocked() uint64 {
	c.gen++
	c.state = models.Loading()
	return c.gen
}

// fetch runs one round trip without holding the lock and applies the
// outcome only if gen is still the latest dispatched generation.
func (c *Controller) fetch(ctx context.Context, gen uint64, query string, page int) View {
	result, err := c.searcher.SearchMovies(ctx, query, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Debugf("[Search] discarding stale response for '%s' page %d", query, page)
		return c.viewLocked()
	}

	if err != nil {
		c.logger.Warnf("[Search] search '%s' page %d failed: %v", query, page, err)
		c.state = models.Failed(apperrors.UserMessage(err))
		return c.viewLocked()
	}

	if len(result.Results) == 0 {
		c.logger.Infof("[Search] no results for '%s' page %d", query, page)
		c.state = models.Failed(apperrors.MessageNoResults)
		return c.viewLocked()
	}

	c.results = append([]models.MovieSummary(nil), result.Results...)
	c.totalPages = result.TotalPages
	c.state = models.Loaded()

	snap := &models.SearchSnapshot{
		Query:       query,
		Results:     c.results,
		CurrentPage: page,
		TotalPages:  result.TotalPages,
	}
	if err := c.store.Write(snap); err != nil {
		c.logger.Errorf("[Search] failed to persist snapshot: %v", err)
	}

	c.logger.Infof("[Search] '%s' page %d of %d: %d results", query, page, c.totalPages, len(c.results))
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	results := append([]models.MovieSummary{}, c.results...)
	return View{
		Query:       c.query,
		Results:     results,
		CurrentPage: c.currentPage,
		TotalPages:  c.totalPages,
		State:       c.state,
		Pagination:  models.NewPagination(c.currentPage, c.totalPages),
	}
}
