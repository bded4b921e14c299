package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/search"
	"github.com/amaumene/gomoviesearch/internal/services"
)

// movieCard is a search result with its resolved links.
type movieCard struct {
	models.MovieSummary
	PosterURL  string `json:"posterUrl"`
	DetailsURL string `json:"detailsUrl"`
}

type searchResponse struct {
	search.View
	Cards    []movieCard `json:"cards"`
	Accepted *bool       `json:"accepted,omitempty"`
}

type setQueryRequest struct {
	Query string `json:"query"`
}

// searchRequest optionally carries the query text to search for.
type searchRequest struct {
	Query *string `json:"query"`
}

func (h *Handler) respondSearch(c *gin.Context, view search.View, accepted *bool) {
	cards := make([]movieCard, 0, len(view.Results))
	for _, m := range view.Results {
		cards = append(cards, movieCard{
			MovieSummary: m,
			PosterURL:    services.PosterURL(h.imageBaseURL, m.PosterPath, constants.SearchPosterPlaceholder),
			DetailsURL:   fmt.Sprintf("/details/%d", m.ID),
		})
	}
	c.JSON(http.StatusOK, searchResponse{View: view, Cards: cards, Accepted: accepted})
}

func (h *Handler) handleSearchState(c *gin.Context) {
	h.respondSearch(c, h.search.State(), nil)
}

func (h *Handler) handleSetQuery(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxRequestBodyBytes)

	var req setQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf("[SearchHandler] invalid query body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.respondSearch(c, h.search.SetQuery(req.Query), nil)
}

func (h *Handler) handleSearch(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxRequestBodyBytes)

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnf("[SearchHandler] invalid search body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Query != nil {
		h.respondSearch(c, h.search.SearchFor(fetchContext(c), *req.Query), nil)
		return
	}
	h.respondSearch(c, h.search.Search(fetchContext(c)), nil)
}

func (h *Handler) handleGoToPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		h.logger.Debugf("[SearchHandler] ignoring non-numeric page %q", c.Param("page"))
		rejected := false
		h.respondSearch(c, h.search.State(), &rejected)
		return
	}

	view, accepted := h.search.GoToPage(fetchContext(c), page)
	h.respondSearch(c, view, &accepted)
}

func (h *Handler) handleNext(c *gin.Context) {
	view, accepted := h.search.Next(fetchContext(c))
	h.respondSearch(c, view, &accepted)
}

func (h *Handler) handlePrev(c *gin.Context) {
	view, accepted := h.search.Prev(fetchContext(c))
	h.respondSearch(c, view, &accepted)
}
