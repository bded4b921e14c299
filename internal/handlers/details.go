package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviesearch/internal/details"
)

// detailsDisplay holds the rendered text for each field, with N/A fallbacks.
type detailsDisplay struct {
	Genres      string `json:"genres"`
	ReleaseDate string `json:"releaseDate"`
	Overview    string `json:"overview"`
	Rating      string `json:"rating"`
}

type detailsResponse struct {
	details.View
	Display *detailsDisplay `json:"display,omitempty"`
}

func (h *Handler) handleDetails(c *gin.Context) {
	id := c.Param("id")
	view := h.details.Load(fetchContext(c), id)

	resp := detailsResponse{View: view}
	if view.Movie != nil {
		resp.Display = &detailsDisplay{
			Genres:      view.Genres(),
			ReleaseDate: view.ReleaseDate(),
			Overview:    view.Overview(),
			Rating:      view.Rating(),
		}
	}

	c.JSON(http.StatusOK, resp)
}
