// Package details loads a single movie and its optional trailer for the
// details screen. Nothing here is persisted; every visit fetches fresh.
package details

import (
	"context"
	"strconv"
	"strings"

	"github.com/amaumene/gomoviesearch/internal/constants"
	apperrors "github.com/amaumene/gomoviesearch/internal/errors"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/services"
	"github.com/amaumene/gomoviesearch/pkg/logger"
)

// Fetcher retrieves a movie's detail record and its video list.
type Fetcher interface {
	GetMovie(ctx context.Context, id string) (*models.MovieDetail, error)
	GetVideos(ctx context.Context, id string) ([]models.Video, error)
}

// View is the outcome of one Load.
type View struct {
	ID        string              `json:"id"`
	State     models.UIState      `json:"state"`
	Movie     *models.MovieDetail `json:"movie,omitempty"`
	Trailer   string              `json:"trailer,omitempty"`
	PosterURL string              `json:"posterUrl,omitempty"`
}

type Controller struct {
	fetcher      Fetcher
	imageBaseURL string
	logger       logger.Logger
}

func New(fetcher Fetcher, imageBaseURL string, log logger.Logger) *Controller {
	if imageBaseURL == "" {
		imageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{fetcher: fetcher, imageBaseURL: imageBaseURL, logger: log}
}

// Load fetches the detail record for id, then its videos. A failed detail
// fetch is an error and skips the video fetch; a failed video fetch only
// leaves the trailer empty.
func (c *Controller) Load(ctx context.Context, id string) View {
	view := View{ID: id, State: models.Loading()}

	movie, err := c.fetcher.GetMovie(ctx, id)
	if err != nil {
		c.logger.Warnf("[Details] failed to load %s: %v", id, err)
		view.State = models.Failed(apperrors.UserMessage(err))
		return view
	}
	view.Movie = movie
	view.PosterURL = services.PosterURL(c.imageBaseURL, movie.PosterPath, constants.DetailsPosterPlaceholder)

	videos, err := c.fetcher.GetVideos(ctx, id)
	if err != nil {
		c.logger.Warnf("[Details] trailer unavailable for %s: %v", id, err)
	} else {
		view.Trailer = services.TrailerURL(videos)
	}

	view.State = models.Loaded()
	c.logger.Debugf("[Details] loaded %s (%s), trailer: %t", id, movie.Title, view.Trailer != "")
	return view
}

// Genres joins genre names with ", " or returns N/A when there are none.
func (v View) Genres() string {
	if v.Movie == nil || len(v.Movie.Genres) == 0 {
		return constants.NotAvailable
	}
	names := make([]string, 0, len(v.Movie.Genres))
	for _, g := range v.Movie.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

func (v View) ReleaseDate() string {
	if v.Movie == nil || v.Movie.ReleaseDate == "" {
		return constants.NotAvailable
	}
	return v.Movie.ReleaseDate
}

func (v View) Overview() string {
	if v.Movie == nil || v.Movie.Overview == "" {
		return constants.NotAvailable
	}
	return v.Movie.Overview
}

// Rating shows N/A for a missing or zero vote average, as unrated movies
// report 0.
func (v View) Rating() string {
	if v.Movie == nil || v.Movie.VoteAverage == nil || *v.Movie.VoteAverage == 0 {
		return constants.NotAvailable
	}
	return strconv.FormatFloat(*v.Movie.VoteAverage, 'f', -1, 64)
}
