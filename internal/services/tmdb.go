package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/pkg/httputil"
	"github.com/amaumene/gomoviesearch/pkg/logger"
	"github.com/amaumene/gomoviesearch/pkg/ratelimiter"
	"github.com/amaumene/gomoviesearch/pkg/security"
)

// TMDBOptions configures the TMDB adapter.
type TMDBOptions struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Timeout      time.Duration
}

// TMDB is the endpoint adapter over the TMDB v3 REST API. Every call is
// exactly one round trip; every failure is reported as a fetch failure.
type TMDB struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	rateLimiter  ratelimiter.RateLimiter
	httpClient   *http.Client
	logger       logger.Logger
	validator    *security.APIKeyValidator
}

func NewTMDB(opts TMDBOptions, log logger.Logger) *TMDB {
	validator := security.NewAPIKeyValidator()

	if opts.BaseURL == "" {
		opts.BaseURL = constants.DefaultTMDBBaseURL
	}
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	if opts.Language == "" {
		opts.Language = constants.DefaultTMDBLanguage
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TMDB{
		apiKey:       validator.SanitizeAPIKey(opts.APIKey),
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		language:     opts.Language,
		rateLimiter:  ratelimiter.NewTokenBucket(constants.TMDBRateCapacity, constants.TMDBRateRefill),
		httpClient:   httputil.NewHTTPClient(opts.Timeout),
		logger:       log,
		validator:    validator,
	}
}

// ImageBaseURL returns the normalized poster base URL.
func (t *TMDB) ImageBaseURL() string {
	return t.imageBaseURL
}

// IsConfigured reports whether an API key is set.
func (t *TMDB) IsConfigured() bool {
	return t.apiKey != ""
}

// SearchMovies fetches one page of /search/movie results.
func (t *TMDB) SearchMovies(ctx context.Context, query string, page int) (*models.SearchPage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	t.logger.Debugf("[TMDB] searching for '%s' page %d", query, page)

	var resp models.TMDBMovieResponse
	if err := t.get(ctx, "search", "/search/movie", params, &resp); err != nil {
		return nil, err
	}

	results := make([]models.MovieSummary, 0, len(resp.Results))
	for _, m := range resp.Results {
		results = append(results, toSummary(m))
	}

	t.logger.Debugf("[TMDB] search '%s' page %d returned %d results of %d pages", query, page, len(results), resp.TotalPages)

	return &models.SearchPage{Results: results, TotalPages: resp.TotalPages}, nil
}

// GetMovie fetches the detail record for id. The id is forwarded verbatim.
func (t *TMDB) GetMovie(ctx context.Context, id string) (*models.MovieDetail, error) {
	var resp models.TMDBMovieDetails
	if err := t.get(ctx, "detail", "/movie/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	detail := toDetail(resp)
	t.logger.Debugf("[TMDB] got details for %s: %s", id, detail.Title)
	return &detail, nil
}

// GetVideos fetches the video list for id.
func (t *TMDB) GetVideos(ctx context.Context, id string) ([]models.Video, error) {
	var resp models.TMDBVideoResponse
	if err := t.get(ctx, "videos", "/movie/"+url.PathEscape(id)+"/videos", nil, &resp); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(resp.Results))
	for _, v := range resp.Results {
		videos = append(videos, models.Video{Site: v.Site, Type: v.Type, Key: v.Key})
	}
	return videos, nil
}

func (t *TMDB) validateAPIKey() error {
	if t.apiKey == "" {
		return fmt.Errorf("TMDB API key not configured")
	}
	if !t.validator.ValidateAPIKey(t.apiKey) {
		t.logger.Errorf("[TMDB] invalid API key format (key: %s)", t.validator.MaskAPIKey(t.apiKey))
		return fmt.Errorf("invalid TMDB API key format")
	}
	return nil
}
