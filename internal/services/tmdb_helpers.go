package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/amaumene/gomoviesearch/internal/constants"
	apperrors "github.com/amaumene/gomoviesearch/internal/errors"
	"github.com/amaumene/gomoviesearch/internal/models"
)

// get performs one GET against the API and decodes the JSON body into out.
// Any failure, whatever its cause, is returned as a fetch error.
func (t *TMDB) get(ctx context.Context, operation, path string, params url.Values, out interface{}) error {
	if err := t.validateAPIKey(); err != nil {
		return apperrors.NewFetchError(operation, err)
	}

	if err := t.rateLimiter.Wait(ctx); err != nil {
		return apperrors.NewFetchError(operation, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", t.apiKey)
	params.Set("language", t.language)

	apiURL := t.baseURL + path + "?" + params.Encode()
	t.logger.Debugf("[TMDB] API URL: %s", t.maskURL(apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return apperrors.NewFetchError(operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warnf("[TMDB] %s request failed: %v", operation, t.maskError(err))
		return apperrors.NewFetchError(operation, fmt.Errorf("request failed: %s", t.maskError(err)))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.logger.Warnf("[TMDB] %s returned status %d", operation, resp.StatusCode)
		return apperrors.NewFetchError(operation, fmt.Errorf("TMDB API error: status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.logger.Warnf("[TMDB] failed to decode %s response: %v", operation, err)
		return apperrors.NewFetchError(operation, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

// maskURL hides the api key in logged URLs.
func (t *TMDB) maskURL(raw string) string {
	if t.apiKey == "" {
		return raw
	}
	return strings.ReplaceAll(raw, t.apiKey, t.validator.MaskAPIKey(t.apiKey))
}

// maskError hides the api key in transport errors, which embed the URL.
func (t *TMDB) maskError(err error) string {
	return t.maskURL(err.Error())
}

func toSummary(m models.TMDBMovie) models.MovieSummary {
	return models.MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		PosterPath:  deref(m.PosterPath),
	}
}

func toDetail(d models.TMDBMovieDetails) models.MovieDetail {
	genres := make([]models.Genre, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	return models.MovieDetail{
		ID:          d.ID,
		Title:       d.Title,
		Genres:      genres,
		ReleaseDate: deref(d.ReleaseDate),
		Overview:    deref(d.Overview),
		VoteAverage: d.VoteAverage,
		PosterPath:  deref(d.PosterPath),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TrailerURL returns the watch URL of the first YouTube trailer in videos,
// or "" when none matches. Other sites and video types are never used.
func TrailerURL(videos []models.Video) string {
	for _, v := range videos {
		if v.Site == constants.TrailerSite && v.Type == constants.TrailerType {
			return constants.TrailerURLPrefix + v.Key
		}
	}
	return ""
}

// PosterURL joins base and posterPath, or returns placeholder for an empty path.
func PosterURL(base, posterPath, placeholder string) string {
	if posterPath == "" {
		return placeholder
	}
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return strings.TrimRight(base, "/") + posterPath
}
