package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/amaumene/gomoviesearch/internal/config"
	"github.com/amaumene/gomoviesearch/internal/details"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/search"
)

const imageBase = "https://image.tmdb.org/t/p/w500"

// runWith parses args against the global flags and hands the command to fn.
func runWith(t *testing.T, args []string, fn func(c *cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name: "moviesearch",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.StringFlag{Name: "db"},
			&cli.StringFlag{Name: "log-level"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			fn(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"moviesearch"}, args...)))
}

func TestApplyFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	runWith(t, []string{"--db", "/tmp/x.db", "--log-level", "debug"}, func(c *cli.Command) {
		cfg := config.Default()
		applyFlags(cfg, c, true)
		assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	runWith(t, nil, func(c *cli.Command) {
		cfg := config.Default()
		applyFlags(cfg, c, true)
		assert.Equal(t, "warn", cfg.LogLevel)

		cfg = config.Default()
		applyFlags(cfg, c, false)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestEphemeralAppServesScreens(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))

	runWith(t, []string{"--log-level", "error"}, func(c *cli.Command) {
		a, err := newApp(c, appOptions{ephemeral: true})
		require.NoError(t, err)
		defer a.Close()

		assert.Nil(t, a.services.DB)
		r := newRouter(a)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Contains(t, w.Body.String(), `"status":"idle"`)
	})
}

func TestBoltAppPersistsAcrossRuns(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))
	dbPath := filepath.Join(t.TempDir(), "state.db")

	runWith(t, []string{"--db", dbPath, "--log-level", "error"}, func(c *cli.Command) {
		a, err := newApp(c, appOptions{})
		require.NoError(t, err)
		require.NoError(t, a.services.Store.Write(&models.SearchSnapshot{
			Query:       "alien",
			Results:     []models.MovieSummary{{ID: 348, Title: "Alien"}},
			CurrentPage: 1,
			TotalPages:  3,
		}))
		a.Close()

		a, err = newApp(c, appOptions{})
		require.NoError(t, err)
		defer a.Close()

		view := a.search.Restore()
		assert.Equal(t, "alien", view.Query)
		assert.Equal(t, models.StatusLoaded, view.State.Status)
		assert.Equal(t, 3, view.TotalPages)
	})
}

func TestRenderSearch(t *testing.T) {
	view := search.View{
		Query: "alien",
		Results: []models.MovieSummary{
			{ID: 348, Title: "Alien", ReleaseDate: "1979-05-25", PosterPath: "/a.jpg"},
			{ID: 679, Title: "Aliens"},
		},
		CurrentPage: 1,
		TotalPages:  3,
		State:       models.Loaded(),
		Pagination:  models.NewPagination(1, 3),
	}

	out := renderSearch(view, imageBase)
	assert.Contains(t, out, "Search for Movies")
	assert.Contains(t, out, "alien")
	assert.Contains(t, out, "Alien")
	assert.Contains(t, out, "1979-05-25")
	assert.Contains(t, out, "348")
	assert.Contains(t, out, imageBase+"/a.jpg")
	assert.Contains(t, out, "/img/no-movie.png")
	assert.Contains(t, out, "Page 1 of 3")
}

func TestRenderSearchStates(t *testing.T) {
	out := renderSearch(search.View{State: models.Idle()}, imageBase)
	assert.Contains(t, out, "No search yet")

	out = renderSearch(search.View{Query: "zzzz", State: models.Failed("no results")}, imageBase)
	assert.Contains(t, out, "no results")
	assert.NotContains(t, out, "Page")

	single := search.View{
		Query:       "x",
		Results:     []models.MovieSummary{{ID: 1, Title: "X"}},
		CurrentPage: 1,
		TotalPages:  1,
		State:       models.Loaded(),
		Pagination:  models.NewPagination(1, 1),
	}
	assert.NotContains(t, renderSearch(single, imageBase), "Page 1 of 1")
}

func TestRenderDetails(t *testing.T) {
	vote := 7.8
	view := details.View{
		ID:    "438631",
		State: models.Loaded(),
		Movie: &models.MovieDetail{
			ID:          438631,
			Title:       "Dune",
			Genres:      []models.Genre{{ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}},
			VoteAverage: &vote,
		},
		Trailer:   "https://www.youtube.com/watch?v=abc",
		PosterURL: imageBase + "/d.jpg",
	}

	out := renderDetails(view)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Science Fiction, Adventure")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "7.8")
	assert.Contains(t, out, "watch?v=abc")

	failed := renderDetails(details.View{ID: "1", State: models.Failed("fetch failed")})
	assert.Contains(t, failed, "fetch failed")
	assert.NotContains(t, failed, "Movie Name")
}
