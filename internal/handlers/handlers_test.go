package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gomoviesearch/internal/cache"
	"github.com/amaumene/gomoviesearch/internal/details"
	apperrors "github.com/amaumene/gomoviesearch/internal/errors"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/search"
	"github.com/amaumene/gomoviesearch/pkg/logger"
)

const imageBase = "https://image.tmdb.org/t/p/w500"

type stubTMDB struct {
	pages    map[int]*models.SearchPage
	movie    *models.MovieDetail
	videos   []models.Video
	fail     bool
	searches int
	queries  []string
}

func (s *stubTMDB) SearchMovies(ctx context.Context, query string, page int) (*models.SearchPage, error) {
	s.searches++
	s.queries = append(s.queries, query)
	if s.fail {
		return nil, apperrors.NewFetchError("search", fmt.Errorf("boom"))
	}
	if p, ok := s.pages[page]; ok {
		return p, nil
	}
	return &models.SearchPage{}, nil
}

func (s *stubTMDB) GetMovie(ctx context.Context, id string) (*models.MovieDetail, error) {
	if s.movie == nil {
		return nil, apperrors.NewFetchError("movie", fmt.Errorf("404"))
	}
	return s.movie, nil
}

func (s *stubTMDB) GetVideos(ctx context.Context, id string) ([]models.Video, error) {
	return s.videos, nil
}

type searchBody struct {
	Query       string                `json:"query"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
	State       models.UIState        `json:"state"`
	Pagination  models.Pagination     `json:"pagination"`
	Results     []models.MovieSummary `json:"results"`
	Cards       []struct {
		ID         int    `json:"id"`
		Title      string `json:"title"`
		PosterURL  string `json:"posterUrl"`
		DetailsURL string `json:"detailsUrl"`
	} `json:"cards"`
	Accepted *bool `json:"accepted"`
}

func twoPages() map[int]*models.SearchPage {
	return map[int]*models.SearchPage{
		1: {TotalPages: 2, Results: []models.MovieSummary{
			{ID: 1, Title: "Alien", PosterPath: "/a.jpg"},
			{ID: 2, Title: "Aliens"},
		}},
		2: {TotalPages: 2, Results: []models.MovieSummary{{ID: 3, Title: "Alien 3"}}},
	}
}

func setupRouter(stub *stubTMDB, store cache.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	searchCtl := search.New(stub, store, logger.Nop())
	detailsCtl := details.New(stub, imageBase, logger.Nop())
	New(searchCtl, detailsCtl, imageBase, logger.Nop()).RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSearch(t *testing.T, w *httptest.ResponseRecorder) searchBody {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var body searchBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestInitialState(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	body := decodeSearch(t, do(t, r, "GET", "/api/search", ""))
	assert.Equal(t, "", body.Query)
	assert.Equal(t, models.StatusIdle, body.State.Status)
	assert.Equal(t, 1, body.CurrentPage)
	assert.False(t, body.Pagination.Visible)
	assert.Empty(t, body.Cards)
	assert.Nil(t, body.Accepted)
}

func TestSearchFlow(t *testing.T) {
	stub := &stubTMDB{pages: twoPages()}
	store := cache.NewMemoryStore()
	r := setupRouter(stub, store)

	body := decodeSearch(t, do(t, r, "PUT", "/api/search/query", `{"query":"alien"}`))
	assert.Equal(t, "alien", body.Query)
	assert.Equal(t, 0, stub.searches)

	body = decodeSearch(t, do(t, r, "POST", "/api/search", ""))
	assert.Equal(t, models.StatusLoaded, body.State.Status)
	assert.Equal(t, 2, body.TotalPages)
	require.Len(t, body.Cards, 2)
	assert.Equal(t, imageBase+"/a.jpg", body.Cards[0].PosterURL)
	assert.Equal(t, "/img/no-movie.png", body.Cards[1].PosterURL)
	assert.Equal(t, "/details/1", body.Cards[0].DetailsURL)
	assert.True(t, body.Pagination.Visible)
	assert.True(t, body.Pagination.PrevDisabled)
	assert.False(t, body.Pagination.NextDisabled)

	snap, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "alien", snap.Query)

	body = decodeSearch(t, do(t, r, "POST", "/api/search/next", ""))
	require.NotNil(t, body.Accepted)
	assert.True(t, *body.Accepted)
	assert.Equal(t, 2, body.CurrentPage)
	require.Len(t, body.Cards, 1)
	assert.Equal(t, "Alien 3", body.Cards[0].Title)

	body = decodeSearch(t, do(t, r, "POST", "/api/search/next", ""))
	require.NotNil(t, body.Accepted)
	assert.False(t, *body.Accepted)
	assert.Equal(t, 2, body.CurrentPage)
	assert.Equal(t, 3, stub.searches)

	body = decodeSearch(t, do(t, r, "POST", "/api/search/prev", ""))
	assert.True(t, *body.Accepted)
	assert.Equal(t, 1, body.CurrentPage)
}

func TestGoToPage(t *testing.T) {
	stub := &stubTMDB{pages: twoPages()}
	r := setupRouter(stub, cache.NewMemoryStore())

	do(t, r, "PUT", "/api/search/query", `{"query":"alien"}`)
	do(t, r, "POST", "/api/search", "")

	body := decodeSearch(t, do(t, r, "POST", "/api/search/page/2", ""))
	assert.True(t, *body.Accepted)
	assert.Equal(t, 2, body.CurrentPage)

	body = decodeSearch(t, do(t, r, "POST", "/api/search/page/7", ""))
	assert.False(t, *body.Accepted)
	assert.Equal(t, 2, body.CurrentPage)

	body = decodeSearch(t, do(t, r, "POST", "/api/search/page/two", ""))
	assert.False(t, *body.Accepted)
	assert.Equal(t, 2, stub.searches)
}

func TestSearchErrorsAreReportedInState(t *testing.T) {
	stub := &stubTMDB{}
	r := setupRouter(stub, cache.NewMemoryStore())

	body := decodeSearch(t, do(t, r, "POST", "/api/search", ""))
	assert.Equal(t, models.Failed("empty query"), body.State)
	assert.Equal(t, 0, stub.searches)

	do(t, r, "PUT", "/api/search/query", `{"query":"zzzz"}`)
	body = decodeSearch(t, do(t, r, "POST", "/api/search", ""))
	assert.Equal(t, models.Failed("no results"), body.State)

	stub.fail = true
	body = decodeSearch(t, do(t, r, "POST", "/api/search", ""))
	assert.Equal(t, models.Failed("fetch failed"), body.State)
}

func TestSearchCarriesItsOwnQuery(t *testing.T) {
	stub := &stubTMDB{pages: twoPages()}
	store := cache.NewMemoryStore()
	r := setupRouter(stub, store)

	// the last keystroke's query update has not been applied yet
	do(t, r, "PUT", "/api/search/query", `{"query":"alie"}`)
	body := decodeSearch(t, do(t, r, "POST", "/api/search", `{"query":"alien"}`))

	assert.Equal(t, "alien", body.Query)
	assert.Equal(t, models.StatusLoaded, body.State.Status)
	require.Len(t, body.Cards, 2)
	assert.Equal(t, []string{"alien"}, stub.queries)

	snap, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "alien", snap.Query)
}

func TestSearchWithoutAnyQueryUpdate(t *testing.T) {
	stub := &stubTMDB{pages: twoPages()}
	r := setupRouter(stub, cache.NewMemoryStore())

	body := decodeSearch(t, do(t, r, "POST", "/api/search", `{"query":"alien"}`))
	assert.Equal(t, "alien", body.Query)
	assert.Equal(t, models.StatusLoaded, body.State.Status)
	assert.Equal(t, []string{"alien"}, stub.queries)
}

func TestSearchRejectsBadJSON(t *testing.T) {
	stub := &stubTMDB{pages: twoPages()}
	r := setupRouter(stub, cache.NewMemoryStore())

	w := do(t, r, "POST", "/api/search", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.searches)
}

func TestSearchPageSendsQueryWithSearch(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	page := do(t, r, "GET", "/", "").Body.String()
	assert.Contains(t, page, `call("POST", "/api/search", { query: $("query").value })`)
	assert.Contains(t, page, "queue = queue.then(")
}

func TestSetQueryRejectsBadJSON(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	w := do(t, r, "PUT", "/api/search/query", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetQueryClearsSnapshot(t *testing.T) {
	store := cache.NewMemoryStore()
	r := setupRouter(&stubTMDB{pages: twoPages()}, store)

	do(t, r, "PUT", "/api/search/query", `{"query":"alien"}`)
	do(t, r, "POST", "/api/search", "")

	body := decodeSearch(t, do(t, r, "PUT", "/api/search/query", `{"query":"alie"}`))
	assert.Empty(t, body.Cards)
	assert.Equal(t, 0, body.TotalPages)

	snap, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestDetails(t *testing.T) {
	vote := 7.8
	stub := &stubTMDB{
		movie: &models.MovieDetail{
			ID:          438631,
			Title:       "Dune",
			Genres:      []models.Genre{{ID: 878, Name: "Science Fiction"}},
			VoteAverage: &vote,
		},
		videos: []models.Video{{Site: "YouTube", Type: "Trailer", Key: "abc"}},
	}
	r := setupRouter(stub, cache.NewMemoryStore())

	w := do(t, r, "GET", "/api/details/438631", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID        string         `json:"id"`
		State     models.UIState `json:"state"`
		Trailer   string         `json:"trailer"`
		PosterURL string         `json:"posterUrl"`
		Display   map[string]string
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "438631", body.ID)
	assert.Equal(t, models.StatusLoaded, body.State.Status)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", body.Trailer)
	assert.Equal(t, "https://via.placeholder.com/500x750?text=No+Image+Available", body.PosterURL)
	assert.Equal(t, "Science Fiction", body.Display["genres"])
	assert.Equal(t, "N/A", body.Display["releaseDate"])
	assert.Equal(t, "N/A", body.Display["overview"])
	assert.Equal(t, "7.8", body.Display["rating"])
}

func TestDetailsFailure(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	w := do(t, r, "GET", "/api/details/404", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"status": "error", "message": "fetch failed"}, body["state"])
	assert.NotContains(t, body, "display")
	assert.NotContains(t, body, "movie")
}

func TestScreens(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	w := do(t, r, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Search for Movies")

	w = do(t, r, "GET", "/details/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go Back")

	w = do(t, r, "GET", "/img/no-movie.png", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	r := setupRouter(&stubTMDB{}, cache.NewMemoryStore())

	w := do(t, r, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
