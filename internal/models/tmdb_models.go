// Package models defines data structures for TMDB API responses and the
// domain values derived from them.
package models

// TMDBMovie is one entry of a /search/movie result page.
type TMDBMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type TMDBMovieResponse struct {
	Page         int         `json:"page"`
	Results      []TMDBMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBMovieDetails is the /movie/{id} payload. Nullable fields are pointers
// so an absent value is distinguishable from a zero one.
type TMDBMovieDetails struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Overview    *string     `json:"overview"`
	PosterPath  *string     `json:"poster_path"`
	ReleaseDate *string     `json:"release_date"`
	VoteAverage *float64    `json:"vote_average"`
	Genres      []TMDBGenre `json:"genres"`
}

type TMDBVideo struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type TMDBVideoResponse struct {
	ID      int         `json:"id"`
	Results []TMDBVideo `json:"results"`
}
