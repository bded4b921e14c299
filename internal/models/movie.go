package models

// MovieSummary is one search result card.
type MovieSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date,omitempty"`
	PosterPath  string `json:"poster_path,omitempty"`
}

// SearchPage is a single page returned by the search endpoint.
type SearchPage struct {
	Results    []MovieSummary `json:"results"`
	TotalPages int            `json:"total_pages"`
}

// SearchSnapshot is the persisted record of the last successful search.
// Field names match the record the browser version kept in localStorage.
type SearchSnapshot struct {
	Query       string         `json:"query"`
	Results     []MovieSummary `json:"results"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// Clone returns a deep copy so callers never share the results slice.
func (s *SearchSnapshot) Clone() *SearchSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Results = append([]MovieSummary(nil), s.Results...)
	return &out
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full record shown on the details screen.
type MovieDetail struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genres      []Genre  `json:"genres"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	PosterPath  string   `json:"poster_path,omitempty"`
}

// Video is one entry of a movie's video list.
type Video struct {
	Site string `json:"site"`
	Type string `json:"type"`
	Key  string `json:"key"`
}
