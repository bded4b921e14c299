// Package constants defines application-wide constants and default values.
package constants

const (
	// Application metadata
	AppName        = "moviesearch"
	AppVersion     = "1.0.0"
	AppDescription = "Search TMDB for movies, browse paginated results and open details with trailers"

	// Default configuration values
	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	// TMDB endpoints and defaults
	DefaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"
	DefaultTMDBLanguage     = "en-US"

	// Image placeholders used when a movie has no poster
	SearchPosterPlaceholder  = "/img/no-movie.png"
	DetailsPosterPlaceholder = "https://via.placeholder.com/500x750?text=No+Image+Available"

	// Trailer selection and URL
	TrailerSite      = "YouTube"
	TrailerType      = "Trailer"
	TrailerURLPrefix = "https://www.youtube.com/watch?v="

	// Local cache layout
	SearchBucket      = "search"
	SearchSnapshotKey = "movieSearchResults"
	DefaultDBFile     = "moviesearch.db"

	// Rate limiting
	TMDBRateCapacity = 20 // burst capacity
	TMDBRateRefill   = 5  // tokens per second

	// Value shown when a detail field is missing
	NotAvailable = "N/A"
)
