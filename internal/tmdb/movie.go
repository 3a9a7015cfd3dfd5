package tmdb

import (
	"fmt"
	"time"
)

// MaxPage is the highest page the search endpoint serves.
const MaxPage = 500

// Movie is a single search hit. Poster and backdrop paths are nil when TMDB
// has no image for the movie.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// SearchPage is one page of /search/movie results.
type SearchPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
}

// PageCount returns the number of pages that can actually be requested.
func (p *SearchPage) PageCount() int {
	if p == nil || p.TotalPages < 0 {
		return 0
	}
	return min(p.TotalPages, MaxPage)
}

// HasImages reports whether both poster and backdrop are present.
func (m Movie) HasImages() bool {
	return m.PosterPath != nil && *m.PosterPath != "" &&
		m.BackdropPath != nil && *m.BackdropPath != ""
}

// Year returns the release year or "N/A".
func (m Movie) Year() string {
	t, err := time.Parse(time.DateOnly, m.ReleaseDate)
	if err != nil {
		return "N/A"
	}
	return t.Format("2006")
}

// FormatReleaseDate renders a TMDB date as "January 2, 2006".
func FormatReleaseDate(date string) string {
	if date == "" {
		return "Unknown"
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "Unknown"
	}
	return t.Format("January 2, 2006")
}

// FormatRating renders a vote average as "7.3/10".
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f/10", rating)
}

func filterMovies(movies []Movie) []Movie {
	filtered := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if m.HasImages() {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
