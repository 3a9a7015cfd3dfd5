package tmdb

import "testing"

func TestLinks(t *testing.T) {
	links := NewLinks("https://image.tmdb.org/t/p/", "https://www.themoviedb.org")

	if got := links.PosterURL(strPtr("/abc.jpg")); got != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Fatalf("unexpected poster url %q", got)
	}
	if got := links.PosterURL(nil); got != PosterPlaceholder {
		t.Fatalf("expected poster placeholder, got %q", got)
	}
	if got := links.BackdropURL(strPtr("/bd.jpg")); got != "https://image.tmdb.org/t/p/original/bd.jpg" {
		t.Fatalf("unexpected backdrop url %q", got)
	}
	if got := links.BackdropURL(strPtr("")); got != BackdropPlaceholder {
		t.Fatalf("expected backdrop placeholder, got %q", got)
	}
	if got := links.MovieURL(155); got != "https://www.themoviedb.org/movie/155" {
		t.Fatalf("unexpected movie url %q", got)
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatReleaseDate("2008-07-16"); got != "July 16, 2008" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatReleaseDate(""); got != "Unknown" {
		t.Fatalf("expected Unknown, got %q", got)
	}
	if got := FormatReleaseDate("soon"); got != "Unknown" {
		t.Fatalf("expected Unknown, got %q", got)
	}
	if got := FormatRating(8.456); got != "8.5/10" {
		t.Fatalf("unexpected rating %q", got)
	}
	if got := (Movie{ReleaseDate: "1989-06-23"}).Year(); got != "1989" {
		t.Fatalf("unexpected year %q", got)
	}
	if got := (Movie{}).Year(); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
}
