package tmdb

import (
	"fmt"
	"strings"
)

const (
	PosterPlaceholder   = "https://via.placeholder.com/500x750?text=No+Image"
	BackdropPlaceholder = "https://via.placeholder.com/1920x1080?text=No+Image"
)

// Links builds image and web URLs for movies.
type Links struct {
	imageBase string
	webBase   string
}

func NewLinks(imageBase, webBase string) Links {
	return Links{
		imageBase: strings.TrimRight(imageBase, "/"),
		webBase:   strings.TrimRight(webBase, "/"),
	}
}

// PosterURL returns the w500 poster, or the placeholder when path is nil/empty.
func (l Links) PosterURL(path *string) string {
	if path == nil || *path == "" {
		return PosterPlaceholder
	}
	return l.imageBase + "/w500/" + strings.TrimPrefix(*path, "/")
}

// BackdropURL returns the original-size backdrop, or the placeholder.
func (l Links) BackdropURL(path *string) string {
	if path == nil || *path == "" {
		return BackdropPlaceholder
	}
	return l.imageBase + "/original/" + strings.TrimPrefix(*path, "/")
}

// MovieURL returns the movie's page on the TMDB website.
func (l Links) MovieURL(id int) string {
	return fmt.Sprintf("%s/movie/%d", l.webBase, id)
}
