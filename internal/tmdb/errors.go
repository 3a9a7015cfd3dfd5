package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingToken is returned when no bearer token is configured.
var ErrMissingToken = errors.New("tmdb: API token not set")

// NetworkError is any failure to obtain a usable search page: transport
// errors, non-2xx statuses and undecodable bodies.
type NetworkError struct {
	Op         string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the API rejected (or would reject) the token.
func (e *NetworkError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || errors.Is(e.Err, ErrMissingToken)
}
