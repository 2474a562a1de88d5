package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError is returned for every failed upstream call. Status is zero for
// transport and decode failures, in which case Transport holds the cause.
type FetchError struct {
	URL       string
	Status    int
	Message   string
	Transport error
}

func (e *FetchError) Error() string {
	if e.Transport != nil {
		return fmt.Sprintf("pokeapi: fetch %s: %v", e.URL, e.Transport)
	}
	return fmt.Sprintf("pokeapi: fetch %s: %d %s", e.URL, e.Status, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Transport
}

// NotFound reports whether the upstream answered 404.
func (e *FetchError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsNotFound reports whether err carries an upstream 404.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.NotFound()
}
