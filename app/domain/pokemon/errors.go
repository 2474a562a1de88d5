package pokemon

import (
	"errors"

	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrIndexUnavailable = errors.New("pokemon index unavailable")
	ErrNotFound         = errors.New("pokemon not found")
	ErrUpstream         = errors.New("upstream error")
	ErrInternal         = errors.New("internal error")
)

// Error pairs a taxonomy sentinel with a caller-facing message.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode maps an error onto a stable machine-readable code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIndexUnavailable):
		return "index_unavailable"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	default:
		return "internal_error"
	}
}

// classifyPrimaryFetch turns a failed required fetch into the taxonomy.
func classifyPrimaryFetch(nameOrID string, err error) *Error {
	var fetchErr *pokeapi.FetchError
	if !errors.As(err, &fetchErr) {
		return newError(ErrInternal, "Failed to process Pokémon details.", err)
	}
	if fetchErr.NotFound() {
		return newError(ErrNotFound, `Pokémon "`+nameOrID+`" not found`, err)
	}
	return newError(ErrUpstream, "Failed to fetch Pokémon data from PokeAPI: "+fetchErr.Error(), err)
}
