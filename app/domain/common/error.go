package common

import (
	"errors"
	"net/http"

	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
)

// Error is the caller-facing form of a failed operation, shared by the
// HTTP routes and the MCP tools.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func NewError(code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// FromError classifies err. Messages of unclassified errors are not exposed.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	message := "Internal server error."
	var domainErr *pokemon.Error
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	return NewError(pokemon.ErrorCode(err), message, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, pokemon.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, pokemon.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pokemon.ErrIndexUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, pokemon.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) String() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Error() string {
	return e.String()
}
