package query

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

type Pagination struct {
	Limit  int
	Offset int
}

// GetPaginationFromQuery reads limit and offset. Missing, malformed or
// negative values fall back to their defaults instead of failing the request.
func GetPaginationFromQuery(reqCtx *gin.Context) Pagination {
	return Pagination{
		Limit:  nonNegativeInt(reqCtx.Query("limit"), DefaultLimit),
		Offset: nonNegativeInt(reqCtx.Query("offset"), DefaultOffset),
	}
}

// GetFilterFromQuery returns a trimmed, lower-cased query parameter.
func GetFilterFromQuery(reqCtx *gin.Context, key string) string {
	return strings.ToLower(strings.TrimSpace(reqCtx.Query(key)))
}

func nonNegativeInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
