package admin

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api-gateway/app/infrastructure/catalog"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/responses"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

const AdminKeyHeader = "X-Admin-Key"

// RecordInvalidator drops cached upstream records.
type RecordInvalidator interface {
	InvalidateAll(ctx context.Context) error
	InvalidatePokemon(ctx context.Context, nameOrID string) error
}

// CacheRoute exposes administrative cache operations.
type CacheRoute struct {
	records  RecordInvalidator
	adminKey string
}

func NewCacheRoute(records *catalog.CachedCatalog) *CacheRoute {
	return NewCacheRouteWithKey(records, environment_variables.EnvironmentVariables.ADMIN_API_KEY)
}

func NewCacheRouteWithKey(records RecordInvalidator, adminKey string) *CacheRoute {
	return &CacheRoute{
		records:  records,
		adminKey: adminKey,
	}
}

// RegisterRouter wires the administrative cache endpoints. Nothing is
// registered without an admin key.
func (route *CacheRoute) RegisterRouter(router gin.IRouter) {
	if route.adminKey == "" {
		return
	}
	adminRouter := router.Group("/admin", route.adminKeyMiddleware())
	adminRouter.POST("/cache/invalidate", route.InvalidateCache)
	adminRouter.DELETE("/cache/pokemon/:name", route.InvalidatePokemon)
}

func (route *CacheRoute) adminKeyMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		provided := reqCtx.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(route.adminKey)) != 1 {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "unauthorized",
				Error: "missing or invalid admin key",
			})
			return
		}
		reqCtx.Next()
	}
}

// CacheInvalidateResponse represents the result of a cache invalidation request.
type CacheInvalidateResponse struct {
	Object  string `json:"object"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func abortInvalidation(reqCtx *gin.Context) {
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
		Code:  "internal_error",
		Error: "failed to invalidate cache",
	})
}

// InvalidateCache
// @Summary     Invalidate cached PokeAPI records
// @Description Deletes every cached PokeAPI record from the shared cache. The in-memory name index is left alone.
// @Tags        admin
// @Produce     json
// @Param       X-Admin-Key header string true "Admin key"
// @Success     200 {object} CacheInvalidateResponse
// @Failure     401 {object} responses.ErrorResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /v1/admin/cache/invalidate [post]
func (route *CacheRoute) InvalidateCache(reqCtx *gin.Context) {
	if err := route.records.InvalidateAll(reqCtx.Request.Context()); err != nil {
		logger.GetLogger().Errorf("admin cache: failed to invalidate records: %v", err)
		abortInvalidation(reqCtx)
		return
	}

	reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
		Object:  "cache.invalidation",
		Status:  "ok",
		Message: "cached PokeAPI records invalidated",
	})
}

// InvalidatePokemon
// @Summary     Invalidate one cached Pokémon
// @Description Deletes the cached PokeAPI record of a single Pokémon, under its name and id. Species and evolution records are kept.
// @Tags        admin
// @Produce     json
// @Param       X-Admin-Key header string true "Admin key"
// @Param       name path string true "Pokémon name or id"
// @Success     200 {object} CacheInvalidateResponse
// @Failure     401 {object} responses.ErrorResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /v1/admin/cache/pokemon/{name} [delete]
func (route *CacheRoute) InvalidatePokemon(reqCtx *gin.Context) {
	name := strings.ToLower(strings.TrimSpace(reqCtx.Param("name")))
	if err := route.records.InvalidatePokemon(reqCtx.Request.Context(), name); err != nil {
		logger.GetLogger().Errorf("admin cache: failed to invalidate %s: %v", name, err)
		abortInvalidation(reqCtx)
		return
	}

	reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
		Object:  "cache.invalidation",
		Status:  "ok",
		Message: "cached record for " + name + " invalidated",
	})
}
