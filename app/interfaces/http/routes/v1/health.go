package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api-gateway/app/domain/healthcheck"
)

type HealthAPI struct {
	healthcheckService *healthcheck.HealthcheckService
}

func NewHealthAPI(healthcheckService *healthcheck.HealthcheckService) *HealthAPI {
	return &HealthAPI{
		healthcheckService: healthcheckService,
	}
}

func (healthAPI *HealthAPI) RegisterRouter(router gin.IRouter) {
	router.GET("/health", healthAPI.GetHealth)
}

// GetHealth
// @Summary     Service health
// @Description Reports record cache connectivity and the state of the in-memory name index. Never triggers an index refresh.
// @Tags        system
// @Produce     json
// @Success     200 {object} healthcheck.Report
// @Router      /v1/health [get]
func (healthAPI *HealthAPI) GetHealth(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, healthAPI.healthcheckService.Check(reqCtx.Request.Context()))
}
