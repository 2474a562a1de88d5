package pokemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api-gateway/app/domain/common"
	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
	"pokedex.dev/pokedex-api-gateway/app/domain/query"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/responses"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

type PokemonRoute struct {
	listService   *pokemon.ListService
	detailService *pokemon.DetailService
}

func NewPokemonRoute(listService *pokemon.ListService, detailService *pokemon.DetailService) *PokemonRoute {
	return &PokemonRoute{
		listService:   listService,
		detailService: detailService,
	}
}

func (pokemonRoute *PokemonRoute) RegisterRouter(router gin.IRouter) {
	pokemonRouter := router.Group("/pokemon")
	pokemonRouter.GET("", pokemonRoute.ListPokemon)
	pokemonRouter.GET("/:name", pokemonRoute.GetPokemon)
}

// ListPokemon
// @Summary List Pokémon
// @Description Returns one page of Pokémon summaries. The search filter applies before pagination and drives totalCount; the type filter applies to the fetched page only, so a page can hold fewer than limit items.
// @Tags pokemon
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page start" default(0)
// @Param search query string false "Case-insensitive substring of the name"
// @Param type query string false "Type name, matched case-insensitively"
// @Success 200 {object} pokemon.ListResult
// @Failure 503 {object} responses.ErrorResponse "Name index unavailable"
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/pokemon [get]
func (pokemonRoute *PokemonRoute) ListPokemon(reqCtx *gin.Context) {
	pagination := query.GetPaginationFromQuery(reqCtx)
	result, err := pokemonRoute.listService.List(reqCtx.Request.Context(), pokemon.ListQuery{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
		Search: query.GetFilterFromQuery(reqCtx, "search"),
		Type:   query.GetFilterFromQuery(reqCtx, "type"),
	})
	if err != nil {
		logger.GetLogger().Errorf("pokemon route: list failed: %v", err)
		responses.AbortWithError(reqCtx, common.FromError(err))
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetPokemon
// @Summary Get Pokémon details
// @Description Returns the full detail record for a Pokémon name or numeric id. Description and evolution chain degrade to defaults when their lookups fail.
// @Tags pokemon
// @Produce json
// @Param name path string true "Pokémon name or id"
// @Success 200 {object} pokemon.PokemonDetail
// @Failure 400 {object} responses.ErrorResponse "Empty name"
// @Failure 404 {object} responses.ErrorResponse "Unknown Pokémon"
// @Failure 502 {object} responses.ErrorResponse "PokeAPI failure"
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/pokemon/{name} [get]
func (pokemonRoute *PokemonRoute) GetPokemon(reqCtx *gin.Context) {
	name := reqCtx.Param("name")
	detail, err := pokemonRoute.detailService.Detail(reqCtx.Request.Context(), name)
	if err != nil {
		classified := common.FromError(err)
		if classified.Status >= http.StatusInternalServerError {
			logger.GetLogger().Errorf("pokemon route: detail %q failed: %v", name, err)
		}
		responses.AbortWithError(reqCtx, classified)
		return
	}
	reqCtx.JSON(http.StatusOK, detail)
}
