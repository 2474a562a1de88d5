package mcpimpl

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"pokedex.dev/pokedex-api-gateway/app/domain/common"
	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
	"pokedex.dev/pokedex-api-gateway/app/domain/query"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

type PokedexMCP struct {
	listService   *pokemon.ListService
	detailService *pokemon.DetailService
}

func NewPokedexMCP(listService *pokemon.ListService, detailService *pokemon.DetailService) *PokedexMCP {
	return &PokedexMCP{
		listService:   listService,
		detailService: detailService,
	}
}

func (p *PokedexMCP) RegisterTool(server *mcpserver.MCPServer) {
	server.AddTool(
		mcp.NewTool("list_pokemon",
			mcp.WithDescription("List Pokémon summaries. search filters names before paging and drives totalCount; type filters the returned page only."),
			mcp.WithNumber("limit", mcp.Description("Page size"), mcp.DefaultNumber(query.DefaultLimit)),
			mcp.WithNumber("offset", mcp.Description("Page start"), mcp.DefaultNumber(query.DefaultOffset)),
			mcp.WithString("search", mcp.Description("Case-insensitive substring of the name")),
			mcp.WithString("type", mcp.Description("Type name such as fire or water")),
		),
		p.listPokemon,
	)
	server.AddTool(
		mcp.NewTool("get_pokemon",
			mcp.WithDescription("Get the detail record for one Pokémon: stats, abilities, types, description and evolution chain."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Pokémon name or numeric id")),
		),
		p.getPokemon,
	)
}

func (p *PokedexMCP) listPokemon(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", query.DefaultLimit)
	if limit < 0 {
		limit = query.DefaultLimit
	}
	offset := request.GetInt("offset", query.DefaultOffset)
	if offset < 0 {
		offset = query.DefaultOffset
	}
	result, err := p.listService.List(ctx, pokemon.ListQuery{
		Limit:  limit,
		Offset: offset,
		Search: request.GetString("search", ""),
		Type:   request.GetString("type", ""),
	})
	if err != nil {
		logger.GetLogger().Errorf("mcp list_pokemon: %v", err)
		return mcp.NewToolResultError(common.FromError(err).String()), nil
	}
	return jsonResult(result)
}

func (p *PokedexMCP) getPokemon(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := p.detailService.Detail(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(common.FromError(err).String()), nil
	}
	return jsonResult(detail)
}

func jsonResult(value any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
