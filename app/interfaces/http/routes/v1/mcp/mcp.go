package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/responses"
	mcpimpl "pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1/mcp/mcp_impl"
	"pokedex.dev/pokedex-api-gateway/config"
)

// MCPMethodGuard rejects JSON-RPC calls outside allowedMethods. Only POST
// carries a JSON-RPC body; other verbs pass through to the transport.
func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "invalid_request",
				Error: "unreadable request body",
			})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		var req struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "invalid_request",
				Error: "request body is not a JSON-RPC message",
			})
			return
		}

		if !allowedMethods[req.Method] {
			c.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{
				Code:  "method_not_allowed",
				Error: "MCP method " + req.Method + " is not supported",
			})
			return
		}
		c.Next()
	}
}

type MCPAPI struct {
	PokedexMCP *mcpimpl.PokedexMCP
	MCPServer  *mcpserver.MCPServer
}

func NewMCPAPI(pokedexMCP *mcpimpl.PokedexMCP) *MCPAPI {
	mcpSrv := mcpserver.NewMCPServer("pokedex", config.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	pokedexMCP.RegisterTool(mcpSrv)
	return &MCPAPI{
		PokedexMCP: pokedexMCP,
		MCPServer:  mcpSrv,
	}
}

// MCPStream
// @Summary MCP streamable endpoint
// @Description Model Context Protocol endpoint exposing the list_pokemon and get_pokemon tools over streamable HTTP.
// @Tags mcp
// @Accept json
// @Produce json
// @Param request body any true "MCP request payload"
// @Success 200 {string} string "JSON-RPC response"
// @Router /v1/mcp [post]
func (mcpAPI *MCPAPI) RegisterRouter(router gin.IRouter) {
	mcpHttpHandler := mcpserver.NewStreamableHTTPServer(mcpAPI.MCPServer)
	router.Any(
		"/mcp",
		MCPMethodGuard(map[string]bool{
			// Initialization / handshake
			"initialize":                true,
			"notifications/initialized": true,
			"ping":                      true,

			// Tools
			"tools/list": true,
			"tools/call": true,
		}),
		gin.WrapH(mcpHttpHandler))
}
