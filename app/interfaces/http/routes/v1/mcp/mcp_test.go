package mcp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func guardedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Any("/mcp", MCPMethodGuard(map[string]bool{"tools/list": true}), func(c *gin.Context) {
		c.String(http.StatusOK, "passed")
	})
	return engine
}

func TestMCPMethodGuard(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"allowed method", http.MethodPost, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`, http.StatusOK},
		{"disallowed method", http.MethodPost, `{"jsonrpc":"2.0","id":1,"method":"resources/read"}`, http.StatusForbidden},
		{"not json", http.MethodPost, `hello`, http.StatusBadRequest},
		{"non-post passes", http.MethodDelete, ``, http.StatusOK},
	}
	engine := guardedEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(tt.method, "/mcp", strings.NewReader(tt.body)))
			if recorder.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", recorder.Code, tt.status, recorder.Body.String())
			}
		})
	}
}

func TestMCPMethodGuardRestoresBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	payload := `{"jsonrpc":"2.0","id":7,"method":"tools/list"}`
	engine.POST("/mcp", MCPMethodGuard(map[string]bool{"tools/list": true}), func(c *gin.Context) {
		body, _ := c.GetRawData()
		c.String(http.StatusOK, string(body))
	})
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload)))
	if recorder.Body.String() != payload {
		t.Errorf("downstream saw %q", recorder.Body.String())
	}
}
