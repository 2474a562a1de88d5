package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

func CORS() gin.HandlerFunc {
	return CORSWithHosts(environment_variables.EnvironmentVariables.ALLOWED_CORS_HOSTS)
}

// CORSWithHosts allows the listed origins; "*" allows any origin without credentials.
func CORSWithHosts(allowedHosts []string) gin.HandlerFunc {
	allowAny := slices.Contains(allowedHosts, "*")
	return func(c *gin.Context) {
		host := c.Request.Header.Get("Origin")
		if host != "" && (allowAny || slices.Contains(allowedHosts, host)) {
			if allowAny {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", host)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				c.Writer.Header().Add("Vary", "Origin")
			}
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID, X-Admin-Key, Mcp-Session-Id")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
