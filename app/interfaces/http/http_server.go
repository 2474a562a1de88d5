package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/grafana/pyroscope-go/godeltaprof/http/pprof"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/middleware"
	v1 "pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

type HttpServer struct {
	engine  *gin.Engine
	v1Route *v1.V1Route
}

func NewHttpServer(v1Route *v1.V1Route) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:  gin.New(),
		v1Route: v1Route,
	}
	server.engine.Use(
		gin.Recovery(),
		middleware.LoggerMiddleware(logger.GetLogger()),
		middleware.CORS(),
	)
	server.engine.GET("/health-check", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	server.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	if environment_variables.Bool(environment_variables.EnvironmentVariables.ENABLE_PPROF) {
		// net/http/pprof and godeltaprof register on the default mux
		server.engine.Any("/debug/pprof/*any", gin.WrapH(nethttp.DefaultServeMux))
	}
	server.v1Route.RegisterRouter(server.engine.Group("/"))
	return &server
}

// Handler exposes the configured engine, mainly for tests.
func (httpServer *HttpServer) Handler() nethttp.Handler {
	return httpServer.engine
}

const shutdownTimeout = 10 * time.Second

// Run serves on PORT until ctx ends, then drains in-flight requests.
func (httpServer *HttpServer) Run(ctx context.Context) error {
	server := &nethttp.Server{
		Addr:    ":" + environment_variables.EnvironmentVariables.PORT,
		Handler: httpServer.engine,
	}

	serveErr := make(chan error, 1)
	logger.GetLogger().Infof("pokedex api gateway listening on %s", server.Addr)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
