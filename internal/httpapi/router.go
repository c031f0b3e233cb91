// Package httpapi exposes the routing service over HTTP with gin.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/internal/config"
	"github.com/katalvlaran/oopsiroute/routing"
)

// Banner is the body of GET /.
const Banner = "OopsiRoute API is running!"

// NewRouter builds the engine. gatherer backs GET /metrics and may be nil to
// disable that endpoint.
func NewRouter(svc *routing.Service, logger *zap.Logger, cfg config.Server, gatherer prometheus.Gatherer) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(requestID(), accessLog(logger), recovery(logger), corsMiddleware(cfg.CORSOrigins))

	h := &handlers{svc: svc, logger: logger}
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, Banner) })
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "healthy"}) })
	r.GET("/route", h.route)
	r.GET("/bfs", h.bfs)
	r.GET("/graph", h.graph)
	r.POST("/nodes", h.addNode)
	r.DELETE("/nodes/:id", h.removeNode)
	r.POST("/edges", h.addEdge)
	r.DELETE("/edges", h.removeEdge)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return r
}
