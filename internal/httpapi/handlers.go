package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/routing"
)

// Query defaults for the demo network.
const (
	defaultSource = "A"
	defaultDest   = "E"
)

type handlers struct {
	svc    *routing.Service
	logger *zap.Logger
}

type routeResponse struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Path        []string `json:"path"`
	Distance    float64  `json:"distance"`
}

type bfsResponse struct {
	Start    string   `json:"start"`
	BFSOrder []string `json:"bfs_order"`
}

type nodeRequest struct {
	ID string `json:"id" binding:"required"`
}

type edgeRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

type edgeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func errorBody(msg string) gin.H { return gin.H{"error": msg} }

// GET /route?src=A&dest=E
func (h *handlers) route(c *gin.Context) {
	src := c.DefaultQuery("src", defaultSource)
	dst := c.DefaultQuery("dest", defaultDest)

	r, err := h.svc.Route(c.Request.Context(), src, dst)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, routeResponse{Source: src, Destination: dst, Path: r.Path, Distance: r.Distance})
	case errors.Is(err, routing.ErrUnknownNode):
		c.JSON(http.StatusBadRequest, errorBody(fmt.Sprintf("One or both nodes not found: %s, %s", src, dst)))
	case errors.Is(err, routing.ErrNoPath):
		c.JSON(http.StatusNotFound, errorBody(fmt.Sprintf("No path found between %s and %s", src, dst)))
	default:
		h.internal(c, err)
	}
}

// GET /bfs?start=A
func (h *handlers) bfs(c *gin.Context) {
	start := c.DefaultQuery("start", defaultSource)

	order, err := h.svc.Reachability(c.Request.Context(), start)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, bfsResponse{Start: start, BFSOrder: order})
	case errors.Is(err, routing.ErrUnknownNode):
		c.JSON(http.StatusBadRequest, errorBody("Node not found: "+start))
	default:
		h.internal(c, err)
	}
}

// GET /graph
func (h *handlers) graph(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

// POST /nodes {"id": "F"}
func (h *handlers) addNode(c *gin.Context) {
	var req nodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.AddNode(req.ID); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, req)
}

// DELETE /nodes/:id
func (h *handlers) removeNode(c *gin.Context) {
	id := c.Param("id")
	if !h.svc.RemoveNode(id) {
		c.JSON(http.StatusNotFound, errorBody("Node not found: "+id))
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /edges {"from": "A", "to": "F", "weight": 0.5}
func (h *handlers) addEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	w := core.DefaultWeight
	if req.Weight != nil {
		w = *req.Weight
	}
	if err := h.svc.AddEdge(req.From, req.To, w); err != nil {
		if errors.Is(err, routing.ErrUnknownNode) {
			c.JSON(http.StatusBadRequest, errorBody(fmt.Sprintf("One or both nodes not found: %s, %s", req.From, req.To)))
			return
		}
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	req.Weight = &w
	c.JSON(http.StatusCreated, req)
}

// DELETE /edges?from=A&to=F
func (h *handlers) removeEdge(c *gin.Context) {
	var q edgeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	h.svc.RemoveEdge(q.From, q.To)
	c.Status(http.StatusNoContent)
}

func (h *handlers) internal(c *gin.Context, err error) {
	_ = c.Error(err)
	h.logger.Error("request failed", zap.Error(err), zap.String(ctxRequestID, c.GetString(ctxRequestID)))
	c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
}
