package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/dtos"
	"github.com/justsurfingit/job-canvas/internal/services"
)

type DiagramHandler struct {
	Service *services.DiagramService
	Logger  *zap.Logger
}

func NewDiagramHandler(s *services.DiagramService, logger *zap.Logger) *DiagramHandler {
	return &DiagramHandler{Service: s, Logger: logger}
}

// Classify is the POST /intent endpoint.
func (h *DiagramHandler) Classify(c *gin.Context) {
	var req dtos.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	in, creation := h.Service.Classify(req.Text)
	c.JSON(http.StatusOK, dtos.IntentResponse{Intent: in, IsCreationRequest: creation})
}

// Create is the POST /diagrams endpoint.
func (h *DiagramHandler) Create(c *gin.Context) {
	var req dtos.DiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	genReq := services.GenerateRequest{
		Text:           req.Text,
		JobID:          req.JobID,
		ProfileSummary: req.ProfileSummary,
		Facts:          req.Facts,
	}
	if req.Anchor != nil {
		genReq.Anchor = *req.Anchor
	}

	run, err := h.Service.Generate(c.Request.Context(), genReq)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dtos.NewDiagramResponse(run))
	case errors.Is(err, services.ErrUnsupportedKind):
		in, _ := h.Service.Classify(req.Text)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "This request is answered in chat, not on the canvas",
			"intent": in,
		})
	case errors.Is(err, services.ErrCompletionUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": services.ErrCompletionUnavailable.Error(), "retryable": true})
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("Diagram generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate diagram"})
	}
}

// List is the GET /diagrams endpoint.
func (h *DiagramHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.Service.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list diagrams: " + err.Error()})
		return
	}
	out := make([]dtos.DiagramSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, dtos.NewDiagramSummary(r))
	}
	c.JSON(http.StatusOK, gin.H{"diagrams": out})
}

func (h *DiagramHandler) Get(c *gin.Context) {
	run, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOr500(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewDiagramResponse(run))
}

func (h *DiagramHandler) Preview(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Service.Preview(c.Request.Context(), c.Param("id"), &buf); err != nil {
		h.notFoundOr500(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *DiagramHandler) Mermaid(c *gin.Context) {
	src, err := h.Service.Mermaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOr500(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(src))
}

// Kinds is the GET /diagrams/kinds endpoint.
func (h *DiagramHandler) Kinds(c *gin.Context) {
	kinds := make([]gin.H, 0, len(diagram.Kinds))
	for _, k := range diagram.Kinds {
		kinds = append(kinds, gin.H{"kind": k, "generated": k.Generated()})
	}
	c.JSON(http.StatusOK, gin.H{"kinds": kinds})
}

func (h *DiagramHandler) notFoundOr500(c *gin.Context, err error) {
	if errors.Is(err, services.ErrDiagramNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.Logger.Error("Diagram lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
