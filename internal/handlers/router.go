package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequestLogger logs one line per request on logger.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// NewRouter wires every route under /api/v1.
func NewRouter(diagrams *DiagramHandler, jobs *JobHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.POST("/intent", diagrams.Classify)

		api.GET("/diagrams", diagrams.List)
		api.GET("/diagrams/kinds", diagrams.Kinds)
		api.POST("/diagrams", diagrams.Create)
		api.GET("/diagrams/:id", diagrams.Get)
		api.GET("/diagrams/:id/preview.png", diagrams.Preview)
		api.GET("/diagrams/:id/mermaid", diagrams.Mermaid)

		api.POST("/jobs/extract", jobs.ParseJob)
		api.POST("/jobs", jobs.CreateJob)
		api.GET("/jobs/:id", jobs.GetJob)
		api.GET("/jobs/:id/events", jobs.ListEvents)
	}
	return r
}
