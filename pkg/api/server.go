// Package api provides the REST API server for musictext
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james-see/musictext/pkg/lily"
	"github.com/james-see/musictext/pkg/notation"
	"github.com/james-see/musictext/pkg/notation/systems"
	"github.com/james-see/musictext/pkg/vexflow"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MusicText API
// @version 1.0
// @description API for compiling plain-text music notation into documents, LilyPond and VexFlow
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/compile", handleCompile)
		v1.POST("/render/lilypond", handleRenderLilypond)
		v1.POST("/render/vexflow", handleRenderVexflow)
		v1.GET("/systems", listSystems)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// compileRequest is the JSON body for all compile and render endpoints.
type compileRequest struct {
	Text string `json:"text" binding:"required"`
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "musictext",
	})
}

// listSystems godoc
// @Summary List supported notation systems
// @Description Returns the notation systems the compiler understands
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/systems [get]
func listSystems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"systems": systems.Names(),
		"outputs": []string{"document", "lilypond", "vexflow"},
	})
}

// handleCompile godoc
// @Summary Compile notation text
// @Description Compiles plain-text notation and returns the document as JSON
// @Tags compile
// @Accept json
// @Produce json
// @Success 200 {object} notation.Document
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/compile [post]
func handleCompile(c *gin.Context) {
	doc, ok := compileFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// handleRenderLilypond godoc
// @Summary Render notation text as LilyPond
// @Description Compiles plain-text notation and returns LilyPond source
// @Tags render
// @Accept json
// @Produce text/plain
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/render/lilypond [post]
func handleRenderLilypond(c *gin.Context) {
	handleRender(c, lily.New())
}

// handleRenderVexflow godoc
// @Summary Render notation text as VexFlow JSON
// @Description Compiles plain-text notation and returns staff-notation JSON
// @Tags render
// @Accept json
// @Produce json
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/render/vexflow [post]
func handleRenderVexflow(c *gin.Context) {
	handleRender(c, vexflow.New())
}

func handleRender(c *gin.Context, emitter notation.Emitter) {
	doc, ok := compileFromRequest(c)
	if !ok {
		return
	}
	out, err := emitter.Emit(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if emitter.Name() == "vexflow" {
		c.Data(http.StatusOK, "application/json", []byte(out))
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
}

func compileFromRequest(c *gin.Context) (*notation.Document, bool) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text field"})
		return nil, false
	}

	doc, err := notation.Compile(req.Text)
	if err != nil {
		if ce, ok := err.(*notation.CompileError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": ce.Error(), "detail": ce})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return doc, true
}
