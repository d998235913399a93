package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meme-localizer/internal/meme_localizer"
	"meme-localizer/internal/result_card"
	"meme-localizer/internal/services"
	"meme-localizer/pkg/types"
	"meme-localizer/web"
)

// Messages returned to the browser. They are shown verbatim in the UI.
const (
	MsgInputRequired   = "Korean text or image is required"
	MsgInvalidImage    = "Invalid image format"
	MsgNotConfigured   = "API key not configured"
	MsgRequestFailed   = "Failed to process request. Please try again."
	MsgNotAnImage      = "Please upload an image file"
	MsgImageTooLarge   = "Image is too large"
	MsgInvalidUpload   = "Invalid upload"
	MsgRenderTextEmpty = "Text is required"
)

type GinServer struct {
	router         *gin.Engine
	logger         *zap.Logger
	services       *services.Services
	maxUploadBytes int64
}

func NewGinServer(logger *zap.Logger, cfg types.ServerConfig, services *services.Services) *GinServer {
	router := gin.New()
	router.Use(gin.Recovery(), GinLogger(logger))

	maxUploadBytes := cfg.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = types.DefaultMaxUploadBytes
	}

	server := &GinServer{
		router:         router,
		logger:         logger,
		services:       services,
		maxUploadBytes: maxUploadBytes,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	s.router.GET("/", noCache(), func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
	})

	staticFS := http.FS(web.Static())
	s.router.GET("/static/*filepath", noCache(), func(c *gin.Context) {
		c.FileFromFS(c.Param("filepath"), staticFS)
	})

	s.router.GET("/health", s.HealthCheck)

	apiGroup := s.router.Group("/api")
	apiGroup.POST("/localize", s.Localize)
	apiGroup.POST("/localize/stream", s.LocalizeStream)
	apiGroup.POST("/localize/upload", s.LocalizeUpload)
	apiGroup.POST("/render", s.RenderCard)
}

// GinLogger returns a gin middleware for logging using zap
func GinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Check if the API server is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *GinServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "healthy",
		"service": "meme-localizer-api",
	})
}

// Localize handles a single localization request
// @Summary Localize Korean ad copy for US internet culture
// @Description Forwards text or a data-URI image to the generative model and returns its raw answer
// @Tags localize
// @Accept json
// @Produce json
// @Param request body types.LocalizeRequest true "Localization request"
// @Success 200 {object} types.LocalizeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/localize [post]
func (s *GinServer) Localize(c *gin.Context) {
	var req types.LocalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, err)
		return
	}
	s.localize(c, req)
}

func (s *GinServer) localize(c *gin.Context, req types.LocalizeRequest) {
	result, err := s.services.MemeLocalizerService.Localize(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.LocalizeResponse{Result: result})
}

// writeError maps service errors to the public error payloads. Anything
// unrecognised is logged and reported with a generic retry message.
func (s *GinServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, meme_localizer.ErrInputRequired):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgInputRequired})
	case errors.Is(err, meme_localizer.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgInvalidImage})
	case errors.Is(err, meme_localizer.ErrNotConfigured):
		s.logger.Warn("localization requested without a model API key")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: MsgNotConfigured})
	default:
		s.logger.Error("localization failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: MsgRequestFailed})
	}
}

// RenderCard turns a localization result into the shareable card
// @Summary Render a result card
// @Description Returns the card as HTML, or the parsed block document when JSON is requested
// @Tags render
// @Accept json
// @Produce html,json
// @Param request body types.RenderRequest true "Result text"
// @Router /api/render [post]
func (s *GinServer) RenderCard(c *gin.Context) {
	var req types.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgRenderTextEmpty})
		return
	}

	doc := result_card.Parse(req.Text)
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, doc)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := result_card.Card(doc).Render(c.Request.Context(), c.Writer); err != nil {
		s.logger.Error("failed to render result card", zap.Error(err))
	}
}
