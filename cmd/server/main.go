package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"meme-localizer/internal/api"
	"meme-localizer/internal/llm_provider"
	"meme-localizer/internal/meme_localizer"
	"meme-localizer/internal/services"
	"meme-localizer/pkg/types"
)

func main() {
	// Load application configuration from .env and environment variables
	globalConfig, err := types.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Initialize logger with human-readable timestamps
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.TimeKey = "time"
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logLevel := zap.InfoLevel
	if globalConfig.Server.LogLevel != "" {
		if err := logLevel.UnmarshalText([]byte(globalConfig.Server.LogLevel)); err != nil {
			logLevel = zap.InfoLevel
		}
	}
	logConfig.Level = zap.NewAtomicLevelAt(logLevel)
	logger, err := logConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	if globalConfig.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	providerFactory := llm_provider.NewFactory(globalConfig)
	providerType := llm_provider.GenerativeProviderType(globalConfig.Provider.Name)

	var provider meme_localizer.ModelProviderInterface
	p, err := providerFactory.CreateProvider(context.Background(), providerType)
	switch {
	case errors.Is(err, llm_provider.ErrMissingAPIKey):
		// Keep serving; every localization request reports the missing key.
		logger.Warn("model API key not configured", zap.String("provider", string(providerType)))
	case err != nil:
		logger.Fatal("failed to create model provider", zap.Error(err))
	default:
		provider = p
		logger.Info("model provider ready", zap.String("provider", string(providerType)))
	}

	localizerService := meme_localizer.NewMemeLocalizerService(logger, provider)
	svc := services.NewServices(localizerService)

	runServer(logger, globalConfig, svc)
}

func runServer(logger *zap.Logger, cfg *types.Config, svc *services.Services) {
	apiServer := api.NewGinServer(logger, cfg.Server, svc)

	addr := cfg.Server.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
