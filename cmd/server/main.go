package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"coldreach/api"
	"coldreach/config"
	"coldreach/internal/ai"
	handlers "coldreach/internal/api"
	"coldreach/internal/logger"
	"coldreach/internal/middleware"
)

func main() {
	bootLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	config.LoadEnvFile(bootLog)

	cfg, err := config.LoadConfig(".", bootLog)
	if err != nil {
		bootLog.Fatal("Cannot load config", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		bootLog.Fatal("Cannot build logger", "error", err)
	}
	defer log.Sync()
	log = log.With("service", "coldreach-server")
	cfg.WarnMissingServer(log)

	generator := ai.NewGenerator(cfg.OpenAIKey, cfg.OpenAIModel, log)
	apiHandler := handlers.NewAPIHandler(generator, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Info("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting API server", "addr", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("API server listen error", "error", err)
		}
		log.Info("API server has stopped listening")
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Received signal, shutting down server", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("API server forced shutdown", "error", err)
	} else {
		log.Info("API server gracefully stopped")
	}
}
