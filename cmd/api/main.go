package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/teron131/Visual-Prompting/internal/http/handlers"
	"github.com/teron131/Visual-Prompting/internal/http/httpapi"
	"github.com/teron131/Visual-Prompting/internal/infra"
	"github.com/teron131/Visual-Prompting/internal/providers/openrouter"
	"github.com/teron131/Visual-Prompting/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.Debug)

	client, err := openrouter.NewClient(openrouter.Options{
		APIKey:  cfg.OpenRouterAPIKey,
		Model:   cfg.DefaultModel,
		BaseURL: cfg.OpenRouterBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("configure openrouter client")
	}

	uploads, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("prepare upload spool")
	}

	app := handlers.NewApp(cfg, logger, client, uploads)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", cfg.Addr()).
			Str("model", client.Model()).
			Msg("API listening")
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
