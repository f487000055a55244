package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/teron131/Visual-Prompting/internal/infra"
	"github.com/teron131/Visual-Prompting/internal/providers/openrouter"
	"github.com/teron131/Visual-Prompting/internal/storage"
)

// Generator produces rendered prompt strings for a generation batch. The
// OpenRouter client is the production implementation; tests stub it.
type Generator interface {
	Generate(ctx context.Context, req openrouter.GenerateRequest) ([]string, error)
}

// App bundles the dependencies shared by the HTTP handlers.
type App struct {
	Config    *infra.Config
	Log       infra.Logger
	Generator Generator
	Uploads   *storage.FileStore
}

func NewApp(cfg *infra.Config, log infra.Logger, gen Generator, uploads *storage.FileStore) *App {
	return &App{Config: cfg, Log: log, Generator: gen, Uploads: uploads}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}
