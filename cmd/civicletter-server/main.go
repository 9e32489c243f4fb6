package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"civicletter/internal/config"
	"civicletter/internal/letter"
	"civicletter/internal/server"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	spec, err := letter.LoadPromptSpec(cfg.PromptFile)
	if err != nil {
		log.Error("failed to load prompt spec", "error", err, "path", cfg.PromptFile)
		os.Exit(1)
	}
	provider, err := buildProvider(cfg)
	if err != nil {
		log.Error("failed to configure provider", "error", err)
		os.Exit(1)
	}

	svc := letter.NewService(provider, spec, cfg.RequestTimeout)
	s := server.NewServer(cfg, svc, log)

	addr := ":" + cfg.Port
	log.Info("civicletter server listening", "addr", addr, "provider", cfg.Provider)
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func buildProvider(cfg config.Config) (letter.Provider, error) {
	switch cfg.Provider {
	case "perplexity":
		return letter.NewPerplexityClient(cfg.PerplexityAPIKey, cfg.PerplexityBaseURL, cfg.PerplexityModel), nil
	case "openai":
		return letter.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown letter provider %q", cfg.Provider)
	}
}
