package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sebastiantruijens/moviesearch/internal/app"
	"github.com/sebastiantruijens/moviesearch/internal/config"
	"github.com/sebastiantruijens/moviesearch/internal/logger"
	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
	"github.com/sebastiantruijens/moviesearch/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	closer, err := logger.Init(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info("starting movie search", "env", cfg.Logging.Env, "api", cfg.TMDB.BaseURL)

	api := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIToken, cfg.TMDB.RequestTimeout)
	cache := query.NewCache(cfg.Query.StaleTime, cfg.Query.GCTime, nil)
	client := query.NewClient(api, cache)
	orch := app.New(query.NewObserver(cache, cfg.Query.MinLength), cfg.UI.ToastDuration)
	links := tmdb.NewLinks(cfg.TMDB.ImageBaseURL, cfg.TMDB.WebBaseURL)

	m := ui.New(orch, client, links, ui.Options{
		RequestTimeout: cfg.TMDB.RequestTimeout,
		MinQueryLength: cfg.Query.MinLength,
		ToastDuration:  cfg.UI.ToastDuration,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		closer.Close()
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}

	logger.Info("movie search stopped")
}
