package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/config"
	"github.com/javiermolinar/figaro/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := api.New(cfg.API.BaseURL, cfg.Timeout())
	app := ui.NewApp(client, cfg)
	return app.Execute()
}
