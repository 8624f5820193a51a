package app

import (
	"fmt"
	"log"
	"os"

	"github.com/anumohan208/Confidence/internal/api"
	"github.com/anumohan208/Confidence/internal/config"
	"github.com/anumohan208/Confidence/internal/user"
)

// App wires the configuration, the signed-in identity and the backend
// client together for the dashboard binaries.
type App struct {
	ConfigPath string
	Config     *config.Config
	User       user.User
	Client     *api.Client
}

// New loads the config, points logging at the configured file (the TUI
// owns stdout) and builds the backend client.
func New(configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.Log.File, err)
	}
	log.SetOutput(logFile)

	a := &App{
		ConfigPath: configPath,
		Config:     cfg,
		User:       user.FromConfig(cfg.User),
		Client:     api.New(cfg.API.BaseURL, cfg.API.Timeout()),
	}

	cleanup := func() {
		_ = logFile.Close()
	}

	return a, cleanup, nil
}
