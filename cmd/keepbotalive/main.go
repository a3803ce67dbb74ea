package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/app"
	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/renderer"
)

const appVersion = "1.0.0"

func main() {
	var (
		configPath  string
		logLevelStr string
		loadTimeout time.Duration
	)

	flag.StringVar(&configPath, "config", "", "Path to config.json (default: next to the executable)")
	flag.DurationVar(&loadTimeout, "timeout", 60*time.Second, "Per-attempt page load timeout (e.g. 60s)")
	flag.StringVar(&logLevelStr, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parsedLogLevel, err := app.ParseLogLevel(logLevelStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log level: %v\n", err)
		os.Exit(2)
	}
	app.SetupLogging(parsedLogLevel)

	if configPath == "" {
		configPath, err = defaultConfigPath()
		if err != nil {
			slog.Error("config path", "error", err)
			os.Exit(1)
		}
	}

	cfg, created, err := app.LoadOrInit(configPath)
	if err != nil {
		slog.Error("config", "error", err, "path", configPath)
		os.Exit(1)
	}
	if created {
		slog.Warn("config file not found; template created", "path", configPath)
		slog.Info("edit it with your url, expected_text and email settings, then run again")
		return
	}

	notify, err := app.NewMailNotifier(cfg.Email)
	if err != nil {
		slog.Error("config", "error", err, "path", configPath)
		os.Exit(1)
	}

	slog.Info("keepbotalive " + appVersion)
	slog.Info("--config=" + configPath)
	slog.Info("--log-level=" + strings.ToLower(parsedLogLevel.String()))
	slog.Info("--timeout=" + loadTimeout.String())

	app.Run(ctx, cfg, renderer.NewChrome(loadTimeout), notify)
}

// defaultConfigPath puts config.json next to the binary, so the tool works
// the same whether it runs from a checkout or as a scheduled standalone exe.
func defaultConfigPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "config.json"), nil
}
