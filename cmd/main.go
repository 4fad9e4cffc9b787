package main

import (
	"context"
	"go-async-exercises/internal/config"
	"go-async-exercises/internal/fetcher"
	"go-async-exercises/internal/models"
	"go-async-exercises/internal/pause"
	"go-async-exercises/internal/runner"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
)

type App struct {
	cfg    *config.Config
	runner runner.RunnerService
}

func SetupLogger(w io.Writer, level slog.Level, format string) {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if err, ok := a.Value.Any().(error); ok {
					aErr := tint.Err(err)
					aErr.Key = a.Key
					return aErr
				}
				return a
			},
		})
	}
	slog.SetDefault(slog.New(h))
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		SetupLogger(os.Stderr, slog.LevelInfo, "text")
		slog.Error("Failed to load config", "error", err)
		os.Exit(78)
	}
	SetupLogger(os.Stderr, cfg.SlogLevel(), cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := fetcher.NewClient(cfg.UserAPIURL, nil)
	if err != nil {
		slog.Error("Failed to create users client", "error", err)
		os.Exit(78)
	}
	reporter := fetcher.NewReporter(client, os.Stdout, os.Stderr)

	app := App{
		cfg: cfg,
		runner: runner.New(
			models.Job{
				Name: "pause",
				Run: func(ctx context.Context) error {
					return pause.Demo(ctx, cfg.PauseDuration, os.Stdout)
				},
			},
			models.Job{
				Name: "fetch-user",
				Run: func(ctx context.Context) error {
					return reporter.Report(ctx, cfg.UserID)
				},
			},
		),
	}
	code := app.run(ctx)
	stop()
	os.Exit(code)
}

func (app App) run(ctx context.Context) int {
	slog.Debug("Running exercises", "userID", app.cfg.UserID, "pause", app.cfg.PauseDuration)
	if err := app.runner.Run(ctx); err != nil {
		return 1
	}
	return 0
}
