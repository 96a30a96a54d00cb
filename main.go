package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixbrock/ghexplorer/internal/app"
	"github.com/felixbrock/ghexplorer/internal/persistence"
	"github.com/felixbrock/ghexplorer/internal/telemetry"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/time/rate"
)

const githubTimeout = 15 * time.Second

func main() {
	config, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, config.OTLPEndpoint, config.Version)
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	if config.GithubToken == "" {
		slog.Warn("GITHUB_TOKEN environment variable not set, unauthenticated requests are heavily rate limited")
	}

	client := &http.Client{Timeout: githubTimeout}

	userRepo := persistence.UserRepo{
		BaseUrl:     config.GithubApiUrl,
		BaseHeaders: config.GithubHeaders(),
		Limiter:     rate.NewLimiter(rate.Limit(config.GithubRPS), 1),
		Client:      client,
	}
	eventRepo := persistence.EventRepo{Url: config.PHUrl, ApiKey: config.PHApiKey, Client: client}

	a := app.App{
		UserRepo:  userRepo,
		EventRepo: eventRepo,
		Config:    config,
	}

	if err := a.Start(ctx); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
