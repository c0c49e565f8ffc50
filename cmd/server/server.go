package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/asset"
	"slidesmith/internal/domain/deck"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/domain/style"
	"slidesmith/internal/infrastructure/assetsource"
	"slidesmith/internal/infrastructure/brandbook"
	"slidesmith/internal/infrastructure/logger"
	"slidesmith/internal/infrastructure/observability"
	"slidesmith/internal/interfaces/httpserver"
)

// @title Slidesmith API
// @version 1.0
// @description Content-to-slide recommendation pipeline
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	book, err := brandbook.Load(cfg.BrandBookPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load brand book")
	}

	sources := assetsource.Build(cfg, log)

	deckService := deck.NewService(
		cfg,
		analysis.NewAnalyzer(log),
		layout.NewSelector(log),
		asset.NewCurator(sources, cfg.AssetSourceTimeout, log),
		style.NewComposer(log),
		book,
		log,
	)

	httpServer := httpserver.New(cfg, log, deckService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
