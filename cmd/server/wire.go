//go:build wireinject

package main

import (
	"github.com/google/wire"
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
	"slidesmith/internal/interfaces/httpserver"
)

var pipelineSet = wire.NewSet(
	analysis.NewAnalyzer,
	layout.NewSelector,
	style.NewComposer,
	newCurator,
	newBrandBook,
	wire.Bind(new(deck.BrandBook), new(*brandbook.Book)),
	deck.NewService,
)

// BuildApplication assembles the slidesmith service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		pipelineSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newCurator(cfg *config.Config, log zerolog.Logger) *asset.Curator {
	return asset.NewCurator(assetsource.Build(cfg, log), cfg.AssetSourceTimeout, log)
}

func newBrandBook(cfg *config.Config, log zerolog.Logger) (*brandbook.Book, error) {
	return brandbook.Load(cfg.BrandBookPath, log)
}
