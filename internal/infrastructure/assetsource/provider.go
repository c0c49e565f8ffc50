package assetsource

import (
	"github.com/rs/zerolog"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/asset"
)

// Build assembles the configured asset sources. Unknown names are
// logged and skipped; remote sources are wrapped with a circuit
// breaker.
func Build(cfg *config.Config, log zerolog.Logger) []asset.Source {
	sources := make([]asset.Source, 0, len(cfg.AssetSources))
	for _, name := range cfg.AssetSources {
		switch name {
		case "builtin":
			sources = append(sources, NewStaticSource())
		case "openverse":
			sources = append(sources, WrapWithBreaker(NewOpenverseSource(log), log))
		case "iconify":
			sources = append(sources, WrapWithBreaker(NewIconifySource(log), log))
		default:
			log.Warn().Str("source", name).Msg("unknown asset source in configuration, skipping")
		}
	}
	return sources
}
