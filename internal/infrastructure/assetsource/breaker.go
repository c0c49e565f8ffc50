package assetsource

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"slidesmith/internal/domain/asset"
)

// BreakerSource wraps a remote source with a circuit breaker so a
// flapping provider stops delaying every slide. An open breaker behaves
// exactly like a failed source: the curator logs it and moves on.
type BreakerSource struct {
	inner   asset.Source
	breaker *gobreaker.CircuitBreaker
}

var _ asset.Source = (*BreakerSource)(nil)

// WrapWithBreaker guards the source with a breaker that opens after
// three consecutive failures and probes again after 30 seconds.
func WrapWithBreaker(inner asset.Source, log zerolog.Logger) *BreakerSource {
	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("source", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("asset source breaker state changed")
		},
	}

	return &BreakerSource{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *BreakerSource) Name() string { return s.inner.Name() }

func (s *BreakerSource) Search(ctx context.Context, terms []string, filter asset.StyleFilter) ([]asset.Metadata, error) {
	result, err := s.breaker.Execute(func() (any, error) {
		return s.inner.Search(ctx, terms, filter)
	})
	if err != nil {
		return nil, err
	}
	found, _ := result.([]asset.Metadata)
	return found, nil
}
