package handlers

import (
	"github.com/rs/zerolog"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/deck"
)

// Provider wires HTTP handlers.
type Provider struct {
	Presentation *PresentationHandler
}

func NewProvider(cfg *config.Config, service *deck.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Presentation: NewPresentationHandler(cfg, service, log),
	}
}
