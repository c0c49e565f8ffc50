package brandbook

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"slidesmith/internal/domain/brand"
)

// Book is an immutable catalog of named brand guidelines, loaded once
// at startup and safe to share across requests.
type Book struct {
	guidelines map[string]brand.Guidelines
	log        zerolog.Logger
}

// Load reads a YAML brand book from disk. An empty path yields a book
// containing only the built-in corporate set.
func Load(path string, log zerolog.Logger) (*Book, error) {
	book := &Book{
		guidelines: map[string]brand.Guidelines{
			"corporate": *brand.Corporate(),
		},
		log: log.With().Str("component", "brand-book").Logger(),
	}

	if strings.TrimSpace(path) == "" {
		return book, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brand book %s: %w", path, err)
	}

	var parsed map[string]brand.Guidelines
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse brand book %s: %w", path, err)
	}

	for name, g := range parsed {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if g.Name == "" {
			g.Name = key
		}
		book.guidelines[key] = g
	}

	book.log.Info().Int("brands", len(book.guidelines)).Str("path", path).Msg("brand book loaded")
	return book, nil
}

// Get resolves a brand identifier. Empty and unknown names return nil;
// callers fall back to the built-in corporate set.
func (b *Book) Get(name string) *brand.Guidelines {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	if g, ok := b.guidelines[key]; ok {
		return &g
	}
	b.log.Debug().Str("brand", name).Msg("unknown brand identifier, falling back to corporate")
	return nil
}
