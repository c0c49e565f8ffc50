package style

import (
	"fmt"

	"github.com/rs/zerolog"

	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/brand"
)

// Composer layers context-specific tokens and component overrides on
// top of the brand catalog and synthesizes the final stylesheet.
// Composition is a pure fold over ordered lists: identical inputs
// produce byte-identical CSS.
type Composer struct {
	log zerolog.Logger
}

func NewComposer(log zerolog.Logger) *Composer {
	return &Composer{
		log: log.With().Str("component", "style-composer").Logger(),
	}
}

// Compose always succeeds. Nil guidelines fall back to the built-in
// corporate set.
func (c *Composer) Compose(slideType analysis.SlideType, audience analysis.Audience, density analysis.ContentDensity, guidelines *brand.Guidelines) Recommendation {
	alignment := 0.9
	if guidelines == nil {
		guidelines = brand.Corporate()
		alignment = 0.8
	}

	tokens := baseTokens()
	tokens = append(tokens, Token{
		Name: "font-family-brand", Value: guidelines.FontFamily,
		Category: CategoryTypography, Scope: ScopeTheme,
	})
	tokens = append(tokens, contextTokens(slideType, audience, density)...)

	components := baseComponents()
	components = applyOverrides(components, slideType, density)

	issues := validateAccessibility(tokens)

	return Recommendation{
		Theme:               guidelines.Name,
		Tokens:              tokens,
		Components:          components,
		CSS:                 synthesize(tokens, components),
		Reasoning:           reasoning(slideType, audience, density, guidelines),
		BrandAlignment:      alignment,
		AccessibilityIssues: issues,
	}
}

// contextTokens are the request-specific additions layered over the
// catalog, in fixed order: audience, density, then slide type.
func contextTokens(slideType analysis.SlideType, audience analysis.Audience, density analysis.ContentDensity) []Token {
	var tokens []Token

	switch audience {
	case analysis.AudienceExecutive:
		tokens = append(tokens,
			Token{Name: "color-emphasis", Value: "#b8860b", Category: CategoryColor, Scope: ScopeTheme},
			Token{Name: "font-size-lg", Value: "1.375rem", Category: CategoryTypography, Scope: ScopeTheme},
		)
	case analysis.AudienceTechnical:
		tokens = append(tokens,
			Token{Name: "font-family-code", Value: "JetBrains Mono, monospace", Category: CategoryTypography, Scope: ScopeTheme},
		)
	}

	switch density {
	case analysis.DensityHigh:
		tokens = append(tokens,
			Token{Name: "spacing-compact", Value: "0.375rem", Category: CategorySpacing, Scope: ScopeTheme},
			Token{Name: "font-size-compact", Value: "0.9rem", Category: CategoryTypography, Scope: ScopeTheme},
		)
	case analysis.DensityLow:
		tokens = append(tokens,
			Token{Name: "spacing-spacious", Value: "3rem", Category: CategorySpacing, Scope: ScopeTheme},
			Token{Name: "font-size-spacious", Value: "1.125rem", Category: CategoryTypography, Scope: ScopeTheme},
		)
	}

	switch slideType {
	case analysis.SlideHero:
		tokens = append(tokens,
			Token{Name: "gradient-hero", Value: "linear-gradient(135deg, var(--color-primary), var(--color-accent))", Category: CategoryColor, Scope: ScopeComponent},
		)
	case analysis.SlideEvidence:
		tokens = append(tokens,
			Token{Name: "color-highlight", Value: "#fef08a", Category: CategoryColor, Scope: ScopeComponent},
		)
	}

	return tokens
}

// applyOverrides adds request-specific component variants: comparison
// slides get a two-column grid, timeline slides a row flex layout with
// a mobile column override, and high density compacts the content
// container.
func applyOverrides(components []ComponentStyle, slideType analysis.SlideType, density analysis.ContentDensity) []ComponentStyle {
	for i := range components {
		if components[i].Name != "slide-content" {
			continue
		}

		switch slideType {
		case analysis.SlideComparison:
			components[i].Variants = append(components[i].Variants, Variant{
				Name: "columns",
				Declarations: []Declaration{
					{Property: "display", Value: "grid"},
					{Property: "grid-template-columns", Value: "1fr 1fr"},
					{Property: "gap", Value: "var(--spacing-lg)"},
				},
			})
		case analysis.SlideTimeline:
			components[i].Variants = append(components[i].Variants, Variant{
				Name: "timeline",
				Declarations: []Declaration{
					{Property: "display", Value: "flex"},
					{Property: "flex-direction", Value: "row"},
					{Property: "gap", Value: "var(--spacing-md)"},
				},
			})
			components[i].Responsive = append(components[i].Responsive, Responsive{
				Breakpoint: "mobile",
				Declarations: []Declaration{
					{Property: "flex-direction", Value: "column"},
				},
			})
		}

		if density == analysis.DensityHigh {
			components[i].Variants = append(components[i].Variants, Variant{
				Name: "compact",
				Declarations: []Declaration{
					{Property: "line-height", Value: "1.4"},
					{Property: "font-size", Value: "var(--font-size-compact)"},
				},
			})
		}
	}
	return components
}

func reasoning(slideType analysis.SlideType, audience analysis.Audience, density analysis.ContentDensity, guidelines *brand.Guidelines) string {
	return fmt.Sprintf("%s theme composed for a %s %s slide at %s density",
		guidelines.Name, audience, slideType, density)
}
