package layout

import (
	"fmt"

	"github.com/rs/zerolog"

	"slidesmith/internal/domain/analysis"
)

// Selector picks a layout pattern for a slide. Selection is a pure
// first-match rule table: identical inputs always yield the identical
// pattern, confidence and CSS text.
type Selector struct {
	log zerolog.Logger
}

func NewSelector(log zerolog.Logger) *Selector {
	return &Selector{
		log: log.With().Str("component", "layout-selector").Logger(),
	}
}

// Recommend selects a pattern for the slide and scores the choice. It
// is defined for every slide type; unrecognized types fall through to a
// density-based default.
func (s *Selector) Recommend(slideType analysis.SlideType, density analysis.ContentDensity, audience analysis.Audience, hasVisuals bool) Recommendation {
	pattern, confidence, reason := selectPattern(slideType, density, hasVisuals)

	return Recommendation{
		Pattern:            pattern,
		ConfidenceScore:    clamp01(confidence),
		AccessibilityScore: accessibilityScore(pattern, audience),
		Reason:             reason,
		CSSFramework:       cssFor(pattern.GridSystem),
	}
}

func selectPattern(slideType analysis.SlideType, density analysis.ContentDensity, hasVisuals bool) (Pattern, float64, string) {
	switch slideType {
	case analysis.SlideHero:
		return heroCentered, 0.95, "hero slides open with a centered statement"
	case analysis.SlideProblem, analysis.SlideSolution:
		if hasVisuals {
			return contentSplit, 0.90, fmt.Sprintf("%s slides pair copy with a supporting visual", slideType)
		}
		return heroCentered, 0.80, fmt.Sprintf("%s slides without visuals read best centered", slideType)
	case analysis.SlideEvidence:
		if density == analysis.DensityHigh {
			return informationGrid, 0.85, "dense evidence belongs in a scannable grid"
		}
		return contentSplit, 0.80, "evidence with room to breathe splits copy and data"
	case analysis.SlideComparison:
		return comparisonTable, 0.90, "comparisons call for a side-by-side table"
	case analysis.SlideProcess, analysis.SlideWorkflow:
		return processFlow, 0.88, "sequential content flows left to right"
	default:
		if density == analysis.DensityHigh {
			return informationGrid, 0.70, "high density defaults to the information grid"
		}
		return contentSplit, 0.75, "default split layout for moderate density"
	}
}

// accessibilityScore starts from a 0.8 base and rewards mobile support,
// strong scanning patterns and hero layouts for executives, capped at 1.
func accessibilityScore(pattern Pattern, audience analysis.Audience) float64 {
	score := 0.8
	if pattern.SupportsBreakpoint("mobile") {
		score += 0.1
	}
	if pattern.VisualHierarchy == HierarchyFPattern || pattern.VisualHierarchy == HierarchyZPattern {
		score += 0.1
	}
	if audience == analysis.AudienceExecutive && pattern.LayoutType == "hero" {
		score += 0.05
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// cssFor renders the deterministic framework stylesheet for a grid
// system. The text is a pure function of the grid system value.
func cssFor(grid GridSystem) string {
	switch grid {
	case GridTwelveColumn:
		return `.slide-grid {
  display: grid;
  grid-template-columns: repeat(12, 1fr);
  gap: 1rem;
}
.slide-grid__main { grid-column: span 7; }
.slide-grid__aside { grid-column: span 5; }
`
	case GridFlexbox:
		return `.slide-flex {
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  gap: 1.5rem;
  min-height: 100%;
}
`
	case GridCSSGrid:
		return `.slide-areas {
  display: grid;
  grid-template-areas:
    "header header"
    "content sidebar"
    "footer footer";
  grid-template-columns: 2fr 1fr;
  gap: 1rem;
}
.slide-areas__header { grid-area: header; }
.slide-areas__content { grid-area: content; }
.slide-areas__sidebar { grid-area: sidebar; }
.slide-areas__footer { grid-area: footer; }
`
	default:
		return `.slide-stack {
  display: flex;
  flex-direction: column;
  gap: 1rem;
}
`
	}
}
