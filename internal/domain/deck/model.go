package deck

import (
	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/asset"
	"slidesmith/internal/domain/brand"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/domain/style"
)

// Request is the top-level generation input.
type Request struct {
	Content                   string
	Audience                  analysis.Audience
	PresentationType          analysis.PresentationType
	BrandGuidelines           string
	TimeConstraintMinutes     int
	AccessibilityRequirements []string
}

// GeneratedSlide is the per-slide merge point of the four stages.
// Instances are created once by the orchestrator and never mutated.
type GeneratedSlide struct {
	ID            string                `json:"id"`
	Type          analysis.SlideType    `json:"type"`
	Title         string                `json:"title"`
	Content       string                `json:"content"`
	Layout        layout.Recommendation `json:"layout"`
	Assets        asset.Recommendation  `json:"assets"`
	Style         style.Recommendation  `json:"style"`
	Markdown      string                `json:"markdown"`
	EstimatedTime int                   `json:"estimated_time"`
}

// Metadata aggregates deck-level facts over the slide list.
type Metadata struct {
	TotalSlides        int     `json:"total_slides"`
	EstimatedDuration  int     `json:"estimated_duration"`
	ComplexityScore    int     `json:"complexity_score"`
	AccessibilityScore float64 `json:"accessibility_score"`
	BrandCompliance    float64 `json:"brand_compliance"`
}

// QualityMetrics scores the generated deck. OverallScore is the
// unweighted mean of the four sub-scores, clamped to [0,1].
type QualityMetrics struct {
	ContentQuality float64 `json:"content_quality"`
	VisualAppeal   float64 `json:"visual_appeal"`
	Accessibility  float64 `json:"accessibility"`
	BrandAlignment float64 `json:"brand_alignment"`
	OverallScore   float64 `json:"overall_score"`
}

// Result is the full generation output.
type Result struct {
	DeckID                  string           `json:"deck_id"`
	Slides                  []GeneratedSlide `json:"slides"`
	Markdown                string           `json:"markdown"`
	Analysis                analysis.Result  `json:"analysis"`
	Metadata                Metadata         `json:"presentation_metadata"`
	Quality                 QualityMetrics   `json:"quality_metrics"`
	OptimizationSuggestions []string         `json:"optimization_suggestions"`
}

// BrandBook resolves a brand guideline identifier. Implementations
// return nil for empty or unknown names; downstream stages fall back to
// the built-in corporate set.
type BrandBook interface {
	Get(name string) *brand.Guidelines
}
