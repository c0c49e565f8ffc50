package asset

import (
	"context"

	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/brand"
)

// Type classifies a visual asset.
type Type string

const (
	TypeIcon    Type = "icon"
	TypeImage   Type = "image"
	TypeVideo   Type = "video"
	TypeChart   Type = "chart"
	TypeDiagram Type = "diagram"
	TypeLogo    Type = "logo"
)

// License tiers for candidate assets.
type License string

const (
	LicenseFree        License = "free"
	LicenseAttribution License = "attribution"
	LicensePremium     License = "premium"
)

// Dimensions of a raster asset, when the provider reports them.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Metadata describes one candidate asset returned by a source.
type Metadata struct {
	ID                      string      `json:"id"`
	Type                    Type        `json:"type"`
	Source                  string      `json:"source"`
	URL                     string      `json:"url"`
	AltText                 string      `json:"alt_text"`
	Tags                    []string    `json:"tags"`
	SemanticScore           float64     `json:"semantic_score"`
	BrandCompliance         bool        `json:"brand_compliance"`
	CulturalAppropriateness bool        `json:"cultural_appropriateness"`
	License                 License     `json:"license"`
	Dimensions              *Dimensions `json:"dimensions,omitempty"`
}

// StyleFilter carries provider hints resolved from a preferred style.
type StyleFilter struct {
	Style       string   `json:"style"`
	Keywords    []string `json:"keywords"`
	Colors      []string `json:"colors"`
	Orientation string   `json:"orientation"`
}

// Query is the curation input for one slide.
type Query struct {
	ContentContext  string
	SlideType       analysis.SlideType
	TargetAudience  analysis.Audience
	BrandGuidelines *brand.Guidelines
	PreferredStyle  string
}

// Recommendation is the ranked shortlist for one slide. Selected assets
// are always compliant; fallbacks are the next-best scored candidates
// regardless of compliance.
type Recommendation struct {
	Assets          []Metadata `json:"assets"`
	Reasoning       string     `json:"reasoning"`
	ConfidenceScore float64    `json:"confidence_score"`
	FallbackOptions []Metadata `json:"fallback_options"`
}

// Source is an external search capability. Implementations may perform
// network I/O; a failing source must surface its error to the curator
// rather than panic, and must honor context cancellation.
type Source interface {
	Name() string
	Search(ctx context.Context, terms []string, filter StyleFilter) ([]Metadata, error)
}
