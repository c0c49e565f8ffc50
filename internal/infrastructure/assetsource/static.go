package assetsource

import (
	"context"
	"strings"

	"slidesmith/internal/domain/asset"
)

// StaticSource is a deterministic built-in catalog. It needs no network
// and guarantees the pipeline can always surface assets, which also
// makes it the reference source for pipeline tests.
type StaticSource struct {
	catalog []asset.Metadata
}

var _ asset.Source = (*StaticSource)(nil)

func NewStaticSource() *StaticSource {
	return &StaticSource{catalog: builtinCatalog()}
}

func (s *StaticSource) Name() string { return "builtin" }

// Search matches catalog entries whose tags overlap the search terms or
// the style filter keywords. Order follows the catalog, so identical
// queries return identical results.
func (s *StaticSource) Search(_ context.Context, terms []string, filter asset.StyleFilter) ([]asset.Metadata, error) {
	keywords := append(append([]string{}, terms...), filter.Keywords...)

	var matches []asset.Metadata
	for _, item := range s.catalog {
		if matchesAny(item, keywords) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func matchesAny(item asset.Metadata, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
		if strings.Contains(strings.ToLower(item.AltText), kw) {
			return true
		}
	}
	return false
}

func builtinCatalog() []asset.Metadata {
	return []asset.Metadata{
		{
			ID: "builtin-growth-chart", Type: asset.TypeChart, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/charts/growth-bars.svg",
			AltText: "Bar chart showing quarter over quarter growth",
			Tags:    []string{"growth", "revenue", "business", "professional", "data"},
			SemanticScore: 0.85, License: asset.LicenseFree,
			Dimensions: &asset.Dimensions{Width: 1200, Height: 800},
		},
		{
			ID: "builtin-team-photo", Type: asset.TypeImage, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/images/team-collaboration.jpg",
			AltText: "Team collaborating around a table",
			Tags:    []string{"team", "collaboration", "professional", "office"},
			SemanticScore: 0.8, License: asset.LicenseFree,
			Dimensions: &asset.Dimensions{Width: 1920, Height: 1080},
		},
		{
			ID: "builtin-process-icons", Type: asset.TypeIcon, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/icons/process-steps.svg",
			AltText: "Numbered process step icons",
			Tags:    []string{"process", "workflow", "steps", "business"},
			SemanticScore: 0.75, License: asset.LicenseFree,
		},
		{
			ID: "builtin-strategy-diagram", Type: asset.TypeDiagram, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/diagrams/strategy-map.svg",
			AltText: "Strategy map connecting goals to initiatives",
			Tags:    []string{"strategy", "planning", "professional", "roadmap"},
			SemanticScore: 0.78, License: asset.LicenseFree,
		},
		{
			ID: "builtin-tech-architecture", Type: asset.TypeDiagram, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/diagrams/system-architecture.svg",
			AltText: "System architecture diagram with service boundaries",
			Tags:    []string{"technology", "architecture", "technical", "diagram", "professional"},
			SemanticScore: 0.82, License: asset.LicenseFree,
		},
		{
			ID: "builtin-customer-journey", Type: asset.TypeImage, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/images/customer-journey.jpg",
			AltText: "Customer journey touchpoints illustration",
			Tags:    []string{"customer", "journey", "experience", "business"},
			SemanticScore: 0.76, License: asset.LicenseFree,
		},
		{
			ID: "builtin-data-dashboard", Type: asset.TypeChart, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/charts/kpi-dashboard.svg",
			AltText: "Dashboard with key performance indicators",
			Tags:    []string{"data", "performance", "metrics", "professional", "dashboard"},
			SemanticScore: 0.8, License: asset.LicenseFree,
		},
		{
			ID: "builtin-innovation-premium", Type: asset.TypeImage, Source: "builtin",
			URL:     "https://assets.slidesmith.dev/images/innovation-lab.jpg",
			AltText: "Innovation lab with prototyping equipment",
			Tags:    []string{"innovation", "creative", "lab", "professional"},
			SemanticScore: 0.88, License: asset.LicensePremium,
			Dimensions: &asset.Dimensions{Width: 2400, Height: 1600},
		},
	}
}
