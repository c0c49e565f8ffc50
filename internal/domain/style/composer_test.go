package style

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/brand"
)

func testComposer() *Composer {
	return NewComposer(zerolog.Nop())
}

func TestCompose_TokensAppearAsCustomProperties(t *testing.T) {
	rec := testComposer().Compose(analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityMedium, nil)

	for _, token := range rec.Tokens {
		want := "--" + token.Name + ": " + token.Value + ";"
		if !strings.Contains(rec.CSS, want) {
			t.Errorf("CSS missing custom property %q", want)
		}
	}
}

func TestCompose_ComponentRules(t *testing.T) {
	rec := testComposer().Compose(analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityMedium, nil)

	for _, comp := range rec.Components {
		if !strings.Contains(rec.CSS, "."+comp.Name+" {") {
			t.Errorf("CSS missing rule block for component %s", comp.Name)
		}
		for _, variant := range comp.Variants {
			selector := "." + comp.Name + "--" + variant.Name + " {"
			if !strings.Contains(rec.CSS, selector) {
				t.Errorf("CSS missing variant selector %q", selector)
			}
		}
	}
}

func TestCompose_Deterministic(t *testing.T) {
	guidelines := &brand.Guidelines{
		Name:       "acme",
		Colors:     []string{"crimson", "charcoal"},
		Styles:     []string{"bold"},
		FontFamily: "Source Sans Pro, sans-serif",
	}

	first := testComposer().Compose(analysis.SlideEvidence, analysis.AudienceExecutive, analysis.DensityHigh, guidelines)
	second := testComposer().Compose(analysis.SlideEvidence, analysis.AudienceExecutive, analysis.DensityHigh, guidelines)

	if first.CSS != second.CSS {
		t.Error("CSS differs across identical calls")
	}
	if len(first.Tokens) != len(second.Tokens) {
		t.Errorf("token count differs: %d vs %d", len(first.Tokens), len(second.Tokens))
	}
}

func TestCompose_BrandFallback(t *testing.T) {
	rec := testComposer().Compose(analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityLow, nil)

	if rec.Theme != "corporate" {
		t.Errorf("theme = %s, want corporate", rec.Theme)
	}
	if rec.BrandAlignment != 0.8 {
		t.Errorf("brand alignment = %v, want 0.8 for fallback", rec.BrandAlignment)
	}

	guidelines := &brand.Guidelines{Name: "acme", FontFamily: "Georgia, serif"}
	rec = testComposer().Compose(analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityLow, guidelines)

	if rec.Theme != "acme" {
		t.Errorf("theme = %s, want acme", rec.Theme)
	}
	if rec.BrandAlignment != 0.9 {
		t.Errorf("brand alignment = %v, want 0.9 with guidelines", rec.BrandAlignment)
	}
	if !strings.Contains(rec.CSS, "--font-family-brand: Georgia, serif;") {
		t.Error("brand font family not propagated into CSS")
	}
}

func TestCompose_ContextTokens(t *testing.T) {
	tests := []struct {
		name      string
		slideType analysis.SlideType
		audience  analysis.Audience
		density   analysis.ContentDensity
		wantToken string
	}{
		{"executive emphasis", analysis.SlideHero, analysis.AudienceExecutive, analysis.DensityMedium, "color-emphasis"},
		{"technical mono", analysis.SlideHero, analysis.AudienceTechnical, analysis.DensityMedium, "font-family-code"},
		{"high density compact", analysis.SlideSolution, analysis.AudienceGeneral, analysis.DensityHigh, "spacing-compact"},
		{"low density spacious", analysis.SlideSolution, analysis.AudienceGeneral, analysis.DensityLow, "spacing-spacious"},
		{"hero gradient", analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityMedium, "gradient-hero"},
		{"evidence highlight", analysis.SlideEvidence, analysis.AudienceGeneral, analysis.DensityMedium, "color-highlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testComposer().Compose(tt.slideType, tt.audience, tt.density, nil)
			if !hasToken(rec.Tokens, tt.wantToken) {
				t.Errorf("token %s not composed", tt.wantToken)
			}
		})
	}
}

func TestCompose_ComponentOverrides(t *testing.T) {
	rec := testComposer().Compose(analysis.SlideComparison, analysis.AudienceGeneral, analysis.DensityMedium, nil)
	if !strings.Contains(rec.CSS, ".slide-content--columns {") {
		t.Error("comparison slide missing columns variant")
	}

	rec = testComposer().Compose(analysis.SlideTimeline, analysis.AudienceGeneral, analysis.DensityMedium, nil)
	if !strings.Contains(rec.CSS, ".slide-content--timeline {") {
		t.Error("timeline slide missing timeline variant")
	}
	if !strings.Contains(rec.CSS, "@media (max-width: 640px)") {
		t.Error("timeline slide missing mobile media block")
	}

	rec = testComposer().Compose(analysis.SlideEvidence, analysis.AudienceGeneral, analysis.DensityHigh, nil)
	if !strings.Contains(rec.CSS, ".slide-content--compact {") {
		t.Error("high density missing compact variant")
	}
}

func TestCompose_NoAccessibilityIssuesForCatalog(t *testing.T) {
	rec := testComposer().Compose(analysis.SlideHero, analysis.AudienceGeneral, analysis.DensityMedium, nil)
	if len(rec.AccessibilityIssues) != 0 {
		t.Errorf("unexpected accessibility issues: %v", rec.AccessibilityIssues)
	}
}

func TestValidateAccessibility(t *testing.T) {
	readable := []Token{
		{Name: "font-size-body", Value: "1rem", Category: CategoryTypography, Scope: ScopeTheme},
	}
	if issues := validateAccessibility(readable); len(issues) != 0 {
		t.Errorf("readable theme flagged: %v", issues)
	}

	tiny := []Token{
		{Name: "font-size-body", Value: "0.5rem", Category: CategoryTypography, Scope: ScopeTheme},
		{Name: "color-primary", Value: "#1a1a2e", Category: CategoryColor, Scope: ScopeTheme},
	}
	if issues := validateAccessibility(tiny); len(issues) != 1 {
		t.Errorf("tiny theme not flagged, issues = %v", issues)
	}
}

func TestParseRem(t *testing.T) {
	if rem, ok := parseRem("1.125rem"); !ok || rem != 1.125 {
		t.Errorf("parseRem(1.125rem) = %v, %v", rem, ok)
	}
	if _, ok := parseRem("16px"); ok {
		t.Error("parseRem accepted a px value")
	}
	if _, ok := parseRem("rem"); ok {
		t.Error("parseRem accepted a bare suffix")
	}
}

func hasToken(tokens []Token, name string) bool {
	for _, token := range tokens {
		if token.Name == name {
			return true
		}
	}
	return false
}
