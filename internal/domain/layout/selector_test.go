package layout

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"slidesmith/internal/domain/analysis"
)

func testSelector() *Selector {
	return NewSelector(zerolog.Nop())
}

func TestRecommend_RuleTable(t *testing.T) {
	tests := []struct {
		name        string
		slideType   analysis.SlideType
		density     analysis.ContentDensity
		hasVisuals  bool
		wantPattern string
		wantConf    float64
	}{
		{"hero", analysis.SlideHero, analysis.DensityLow, false, "hero-centered", 0.95},
		{"problem with visuals", analysis.SlideProblem, analysis.DensityMedium, true, "content-split", 0.90},
		{"problem without visuals", analysis.SlideProblem, analysis.DensityMedium, false, "hero-centered", 0.80},
		{"solution with visuals", analysis.SlideSolution, analysis.DensityLow, true, "content-split", 0.90},
		{"dense evidence", analysis.SlideEvidence, analysis.DensityHigh, false, "information-grid", 0.85},
		{"light evidence", analysis.SlideEvidence, analysis.DensityLow, false, "content-split", 0.80},
		{"comparison", analysis.SlideComparison, analysis.DensityMedium, false, "comparison-table", 0.90},
		{"process", analysis.SlideProcess, analysis.DensityLow, false, "process-flow", 0.88},
		{"workflow", analysis.SlideWorkflow, analysis.DensityLow, false, "process-flow", 0.88},
		{"unknown dense default", analysis.SlideType("quote"), analysis.DensityHigh, false, "information-grid", 0.70},
		{"unknown light default", analysis.SlideType("quote"), analysis.DensityLow, false, "content-split", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testSelector().Recommend(tt.slideType, tt.density, analysis.AudienceGeneral, tt.hasVisuals)

			if rec.Pattern.Name != tt.wantPattern {
				t.Errorf("pattern = %s, want %s", rec.Pattern.Name, tt.wantPattern)
			}
			if rec.ConfidenceScore != tt.wantConf {
				t.Errorf("confidence = %v, want %v", rec.ConfidenceScore, tt.wantConf)
			}
			if rec.ConfidenceScore < 0 || rec.ConfidenceScore > 1 {
				t.Errorf("confidence %v out of [0,1]", rec.ConfidenceScore)
			}
			if rec.AccessibilityScore < 0 || rec.AccessibilityScore > 1 {
				t.Errorf("accessibility %v out of [0,1]", rec.AccessibilityScore)
			}
			if rec.Reason == "" {
				t.Error("reason is empty")
			}
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	first := testSelector().Recommend(analysis.SlideEvidence, analysis.DensityHigh, analysis.AudienceExecutive, true)
	second := testSelector().Recommend(analysis.SlideEvidence, analysis.DensityHigh, analysis.AudienceExecutive, true)

	if first.Pattern.Name != second.Pattern.Name {
		t.Errorf("pattern differs across identical calls: %s vs %s", first.Pattern.Name, second.Pattern.Name)
	}
	if first.CSSFramework != second.CSSFramework {
		t.Error("CSS differs across identical calls")
	}
}

func TestAccessibilityScore(t *testing.T) {
	// hero-centered: mobile breakpoint (+0.1), center-focused hierarchy
	// (no bonus), hero layout for executive (+0.05).
	rec := testSelector().Recommend(analysis.SlideHero, analysis.DensityLow, analysis.AudienceExecutive, false)
	if want := 0.95; rec.AccessibilityScore != want {
		t.Errorf("executive hero accessibility = %v, want %v", rec.AccessibilityScore, want)
	}

	// content-split: mobile (+0.1) and Z-pattern (+0.1) bonuses.
	rec = testSelector().Recommend(analysis.SlideProblem, analysis.DensityLow, analysis.AudienceGeneral, true)
	if want := 1.0; rec.AccessibilityScore != want {
		t.Errorf("content-split accessibility = %v, want %v", rec.AccessibilityScore, want)
	}

	// information-grid: no mobile breakpoint, F-pattern (+0.1) only.
	rec = testSelector().Recommend(analysis.SlideEvidence, analysis.DensityHigh, analysis.AudienceGeneral, false)
	if want := 0.9; rec.AccessibilityScore != want {
		t.Errorf("information-grid accessibility = %v, want %v", rec.AccessibilityScore, want)
	}
}

func TestCSSFramework_PerGridSystem(t *testing.T) {
	tests := []struct {
		slideType analysis.SlideType
		density   analysis.ContentDensity
		contains  string
	}{
		{analysis.SlideHero, analysis.DensityLow, "flex-direction: column"},
		{analysis.SlideComparison, analysis.DensityLow, "repeat(12, 1fr)"},
		{analysis.SlideEvidence, analysis.DensityHigh, "grid-template-areas"},
	}

	for _, tt := range tests {
		rec := testSelector().Recommend(tt.slideType, tt.density, analysis.AudienceGeneral, false)
		if !strings.Contains(rec.CSSFramework, tt.contains) {
			t.Errorf("%s CSS missing %q:\n%s", tt.slideType, tt.contains, rec.CSSFramework)
		}
	}
}

func TestCatalog_Immutable(t *testing.T) {
	patterns := Catalog()
	if len(patterns) != 5 {
		t.Fatalf("catalog has %d patterns, want 5", len(patterns))
	}
	for _, p := range patterns {
		if p.Name == "" || p.GridSystem == "" || p.VisualHierarchy == "" {
			t.Errorf("incomplete catalog entry: %+v", p)
		}
	}
}
