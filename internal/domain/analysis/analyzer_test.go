package analysis

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(zerolog.Nop())
}

func TestAnalyze_CognitiveLoadAndDensity(t *testing.T) {
	tests := []struct {
		name        string
		words       int
		wantLoad    int
		wantDensity ContentDensity
	}{
		{name: "empty content", words: 0, wantLoad: 0, wantDensity: DensityLow},
		{name: "short content", words: 120, wantLoad: 2, wantDensity: DensityLow},
		{name: "load boundary four", words: 200, wantLoad: 4, wantDensity: DensityLow},
		{name: "just above four", words: 250, wantLoad: 5, wantDensity: DensityMedium},
		{name: "load boundary seven", words: 350, wantLoad: 7, wantDensity: DensityMedium},
		{name: "just above seven", words: 400, wantLoad: 8, wantDensity: DensityHigh},
		{name: "load capped at ten", words: 5000, wantLoad: 10, wantDensity: DensityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			result := testAnalyzer().Analyze(content, AudienceGeneral)

			if result.CognitiveLoadScore != tt.wantLoad {
				t.Errorf("cognitive load = %d, want %d", result.CognitiveLoadScore, tt.wantLoad)
			}
			if result.ContentDensity != tt.wantDensity {
				t.Errorf("density = %s, want %s", result.ContentDensity, tt.wantDensity)
			}
		})
	}
}

func TestAnalyze_NarrativeFlowByAudience(t *testing.T) {
	if flow := testAnalyzer().Analyze("content", AudienceExecutive).NarrativeFlow; flow != FlowPyramidPrinciple {
		t.Errorf("executive flow = %s, want %s", flow, FlowPyramidPrinciple)
	}
	if flow := testAnalyzer().Analyze("content", AudienceTechnical).NarrativeFlow; flow != FlowProblemSolution {
		t.Errorf("technical flow = %s, want %s", flow, FlowProblemSolution)
	}
}

func TestAnalyze_KeyMessages(t *testing.T) {
	content := "The key insight is automation. Short. This sentence has no trigger words at all. " +
		"The main benefit is speed! Is the outcome measurable? One. Another critical point here. " +
		"A fifth important sentence makes the cut. The final value statement misses out."

	messages := testAnalyzer().Analyze(content, AudienceGeneral).KeyMessages

	if len(messages) != 5 {
		t.Fatalf("got %d key messages, want 5: %v", len(messages), messages)
	}
	if messages[0] != "The key insight is automation" {
		t.Errorf("first message = %q", messages[0])
	}
	for _, msg := range messages {
		if len(msg) <= 10 {
			t.Errorf("message %q shorter than minimum length", msg)
		}
	}
}

func TestAnalyze_SlideSkeletonAlwaysHeroFirstActionLast(t *testing.T) {
	contents := []string{
		"",
		"plain text without any trigger words whatsoever",
		"a problem and a solution with great results and benefits",
		strings.Repeat("filler ", 600),
	}

	for _, content := range contents {
		recs := testAnalyzer().Analyze(content, AudienceGeneral).SlideRecommendations
		if len(recs) < 2 {
			t.Fatalf("content %q: got %d recommendations, want at least hero and action", content, len(recs))
		}
		if recs[0].Type != SlideHero {
			t.Errorf("first slide = %s, want hero", recs[0].Type)
		}
		if recs[len(recs)-1].Type != SlideAction {
			t.Errorf("last slide = %s, want action", recs[len(recs)-1].Type)
		}
		for i, rec := range recs {
			if rec.Priority != i+1 {
				t.Errorf("slide %d priority = %d, want %d", i, rec.Priority, i+1)
			}
		}
	}
}

func TestAnalyze_ConditionalSlides(t *testing.T) {
	content := "Our current process has a major problem with onboarding delays. " +
		"The solution is automated scheduling, resulting in a 40% benefit to throughput."

	result := testAnalyzer().Analyze(content, AudienceGeneral)

	want := []SlideType{SlideHero, SlideProblem, SlideSolution, SlideEvidence, SlideAction}
	if len(result.SlideRecommendations) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(result.SlideRecommendations), len(want))
	}
	for i, rec := range result.SlideRecommendations {
		if rec.Type != want[i] {
			t.Errorf("slide %d = %s, want %s", i, rec.Type, want[i])
		}
	}
	if result.ContentDensity != DensityLow {
		t.Errorf("density = %s, want low", result.ContentDensity)
	}
}

func TestParseAudience_Defaults(t *testing.T) {
	tests := []struct {
		in   string
		want Audience
	}{
		{"executive", AudienceExecutive},
		{"  Technical ", AudienceTechnical},
		{"general", AudienceGeneral},
		{"", AudienceGeneral},
		{"board-of-directors", AudienceGeneral},
	}
	for _, tt := range tests {
		if got := ParseAudience(tt.in); got != tt.want {
			t.Errorf("ParseAudience(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
