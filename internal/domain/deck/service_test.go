package deck

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/asset"
	"slidesmith/internal/domain/brand"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/domain/style"
	"slidesmith/internal/infrastructure/assetsource"
	"slidesmith/internal/utils/platformerrors"
	"slidesmith/utils/deckid"
)

const sampleContent = "Our current process has a major problem with onboarding delays. " +
	"The solution is automated scheduling, resulting in a 40% benefit to throughput."

type stubBook struct {
	guidelines map[string]*brand.Guidelines
}

func (b *stubBook) Get(name string) *brand.Guidelines {
	return b.guidelines[name]
}

func testService(t *testing.T, sources ...asset.Source) *Service {
	t.Helper()

	cfg := &config.Config{
		MaxContentBytes:    256 * 1024,
		AssetSourceTimeout: time.Second,
	}
	log := zerolog.Nop()

	if sources == nil {
		sources = []asset.Source{assetsource.NewStaticSource()}
	}

	return NewService(
		cfg,
		analysis.NewAnalyzer(log),
		layout.NewSelector(log),
		asset.NewCurator(sources, cfg.AssetSourceTimeout, log),
		style.NewComposer(log),
		&stubBook{guidelines: map[string]*brand.Guidelines{
			"acme": {Name: "acme", Colors: []string{"crimson"}, Styles: []string{"bold"}, FontFamily: "Georgia, serif"},
		}},
		log,
	)
}

func TestGenerate_FullPipeline(t *testing.T) {
	result, err := testService(t).Generate(context.Background(), Request{
		Content:          sampleContent,
		Audience:         analysis.AudienceGeneral,
		PresentationType: analysis.PresentationBusiness,
	})
	require.NoError(t, err)

	assert.True(t, deckid.IsValid(result.DeckID), "deck id %q not valid", result.DeckID)

	wantTypes := []analysis.SlideType{
		analysis.SlideHero, analysis.SlideProblem, analysis.SlideSolution,
		analysis.SlideEvidence, analysis.SlideAction,
	}
	require.Len(t, result.Slides, len(wantTypes))
	for i, slide := range result.Slides {
		assert.Equal(t, wantTypes[i], slide.Type, "slide %d type", i)
	}

	assert.Equal(t, len(wantTypes), result.Metadata.TotalSlides)
	assert.Equal(t, 30+45+60+45+30, result.Metadata.EstimatedDuration)
	assert.NotEmpty(t, result.Markdown)
}

func TestGenerate_PositionalSlideIDs(t *testing.T) {
	result, err := testService(t).Generate(context.Background(), Request{
		Content:  sampleContent,
		Audience: analysis.AudienceGeneral,
	})
	require.NoError(t, err)

	want := []string{"slide_1", "slide_2", "slide_3", "slide_4", "slide_5"}
	require.Len(t, result.Slides, len(want))
	for i, slide := range result.Slides {
		assert.Equal(t, want[i], slide.ID)
	}
}

func TestGenerate_IdenticalInputYieldsIdenticalMarkdown(t *testing.T) {
	req := Request{
		Content:          sampleContent,
		Audience:         analysis.AudienceExecutive,
		PresentationType: analysis.PresentationBusiness,
		BrandGuidelines:  "acme",
	}

	svc := testService(t)
	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	// Deck ids are unique per call; everything derived from the input
	// must match byte for byte.
	assert.NotEqual(t, first.DeckID, second.DeckID)
	assert.Equal(t, first.Markdown, second.Markdown)
	assert.Equal(t, first.Quality, second.Quality)
	assert.Equal(t, first.Metadata, second.Metadata)
}

func TestGenerate_ContentTooLarge(t *testing.T) {
	svc := testService(t)
	svc.cfg.MaxContentBytes = 10

	_, err := svc.Generate(context.Background(), Request{
		Content:  "this is more than ten bytes",
		Audience: analysis.AudienceGeneral,
	})
	require.Error(t, err)

	var perr *platformerrors.PlatformError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, platformerrors.ErrorTypeValidation, perr.Type)
}

func TestGenerate_OverallScoreIsMeanOfSubScores(t *testing.T) {
	result, err := testService(t).Generate(context.Background(), Request{
		Content:  sampleContent,
		Audience: analysis.AudienceGeneral,
	})
	require.NoError(t, err)

	q := result.Quality
	mean := (q.ContentQuality + q.VisualAppeal + q.Accessibility + q.BrandAlignment) / 4
	assert.InDelta(t, mean, q.OverallScore, 1e-9)

	for name, score := range map[string]float64{
		"content":       q.ContentQuality,
		"visual":        q.VisualAppeal,
		"accessibility": q.Accessibility,
		"brand":         q.BrandAlignment,
		"overall":       q.OverallScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0, "%s below zero", name)
		assert.LessOrEqual(t, score, 1.0, "%s above one", name)
	}
}

func TestGenerate_TimeConstraintSuggestion(t *testing.T) {
	// The sample deck runs 210 seconds; a one minute budget overflows.
	result, err := testService(t).Generate(context.Background(), Request{
		Content:               sampleContent,
		Audience:              analysis.AudienceGeneral,
		TimeConstraintMinutes: 1,
	})
	require.NoError(t, err)

	found := false
	for _, s := range result.OptimizationSuggestions {
		if strings.Contains(s, "exceeds the 1 minute budget") {
			found = true
		}
	}
	assert.True(t, found, "no duration suggestion in %v", result.OptimizationSuggestions)
}

type emptySource struct{}

func (emptySource) Name() string { return "empty" }

func (emptySource) Search(context.Context, []string, asset.StyleFilter) ([]asset.Metadata, error) {
	return nil, nil
}

func TestGenerate_VisualSuggestionWithoutAssets(t *testing.T) {
	result, err := testService(t, emptySource{}).Generate(context.Background(), Request{
		Content:  sampleContent,
		Audience: analysis.AudienceGeneral,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.6, result.Quality.VisualAppeal, 1e-9)

	found := false
	for _, s := range result.OptimizationSuggestions {
		if strings.Contains(s, "few slides carry visuals") {
			found = true
		}
	}
	assert.True(t, found, "no visual suggestion in %v", result.OptimizationSuggestions)
}

func TestSlideAccessibility_ThemePenalty(t *testing.T) {
	slide := GeneratedSlide{
		Layout: layout.Recommendation{AccessibilityScore: 0.9},
	}
	assert.InDelta(t, 0.9, slideAccessibility(slide), 1e-9)

	slide.Style = style.Recommendation{AccessibilityIssues: []string{"typography too small"}}
	assert.InDelta(t, 0.8, slideAccessibility(slide), 1e-9)

	slide.Layout.AccessibilityScore = 0.05
	assert.InDelta(t, 0.0, slideAccessibility(slide), 1e-9, "penalty result is clamped at zero")
}

func TestGenerate_UnknownBrandFallsBack(t *testing.T) {
	result, err := testService(t).Generate(context.Background(), Request{
		Content:         sampleContent,
		Audience:        analysis.AudienceGeneral,
		BrandGuidelines: "no-such-brand",
	})
	require.NoError(t, err)

	for _, slide := range result.Slides {
		assert.Equal(t, "corporate", slide.Style.Theme)
		assert.Equal(t, 0.8, slide.Style.BrandAlignment)
	}
}
