package deck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/asset"
	"slidesmith/internal/domain/brand"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/domain/style"
	"slidesmith/internal/infrastructure/metrics"
	"slidesmith/internal/infrastructure/observability"
	"slidesmith/internal/utils/platformerrors"
	"slidesmith/utils/deckid"
)

// preferredStyles maps the presentation type onto the asset style
// filter fed to providers.
var preferredStyles = map[analysis.PresentationType]string{
	analysis.PresentationBusiness:    "professional",
	analysis.PresentationTechnical:   "technical",
	analysis.PresentationCreative:    "creative",
	analysis.PresentationEducational: "casual",
}

// Service drives the four-stage pipeline: analyze once, then per
// recommended slide curate assets, select a layout, compose a style and
// merge everything into a GeneratedSlide. Stage-local failures degrade
// output quality instead of failing the request; only malformed input
// surfaces as an error. The service keeps no cross-call state, so
// concurrent Generate calls need no synchronization.
type Service struct {
	cfg      *config.Config
	analyzer *analysis.Analyzer
	selector *layout.Selector
	curator  *asset.Curator
	composer *style.Composer
	book     BrandBook
	log      zerolog.Logger
}

func NewService(
	cfg *config.Config,
	analyzer *analysis.Analyzer,
	selector *layout.Selector,
	curator *asset.Curator,
	composer *style.Composer,
	book BrandBook,
	log zerolog.Logger,
) *Service {
	return &Service{
		cfg:      cfg,
		analyzer: analyzer,
		selector: selector,
		curator:  curator,
		composer: composer,
		book:     book,
		log:      log.With().Str("component", "deck-service").Logger(),
	}
}

// Generate produces a full deck from one request.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if len(req.Content) > s.cfg.MaxContentBytes {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("content exceeds the %d byte limit", s.cfg.MaxContentBytes), nil)
	}

	start := time.Now()
	id := deckid.New()

	ctx, span := observability.StartDeckSpan(ctx, id, string(req.Audience), string(req.PresentationType))
	defer span.End()

	result := s.analyzer.Analyze(req.Content, req.Audience)

	var guidelines *brand.Guidelines
	if s.book != nil {
		guidelines = s.book.Get(req.BrandGuidelines)
	}

	slides := make([]GeneratedSlide, 0, len(result.SlideRecommendations))
	for i, rec := range result.SlideRecommendations {
		slides = append(slides, s.assembleSlide(ctx, i+1, rec, result, req, guidelines))
	}

	deckResult := &Result{
		DeckID:   id,
		Slides:   slides,
		Markdown: joinDeck(slides),
		Analysis: result,
		Metadata: buildMetadata(slides, result),
	}
	deckResult.Quality = buildQuality(slides)
	deckResult.OptimizationSuggestions = suggest(deckResult, req)

	metrics.GenerationsTotal.WithLabelValues(string(req.Audience), string(req.PresentationType), "ok").Inc()
	metrics.SlidesGenerated.WithLabelValues(string(req.Audience)).Observe(float64(len(slides)))
	metrics.GenerationDuration.WithLabelValues(string(req.Audience)).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("deck_id", id).
		Int("slides", len(slides)).
		Float64("overall_score", deckResult.Quality.OverallScore).
		Msg("deck generated")

	return deckResult, nil
}

// assembleSlide runs the three per-slide stages and merges their
// outputs. Assets are curated first so the layout stage knows whether
// the slide has a visual to work with.
func (s *Service) assembleSlide(ctx context.Context, position int, rec analysis.SlideRecommendation, result analysis.Result, req Request, guidelines *brand.Guidelines) GeneratedSlide {
	slideID := fmt.Sprintf("slide_%d", position)

	ctx, span := observability.StartSlideSpan(ctx, slideID, string(rec.Type), rec.Priority)
	defer span.End()

	assets := s.curator.Curate(ctx, asset.Query{
		ContentContext:  req.Content,
		SlideType:       rec.Type,
		TargetAudience:  req.Audience,
		BrandGuidelines: guidelines,
		PreferredStyle:  preferredStyles[req.PresentationType],
	})

	layoutRec := s.selector.Recommend(rec.Type, result.ContentDensity, req.Audience, len(assets.Assets) > 0)
	styleRec := s.composer.Compose(rec.Type, req.Audience, result.ContentDensity, guidelines)

	title := titleFor(rec.Type)

	return GeneratedSlide{
		ID:            slideID,
		Type:          rec.Type,
		Title:         title,
		Content:       strings.Join(rec.ContentPoints, "\n"),
		Layout:        layoutRec,
		Assets:        assets,
		Style:         styleRec,
		Markdown:      renderSlide(rec.Type, title, rec.ContentPoints, assets, layoutRec, styleRec),
		EstimatedTime: rec.EstimatedTime,
	}
}

func buildMetadata(slides []GeneratedSlide, result analysis.Result) Metadata {
	var duration int
	var accessibility, compliance float64
	for _, slide := range slides {
		duration += slide.EstimatedTime
		accessibility += slideAccessibility(slide)
		compliance += slide.Style.BrandAlignment
	}

	meta := Metadata{
		TotalSlides:       len(slides),
		EstimatedDuration: duration,
		ComplexityScore:   result.CognitiveLoadScore,
	}
	if len(slides) > 0 {
		meta.AccessibilityScore = accessibility / float64(len(slides))
		meta.BrandCompliance = compliance / float64(len(slides))
	}
	return meta
}

// buildQuality scores the deck. Content quality rewards slides whose
// joined content exceeds 50 characters; visual appeal rewards slides
// carrying at least one curated asset.
func buildQuality(slides []GeneratedSlide) QualityMetrics {
	if len(slides) == 0 {
		return QualityMetrics{}
	}

	var content, visual, accessibility, alignment float64
	for _, slide := range slides {
		if len(slide.Content) > 50 {
			content += 0.9
		} else {
			content += 0.7
		}
		if len(slide.Assets.Assets) > 0 {
			visual += 0.9
		} else {
			visual += 0.6
		}
		accessibility += slideAccessibility(slide)
		alignment += slide.Style.BrandAlignment
	}

	n := float64(len(slides))
	q := QualityMetrics{
		ContentQuality: content / n,
		VisualAppeal:   visual / n,
		Accessibility:  accessibility / n,
		BrandAlignment: alignment / n,
	}
	q.OverallScore = clamp01((q.ContentQuality + q.VisualAppeal + q.Accessibility + q.BrandAlignment) / 4)
	return q
}

// suggest evaluates every optimization rule independently; any subset
// may fire.
func suggest(result *Result, req Request) []string {
	suggestions := []string{}

	if result.Quality.ContentQuality < 0.8 {
		suggestions = append(suggestions, "content is thin on several slides; add supporting detail or examples")
	}
	if result.Quality.VisualAppeal < 0.8 {
		suggestions = append(suggestions, "few slides carry visuals; add charts, images or icons to key slides")
	}
	if result.Quality.Accessibility < 0.9 {
		msg := "improve accessibility: increase contrast and provide alt text for all visuals"
		if len(req.AccessibilityRequirements) > 0 {
			msg += " (requested: " + strings.Join(req.AccessibilityRequirements, ", ") + ")"
		}
		suggestions = append(suggestions, msg)
	}
	if len(result.Slides) > 10 {
		suggestions = append(suggestions, "the deck runs long; consider condensing to 10 slides or fewer")
	}
	if req.TimeConstraintMinutes > 0 {
		budget := req.TimeConstraintMinutes * 60
		if result.Metadata.EstimatedDuration > budget {
			overage := result.Metadata.EstimatedDuration - budget
			suggestions = append(suggestions, fmt.Sprintf(
				"estimated duration %ds exceeds the %d minute budget by %ds; trim slides or talking points",
				result.Metadata.EstimatedDuration, req.TimeConstraintMinutes, overage))
		}
	}

	return suggestions
}

// slideAccessibility is the layout accessibility score, reduced by 0.1
// when the composed theme failed the readable typography check.
func slideAccessibility(slide GeneratedSlide) float64 {
	score := slide.Layout.AccessibilityScore
	if len(slide.Style.AccessibilityIssues) > 0 {
		score -= 0.1
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
