package analysis

import (
	"strings"

	"github.com/rs/zerolog"
)

// importanceVocabulary marks sentences worth keeping as key messages.
var importanceVocabulary = []string{
	"key", "important", "critical", "essential", "primary", "main",
	"result", "outcome", "benefit", "advantage", "value", "impact",
}

const (
	maxKeyMessages    = 5
	maxCognitiveLoad  = 10
	wordsPerLoadPoint = 50
	minSentenceLength = 10
)

// Analyzer derives a structured analysis from raw presentation content.
// It is pure: identical inputs always produce identical results, and it
// never fails — degenerate input yields low-confidence defaults.
type Analyzer struct {
	log zerolog.Logger
}

func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		log: log.With().Str("component", "content-analyzer").Logger(),
	}
}

// Analyze turns free-form content plus an audience into an ordered set
// of slide recommendations and deck-level signals.
func (a *Analyzer) Analyze(content string, audience Audience) Result {
	wordCount := len(strings.Fields(content))

	load := wordCount / wordsPerLoadPoint
	if load > maxCognitiveLoad {
		load = maxCognitiveLoad
	}

	result := Result{
		NarrativeFlow:        narrativeFor(audience),
		InformationHierarchy: hierarchyFor(audience),
		CognitiveLoadScore:   load,
		KeyMessages:          extractKeyMessages(content),
		AudienceAdaptation:   audience,
		ContentDensity:       densityFor(load),
	}
	result.SlideRecommendations = recommendSlides(content, result.KeyMessages)

	a.log.Debug().
		Int("word_count", wordCount).
		Int("cognitive_load", load).
		Str("density", string(result.ContentDensity)).
		Int("slides", len(result.SlideRecommendations)).
		Msg("content analyzed")

	return result
}

// densityFor maps cognitive load to a density bucket. Thresholds are
// fixed at >7 and >4.
func densityFor(load int) ContentDensity {
	switch {
	case load > 7:
		return DensityHigh
	case load > 4:
		return DensityMedium
	default:
		return DensityLow
	}
}

func narrativeFor(audience Audience) NarrativeFlow {
	if audience == AudienceExecutive {
		return FlowPyramidPrinciple
	}
	return FlowProblemSolution
}

func hierarchyFor(audience Audience) string {
	if audience == AudienceExecutive {
		return "conclusions-first"
	}
	return "context-first"
}

// extractKeyMessages keeps the first five sentences that are longer
// than ten characters and mention at least one importance term,
// preserving original order.
func extractKeyMessages(content string) []string {
	messages := []string{}
	for _, sentence := range splitSentences(content) {
		if len(sentence) <= minSentenceLength {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, term := range importanceVocabulary {
			if strings.Contains(lower, term) {
				messages = append(messages, sentence)
				break
			}
		}
		if len(messages) == maxKeyMessages {
			break
		}
	}
	return messages
}

func splitSentences(content string) []string {
	parts := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// recommendSlides emits the deck skeleton: a hero slide always opens,
// conditional slides follow in fixed order when their trigger keywords
// appear, and an action slide always closes. Conditional slides carry
// fixed template talking points rather than text extracted from the
// content.
func recommendSlides(content string, keyMessages []string) []SlideRecommendation {
	lower := strings.ToLower(content)
	priority := 1

	next := func() int {
		p := priority
		priority++
		return p
	}

	heroPoints := []string{"Set the stage", "State the core promise"}
	if len(keyMessages) > 0 {
		heroPoints = keyMessages[:min(2, len(keyMessages))]
	}

	recs := []SlideRecommendation{{
		Type:          SlideHero,
		Priority:      next(),
		EstimatedTime: 30,
		ContentPoints: heroPoints,
	}}

	if strings.Contains(lower, "problem") || strings.Contains(lower, "challenge") {
		recs = append(recs, SlideRecommendation{
			Type:          SlideProblem,
			Priority:      next(),
			EstimatedTime: 45,
			ContentPoints: []string{
				"Describe the current pain point",
				"Quantify its cost",
				"Explain why it persists",
			},
		})
	}

	if strings.Contains(lower, "solution") || strings.Contains(lower, "approach") {
		recs = append(recs, SlideRecommendation{
			Type:          SlideSolution,
			Priority:      next(),
			EstimatedTime: 60,
			ContentPoints: []string{
				"Introduce the proposed approach",
				"Walk through how it works",
				"Call out what makes it different",
			},
		})
	}

	if strings.Contains(lower, "result") || strings.Contains(lower, "benefit") {
		recs = append(recs, SlideRecommendation{
			Type:          SlideEvidence,
			Priority:      next(),
			EstimatedTime: 45,
			ContentPoints: []string{
				"Present the supporting data",
				"Highlight the headline metric",
				"Tie results back to the promise",
			},
		})
	}

	recs = append(recs, SlideRecommendation{
		Type:          SlideAction,
		Priority:      next(),
		EstimatedTime: 30,
		ContentPoints: []string{
			"Restate the recommendation",
			"Agree on next steps",
			"Assign owners and dates",
		},
	})

	return recs
}
