package analysis

import "strings"

// Audience identifies who the presentation is written for.
type Audience string

const (
	AudienceExecutive Audience = "executive"
	AudienceTechnical Audience = "technical"
	AudienceGeneral   Audience = "general"
)

// ParseAudience maps free-form input onto a known audience, defaulting
// to general for anything unrecognized.
func ParseAudience(value string) Audience {
	switch Audience(strings.ToLower(strings.TrimSpace(value))) {
	case AudienceExecutive:
		return AudienceExecutive
	case AudienceTechnical:
		return AudienceTechnical
	default:
		return AudienceGeneral
	}
}

// PresentationType classifies the overall deck.
type PresentationType string

const (
	PresentationBusiness    PresentationType = "business"
	PresentationTechnical   PresentationType = "technical"
	PresentationCreative    PresentationType = "creative"
	PresentationEducational PresentationType = "educational"
)

// ParsePresentationType defaults to business for unknown values.
func ParsePresentationType(value string) PresentationType {
	switch PresentationType(strings.ToLower(strings.TrimSpace(value))) {
	case PresentationTechnical:
		return PresentationTechnical
	case PresentationCreative:
		return PresentationCreative
	case PresentationEducational:
		return PresentationEducational
	default:
		return PresentationBusiness
	}
}

// NarrativeFlow names the storytelling structure the deck follows.
type NarrativeFlow string

const (
	FlowProblemSolution  NarrativeFlow = "problem_solution"
	FlowBeforeAfter      NarrativeFlow = "before_after"
	FlowFeatureBenefit   NarrativeFlow = "feature_benefit"
	FlowPyramidPrinciple NarrativeFlow = "pyramid_principle"
)

// ContentDensity is a coarse measure of how much information the deck
// must carry, derived from the cognitive load score.
type ContentDensity string

const (
	DensityLow    ContentDensity = "low"
	DensityMedium ContentDensity = "medium"
	DensityHigh   ContentDensity = "high"
)

// SlideType enumerates the slide archetypes the pipeline knows about.
// The analyzer only ever emits the six core types; comparison, process,
// workflow and timeline exist for callers that feed slides directly into
// the layout and style stages.
type SlideType string

const (
	SlideHero       SlideType = "hero"
	SlideProblem    SlideType = "problem"
	SlideSolution   SlideType = "solution"
	SlideEvidence   SlideType = "evidence"
	SlideAction     SlideType = "action"
	SlideSummary    SlideType = "summary"
	SlideComparison SlideType = "comparison"
	SlideProcess    SlideType = "process"
	SlideWorkflow   SlideType = "workflow"
	SlideTimeline   SlideType = "timeline"
)

// SlideRecommendation describes one slide to be generated. Priority is
// ascending: lower values come earlier in the deck.
type SlideRecommendation struct {
	Type          SlideType `json:"slide_type"`
	Priority      int       `json:"priority"`
	EstimatedTime int       `json:"estimated_time"`
	ContentPoints []string  `json:"content_points"`
}

// Result is the immutable output of content analysis, produced once per
// presentation request.
type Result struct {
	NarrativeFlow        NarrativeFlow         `json:"narrative_flow"`
	InformationHierarchy string                `json:"information_hierarchy"`
	CognitiveLoadScore   int                   `json:"cognitive_load_score"`
	KeyMessages          []string              `json:"key_messages"`
	AudienceAdaptation   Audience              `json:"audience_adaptation"`
	ContentDensity       ContentDensity        `json:"content_density"`
	SlideRecommendations []SlideRecommendation `json:"slide_recommendations"`
}
