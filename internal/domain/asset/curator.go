package asset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"slidesmith/internal/domain/analysis"
)

const (
	maxSearchTerms   = 10
	maxSelected      = 5
	maxFallbacks     = 3
	minTermLength    = 4
	defaultTimeout   = 5 * time.Second
	semanticWeight   = 0.7
	complianceWeight = 0.3
)

var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "from": {}, "they": {},
	"will": {}, "what": {}, "when": {}, "make": {}, "like": {}, "time": {},
	"just": {}, "about": {}, "into": {}, "over": {}, "such": {}, "than": {},
	"then": {}, "them": {}, "these": {}, "some": {}, "would": {}, "there": {},
	"their": {}, "been": {}, "were": {}, "which": {}, "where": {}, "while": {},
}

// businessVocabulary gets priority when filling search term slots.
var businessVocabulary = []string{
	"growth", "revenue", "strategy", "team", "innovation", "market",
	"customer", "product", "process", "data", "technology", "success",
	"performance", "efficiency",
}

// styleFilters resolves a preferred style to provider hints. Unknown
// styles resolve to professional.
var styleFilters = map[string]StyleFilter{
	"professional": {
		Style:       "professional",
		Keywords:    []string{"corporate", "clean", "minimal"},
		Colors:      []string{"blue", "gray", "white"},
		Orientation: "landscape",
	},
	"casual": {
		Style:       "casual",
		Keywords:    []string{"friendly", "colorful", "candid"},
		Colors:      []string{"orange", "teal"},
		Orientation: "landscape",
	},
	"technical": {
		Style:       "technical",
		Keywords:    []string{"diagram", "schematic", "blueprint"},
		Colors:      []string{"blue", "slate"},
		Orientation: "landscape",
	},
	"creative": {
		Style:       "creative",
		Keywords:    []string{"abstract", "vibrant", "artistic"},
		Colors:      []string{"purple", "magenta"},
		Orientation: "portrait",
	},
}

// Curator ranks assets from the configured sources for one slide.
// Sources are queried concurrently; a slow or failing source
// contributes nothing and never fails the slide.
type Curator struct {
	sources []Source
	timeout time.Duration
	log     zerolog.Logger
}

func NewCurator(sources []Source, timeout time.Duration, log zerolog.Logger) *Curator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Curator{
		sources: sources,
		timeout: timeout,
		log:     log.With().Str("component", "asset-curator").Logger(),
	}
}

// Curate queries every source, scores and filters the candidates, and
// returns a ranked shortlist with fallbacks. It always succeeds: with
// no sources or only failures the recommendation is simply empty.
func (c *Curator) Curate(ctx context.Context, query Query) Recommendation {
	terms := ExtractSearchTerms(query.ContentContext)
	filter := ResolveStyleFilter(query.PreferredStyle)

	candidates := c.fanOut(ctx, terms, filter)

	for i := range candidates {
		candidates[i].SemanticScore = scoreCandidate(candidates[i], query)
		candidates[i].BrandCompliance = ValidateBrandCompliance(candidates[i], query.BrandGuidelines)
		candidates[i].CulturalAppropriateness = CheckCulturalAppropriateness(candidates[i], query.ContentContext)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SemanticScore > candidates[j].SemanticScore
	})

	selected := make([]Metadata, 0, maxSelected)
	rest := make([]Metadata, 0, len(candidates))
	for _, cand := range candidates {
		if len(selected) < maxSelected && cand.BrandCompliance && cand.CulturalAppropriateness {
			selected = append(selected, cand)
			continue
		}
		rest = append(rest, cand)
	}

	fallbacks := rest
	if len(fallbacks) > maxFallbacks {
		fallbacks = fallbacks[:maxFallbacks]
	}

	return Recommendation{
		Assets:          selected,
		Reasoning:       reasoning(selected, query),
		ConfidenceScore: confidence(selected),
		FallbackOptions: fallbacks,
	}
}

// fanOut issues one search per source with an individual deadline.
// Results are collected per source slot so candidate order stays
// deterministic regardless of goroutine scheduling.
func (c *Curator) fanOut(ctx context.Context, terms []string, filter StyleFilter) []Metadata {
	results := make([][]Metadata, len(c.sources))

	var wg sync.WaitGroup
	for i, src := range c.sources {
		wg.Add(1)
		go func(slot int, src Source) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			found, err := src.Search(callCtx, terms, filter)
			if err != nil {
				c.log.Warn().Err(err).Str("source", src.Name()).Msg("asset source failed, contributing no candidates")
				return
			}
			results[slot] = found
		}(i, src)
	}
	wg.Wait()

	var merged []Metadata
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	return merged
}

// scoreCandidate adjusts the source-reported semantic score with fixed
// slide and audience bonuses, clamped to [0,1].
func scoreCandidate(cand Metadata, query Query) float64 {
	score := cand.SemanticScore

	if query.SlideType == analysis.SlideHero && cand.Type == TypeImage {
		score += 0.10
	}
	if query.SlideType == analysis.SlideProcess && cand.Type == TypeIcon {
		score += 0.15
	}
	if query.TargetAudience == analysis.AudienceExecutive && hasTag(cand, "professional") {
		score += 0.10
	}
	if cand.License == LicensePremium && !strings.Contains(strings.ToLower(query.ContentContext), "premium") {
		score -= 0.05
	}

	return clamp01(score)
}

func hasTag(cand Metadata, tag string) bool {
	for _, t := range cand.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// confidence blends the mean semantic score of the selection with the
// fraction of selected assets that are brand compliant.
func confidence(selected []Metadata) float64 {
	if len(selected) == 0 {
		return 0
	}
	var semantic float64
	var compliant int
	for _, cand := range selected {
		semantic += cand.SemanticScore
		if cand.BrandCompliance {
			compliant++
		}
	}
	mean := semantic / float64(len(selected))
	rate := float64(compliant) / float64(len(selected))
	return clamp01(semanticWeight*mean + complianceWeight*rate)
}

func reasoning(selected []Metadata, query Query) string {
	if len(selected) == 0 {
		return fmt.Sprintf("no compliant assets found for the %s slide; consider supplying custom visuals", query.SlideType)
	}

	types := map[Type]struct{}{}
	sources := map[string]struct{}{}
	for _, cand := range selected {
		types[cand.Type] = struct{}{}
		sources[cand.Source] = struct{}{}
	}

	return fmt.Sprintf("selected %d %s asset(s) from %s for the %s slide, matched to a %s audience",
		len(selected), joinKeys(types), joinKeys(sources), query.SlideType, query.TargetAudience)
}

func joinKeys[K ~string](set map[K]struct{}) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return strings.Join(keys, "/")
}

// ExtractSearchTerms tokenizes the content into at most ten lowercase
// search terms. Business vocabulary found in the content fills slots
// first; the remaining slots take content words in original order.
func ExtractSearchTerms(content string) []string {
	words := tokenize(content)

	seen := map[string]struct{}{}
	terms := make([]string, 0, maxSearchTerms)

	add := func(word string) {
		if len(terms) == maxSearchTerms {
			return
		}
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		terms = append(terms, word)
	}

	inContent := map[string]struct{}{}
	for _, w := range words {
		inContent[w] = struct{}{}
	}
	for _, vocab := range businessVocabulary {
		if _, ok := inContent[vocab]; ok {
			add(vocab)
		}
	}
	for _, w := range words {
		add(w)
	}

	return terms
}

func tokenize(content string) []string {
	fields := strings.Fields(strings.ToLower(content))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, field)
		if len(cleaned) < minTermLength {
			continue
		}
		if _, stop := stopWords[cleaned]; stop {
			continue
		}
		words = append(words, cleaned)
	}
	return words
}

// ResolveStyleFilter maps a preferred style onto provider hints,
// defaulting to professional for unknown values.
func ResolveStyleFilter(style string) StyleFilter {
	if filter, ok := styleFilters[strings.ToLower(strings.TrimSpace(style))]; ok {
		return filter
	}
	return styleFilters["professional"]
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
