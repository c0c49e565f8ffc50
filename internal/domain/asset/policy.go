package asset

import (
	"strings"

	"slidesmith/internal/domain/brand"
)

// sensitiveTerms disqualify an asset regardless of score.
var sensitiveTerms = []string{"religious", "political", "controversial"}

// ValidateBrandCompliance reports whether the asset fits the brand.
// With guidelines configured, any tag matching a guideline color or
// style token passes. Without a match (or without guidelines) the asset
// passes only when tagged professional or business.
func ValidateBrandCompliance(a Metadata, guidelines *brand.Guidelines) bool {
	if guidelines != nil {
		for _, tag := range a.Tags {
			if guidelines.MatchesToken(tag) {
				return true
			}
		}
	}
	for _, tag := range a.Tags {
		switch strings.ToLower(tag) {
		case "professional", "business":
			return true
		}
	}
	return false
}

// CheckCulturalAppropriateness returns false when the asset's alt text
// or tags mention a sensitive term, true otherwise. The content context
// is accepted for future locale-aware checks but does not affect the
// current policy.
func CheckCulturalAppropriateness(a Metadata, _ string) bool {
	alt := strings.ToLower(a.AltText)
	for _, term := range sensitiveTerms {
		if strings.Contains(alt, term) {
			return false
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return false
			}
		}
	}
	return true
}
