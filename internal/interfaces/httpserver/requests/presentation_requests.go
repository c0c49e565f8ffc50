package requests

// GeneratePresentation is the payload for deck generation.
type GeneratePresentation struct {
	Content                   string   `json:"content" binding:"required"`
	Audience                  string   `json:"audience"`
	PresentationType          string   `json:"presentation_type"`
	BrandGuidelines           string   `json:"brand_guidelines"`
	TimeConstraint            int      `json:"time_constraint"`
	AccessibilityRequirements []string `json:"accessibility_requirements"`
}
