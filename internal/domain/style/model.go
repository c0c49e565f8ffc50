package style

// TokenCategory classifies a design token.
type TokenCategory string

const (
	CategoryColor      TokenCategory = "color"
	CategoryTypography TokenCategory = "typography"
	CategorySpacing    TokenCategory = "spacing"
	CategoryShadow     TokenCategory = "shadow"
	CategoryBorder     TokenCategory = "border"
	CategoryAnimation  TokenCategory = "animation"
)

// TokenScope limits where a token applies.
type TokenScope string

const (
	ScopeGlobal    TokenScope = "global"
	ScopeComponent TokenScope = "component"
	ScopeTheme     TokenScope = "theme"
)

// Token is a named, typed style value usable across components.
type Token struct {
	Name     string        `json:"name"`
	Value    string        `json:"value"`
	Category TokenCategory `json:"category"`
	Scope    TokenScope    `json:"scope"`
}

// ComponentStyle is a component's base declarations plus named variants
// and per-breakpoint responsive overrides. Declaration order is
// preserved so CSS synthesis stays byte-deterministic.
type ComponentStyle struct {
	Name       string        `json:"name"`
	Base       []Declaration `json:"base"`
	Variants   []Variant     `json:"variants,omitempty"`
	Responsive []Responsive  `json:"responsive,omitempty"`
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Variant is a named modifier of a component, rendered with a
// `--variant` suffix.
type Variant struct {
	Name         string        `json:"name"`
	Declarations []Declaration `json:"declarations"`
}

// Responsive overrides a component under a named breakpoint.
type Responsive struct {
	Breakpoint   string        `json:"breakpoint"`
	Declarations []Declaration `json:"declarations"`
}

// Recommendation bundles the composed theme for one slide: the merged
// token list, component styles with request-specific overrides applied,
// the synthesized stylesheet, and scoring.
type Recommendation struct {
	Theme               string           `json:"theme"`
	Tokens              []Token          `json:"tokens"`
	Components          []ComponentStyle `json:"components"`
	CSS                 string           `json:"css"`
	Reasoning           string           `json:"reasoning"`
	BrandAlignment      float64          `json:"brand_alignment"`
	AccessibilityIssues []string         `json:"accessibility_issues,omitempty"`
}
