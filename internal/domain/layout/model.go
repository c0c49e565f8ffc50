package layout

// GridSystem names the grid the pattern lays content out on.
type GridSystem string

const (
	GridTwelveColumn GridSystem = "12-column"
	GridEightColumn  GridSystem = "8-column"
	GridFlexbox      GridSystem = "flexbox"
	GridCSSGrid      GridSystem = "css-grid"
)

// VisualHierarchy names the scanning pattern the layout guides the eye
// along.
type VisualHierarchy string

const (
	HierarchyZPattern      VisualHierarchy = "Z-pattern"
	HierarchyFPattern      VisualHierarchy = "F-pattern"
	HierarchyCenterFocused VisualHierarchy = "center-focused"
	HierarchyLeftAligned   VisualHierarchy = "left-aligned"
)

// Pattern is a static catalog entry describing a reusable slide layout
// independent of content.
type Pattern struct {
	Name                  string          `json:"name"`
	GridSystem            GridSystem      `json:"grid_system"`
	VisualHierarchy       VisualHierarchy `json:"visual_hierarchy"`
	LayoutType            string          `json:"layout_type"`
	ResponsiveBreakpoints []string        `json:"responsive_breakpoints"`
	BestFor               []string        `json:"best_for"`
}

// SupportsBreakpoint reports whether the pattern declares the named
// responsive breakpoint.
func (p Pattern) SupportsBreakpoint(name string) bool {
	for _, bp := range p.ResponsiveBreakpoints {
		if bp == name {
			return true
		}
	}
	return false
}

// Recommendation is the selector's verdict for one slide.
type Recommendation struct {
	Pattern            Pattern `json:"pattern"`
	ConfidenceScore    float64 `json:"confidence_score"`
	AccessibilityScore float64 `json:"accessibility_score"`
	Reason             string  `json:"reason"`
	CSSFramework       string  `json:"css_framework"`
}
