package layout

// The pattern catalog is process-wide constant data, shared across
// concurrent requests without synchronization.
var (
	heroCentered = Pattern{
		Name:                  "hero-centered",
		GridSystem:            GridFlexbox,
		VisualHierarchy:       HierarchyCenterFocused,
		LayoutType:            "hero",
		ResponsiveBreakpoints: []string{"mobile", "tablet", "desktop"},
		BestFor:               []string{"openings", "statements", "calls-to-action"},
	}

	contentSplit = Pattern{
		Name:                  "content-split",
		GridSystem:            GridTwelveColumn,
		VisualHierarchy:       HierarchyZPattern,
		LayoutType:            "split",
		ResponsiveBreakpoints: []string{"mobile", "tablet", "desktop"},
		BestFor:               []string{"narratives", "text-with-visual", "problem-framing"},
	}

	informationGrid = Pattern{
		Name:                  "information-grid",
		GridSystem:            GridCSSGrid,
		VisualHierarchy:       HierarchyFPattern,
		LayoutType:            "grid",
		ResponsiveBreakpoints: []string{"tablet", "desktop"},
		BestFor:               []string{"data-heavy", "dashboards", "evidence"},
	}

	comparisonTable = Pattern{
		Name:                  "comparison-table",
		GridSystem:            GridTwelveColumn,
		VisualHierarchy:       HierarchyLeftAligned,
		LayoutType:            "comparison",
		ResponsiveBreakpoints: []string{"tablet", "desktop"},
		BestFor:               []string{"alternatives", "pricing", "tradeoffs"},
	}

	processFlow = Pattern{
		Name:                  "process-flow",
		GridSystem:            GridFlexbox,
		VisualHierarchy:       HierarchyZPattern,
		LayoutType:            "process",
		ResponsiveBreakpoints: []string{"mobile", "tablet", "desktop"},
		BestFor:               []string{"workflows", "timelines", "step-by-step"},
	}
)

// Catalog returns every known layout pattern.
func Catalog() []Pattern {
	return []Pattern{heroCentered, contentSplit, informationGrid, comparisonTable, processFlow}
}
