package style

// baseTokens is the process-wide brand token catalog. Composition
// copies it and layers request-specific tokens on top; the catalog
// itself is never mutated.
func baseTokens() []Token {
	return []Token{
		{Name: "color-primary", Value: "#1a1a2e", Category: CategoryColor, Scope: ScopeGlobal},
		{Name: "color-secondary", Value: "#16213e", Category: CategoryColor, Scope: ScopeGlobal},
		{Name: "color-accent", Value: "#0f72e8", Category: CategoryColor, Scope: ScopeGlobal},
		{Name: "color-surface", Value: "#ffffff", Category: CategoryColor, Scope: ScopeGlobal},
		{Name: "color-muted", Value: "#64748b", Category: CategoryColor, Scope: ScopeGlobal},
		{Name: "font-family-base", Value: "Inter, sans-serif", Category: CategoryTypography, Scope: ScopeGlobal},
		{Name: "font-size-base", Value: "1rem", Category: CategoryTypography, Scope: ScopeGlobal},
		{Name: "font-size-title", Value: "2.25rem", Category: CategoryTypography, Scope: ScopeGlobal},
		{Name: "font-size-caption", Value: "0.875rem", Category: CategoryTypography, Scope: ScopeGlobal},
		{Name: "spacing-sm", Value: "0.5rem", Category: CategorySpacing, Scope: ScopeGlobal},
		{Name: "spacing-md", Value: "1rem", Category: CategorySpacing, Scope: ScopeGlobal},
		{Name: "spacing-lg", Value: "2rem", Category: CategorySpacing, Scope: ScopeGlobal},
		{Name: "shadow-card", Value: "0 2px 8px rgba(15, 23, 42, 0.12)", Category: CategoryShadow, Scope: ScopeGlobal},
		{Name: "border-radius", Value: "0.5rem", Category: CategoryBorder, Scope: ScopeGlobal},
		{Name: "transition-base", Value: "all 150ms ease", Category: CategoryAnimation, Scope: ScopeGlobal},
	}
}

// baseComponents are the fixed component styles every theme starts
// from: slide header, slide content, call to action and data table.
func baseComponents() []ComponentStyle {
	return []ComponentStyle{
		{
			Name: "slide-header",
			Base: []Declaration{
				{Property: "font-size", Value: "var(--font-size-title)"},
				{Property: "color", Value: "var(--color-primary)"},
				{Property: "margin-bottom", Value: "var(--spacing-md)"},
				{Property: "font-weight", Value: "700"},
			},
			Variants: []Variant{
				{Name: "subtle", Declarations: []Declaration{
					{Property: "color", Value: "var(--color-muted)"},
					{Property: "font-weight", Value: "500"},
				}},
			},
			Responsive: []Responsive{
				{Breakpoint: "mobile", Declarations: []Declaration{
					{Property: "font-size", Value: "1.5rem"},
				}},
			},
		},
		{
			Name: "slide-content",
			Base: []Declaration{
				{Property: "font-size", Value: "var(--font-size-base)"},
				{Property: "color", Value: "var(--color-secondary)"},
				{Property: "line-height", Value: "1.6"},
			},
			Variants: []Variant{
				{Name: "lead", Declarations: []Declaration{
					{Property: "font-size", Value: "1.25rem"},
				}},
			},
		},
		{
			Name: "call-to-action",
			Base: []Declaration{
				{Property: "background", Value: "var(--color-accent)"},
				{Property: "color", Value: "var(--color-surface)"},
				{Property: "padding", Value: "var(--spacing-sm) var(--spacing-lg)"},
				{Property: "border-radius", Value: "var(--border-radius)"},
				{Property: "transition", Value: "var(--transition-base)"},
			},
			Variants: []Variant{
				{Name: "ghost", Declarations: []Declaration{
					{Property: "background", Value: "transparent"},
					{Property: "color", Value: "var(--color-accent)"},
					{Property: "border", Value: "1px solid var(--color-accent)"},
				}},
			},
		},
		{
			Name: "data-table",
			Base: []Declaration{
				{Property: "width", Value: "100%"},
				{Property: "border-collapse", Value: "collapse"},
				{Property: "box-shadow", Value: "var(--shadow-card)"},
			},
			Variants: []Variant{
				{Name: "striped", Declarations: []Declaration{
					{Property: "background", Value: "var(--color-surface)"},
				}},
			},
			Responsive: []Responsive{
				{Breakpoint: "mobile", Declarations: []Declaration{
					{Property: "display", Value: "block"},
					{Property: "overflow-x", Value: "auto"},
				}},
			},
		},
	}
}

// breakpointWidths maps breakpoint names to media query bounds.
var breakpointWidths = map[string]string{
	"mobile": "max-width: 640px",
	"tablet": "max-width: 1024px",
}

// utilityCSS is the fixed utility class tail appended to every
// synthesized stylesheet.
const utilityCSS = `.u-text-center { text-align: center; }
.u-flex-row { display: flex; flex-direction: row; gap: var(--spacing-md); }
.u-mt-lg { margin-top: var(--spacing-lg); }
.u-muted { color: var(--color-muted); }
`
