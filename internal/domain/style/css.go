package style

import (
	"fmt"
	"strconv"
	"strings"
)

// minReadableRem is the smallest typography size considered readable.
const minReadableRem = 0.875

// synthesize renders the stylesheet: tokens as custom properties, one
// rule block per component (base, then variants, then media blocks),
// followed by the fixed utility classes. The fold preserves input
// order, so identical inputs produce byte-identical output.
func synthesize(tokens []Token, components []ComponentStyle) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, token := range tokens {
		fmt.Fprintf(&b, "  --%s: %s;\n", token.Name, token.Value)
	}
	b.WriteString("}\n\n")

	for _, comp := range components {
		writeRule(&b, "."+comp.Name, comp.Base)

		for _, variant := range comp.Variants {
			writeRule(&b, fmt.Sprintf(".%s--%s", comp.Name, variant.Name), variant.Declarations)
		}

		for _, resp := range comp.Responsive {
			width, ok := breakpointWidths[resp.Breakpoint]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "@media (%s) {\n", width)
			b.WriteString("  ." + comp.Name + " {\n")
			for _, decl := range resp.Declarations {
				fmt.Fprintf(&b, "    %s: %s;\n", decl.Property, decl.Value)
			}
			b.WriteString("  }\n}\n\n")
		}
	}

	b.WriteString(utilityCSS)
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []Declaration) {
	b.WriteString(selector + " {\n")
	for _, decl := range decls {
		fmt.Fprintf(b, "  %s: %s;\n", decl.Property, decl.Value)
	}
	b.WriteString("}\n\n")
}

// validateAccessibility scans typography tokens for at least one size
// at or above the minimum readable threshold. The returned issue list
// is empty when the theme passes.
func validateAccessibility(tokens []Token) []string {
	for _, token := range tokens {
		if token.Category != CategoryTypography {
			continue
		}
		if rem, ok := parseRem(token.Value); ok && rem >= minReadableRem {
			return nil
		}
	}
	return []string{fmt.Sprintf("no typography token at or above %.3frem; body copy may be hard to read", minReadableRem)}
}

func parseRem(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasSuffix(value, "rem") {
		return 0, false
	}
	rem, err := strconv.ParseFloat(strings.TrimSuffix(value, "rem"), 64)
	if err != nil {
		return 0, false
	}
	return rem, true
}
