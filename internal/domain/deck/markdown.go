package deck

import (
	"fmt"
	"strings"

	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/asset"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/domain/style"
)

// slideTitles is the fixed title lookup per slide type. Titles are not
// derived from content.
var slideTitles = map[analysis.SlideType]string{
	analysis.SlideHero:     "Welcome",
	analysis.SlideProblem:  "The Challenge",
	analysis.SlideSolution: "Our Approach",
	analysis.SlideEvidence: "The Results",
	analysis.SlideAction:   "Next Steps",
	analysis.SlideSummary:  "Summary",
}

// titleFor returns the fixed deck title for a slide type, with a
// generic default for types outside the lookup table.
func titleFor(slideType analysis.SlideType) string {
	if title, ok := slideTitles[slideType]; ok {
		return title
	}
	return "Overview"
}

// renderSlide produces the markdown body for one slide. It is a pure
// function of the slide type, talking points, curated assets and
// synthesized CSS — no hidden state, no clocks.
func renderSlide(slideType analysis.SlideType, title string, points []string, assets asset.Recommendation, layoutRec layout.Recommendation, styleRec style.Recommendation) string {
	var b strings.Builder

	b.WriteString("<style>\n")
	b.WriteString(layoutRec.CSSFramework)
	b.WriteString(styleRec.CSS)
	b.WriteString("</style>\n\n")

	switch slideType {
	case analysis.SlideHero:
		fmt.Fprintf(&b, "# %s\n\n", title)
		for _, point := range points {
			fmt.Fprintf(&b, "**%s**\n\n", point)
		}
	case analysis.SlideProblem:
		fmt.Fprintf(&b, "## %s\n\n", title)
		writeBullets(&b, points)
	case analysis.SlideSolution:
		fmt.Fprintf(&b, "## %s\n\n", title)
		for i, point := range points {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
		b.WriteString("\n")
	case analysis.SlideEvidence:
		fmt.Fprintf(&b, "## %s\n\n", title)
		if len(points) > 0 {
			fmt.Fprintf(&b, "> %s\n\n", points[0])
			writeBullets(&b, points[1:])
		}
	case analysis.SlideAction:
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, point := range points {
			fmt.Fprintf(&b, "- [ ] %s\n", point)
		}
		b.WriteString("\n")
	default:
		fmt.Fprintf(&b, "## %s\n\n", title)
		writeBullets(&b, points)
	}

	if len(assets.Assets) > 0 {
		top := assets.Assets[0]
		fmt.Fprintf(&b, "![%s](%s)\n", top.AltText, top.URL)
	}

	return b.String()
}

func writeBullets(b *strings.Builder, points []string) {
	for _, point := range points {
		fmt.Fprintf(b, "- %s\n", point)
	}
	if len(points) > 0 {
		b.WriteString("\n")
	}
}

// joinDeck concatenates slide bodies into one document with horizontal
// rule separators, ready for an external markdown-to-slides renderer.
func joinDeck(slides []GeneratedSlide) string {
	bodies := make([]string, len(slides))
	for i, slide := range slides {
		bodies[i] = strings.TrimRight(slide.Markdown, "\n")
	}
	return strings.Join(bodies, "\n\n---\n\n") + "\n"
}
