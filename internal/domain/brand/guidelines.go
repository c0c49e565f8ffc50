package brand

import "strings"

// Guidelines describe a brand's visual identity as used by asset
// compliance checks and style composition.
type Guidelines struct {
	Name       string   `json:"name" yaml:"name"`
	Colors     []string `json:"colors" yaml:"colors"`
	Styles     []string `json:"styles" yaml:"styles"`
	FontFamily string   `json:"font_family" yaml:"font_family"`
}

// Corporate is the built-in fallback guideline set. Unknown brand
// identifiers resolve to it instead of failing the request.
func Corporate() *Guidelines {
	return &Guidelines{
		Name:       "corporate",
		Colors:     []string{"navy", "slate", "white"},
		Styles:     []string{"professional", "minimal", "clean"},
		FontFamily: "Inter, sans-serif",
	}
}

// MatchesToken reports whether the given tag matches any of the
// guideline's color or style tokens.
func (g *Guidelines) MatchesToken(tag string) bool {
	if g == nil {
		return false
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, c := range g.Colors {
		if tag == strings.ToLower(c) {
			return true
		}
	}
	for _, s := range g.Styles {
		if tag == strings.ToLower(s) {
			return true
		}
	}
	return false
}
