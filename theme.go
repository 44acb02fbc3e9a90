package wdf

import (
	"sort"
	"strings"

	"pkt.systems/wdf/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Context      Style
	Changed      Style
	Inserted     Style
	DeletionMark Style
}

// Theme provides named styles for diff rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Context:      style(p.Context),
		Changed:      style(p.Changed),
		Inserted:     style(p.Inserted),
		DeletionMark: style(palette.Strikethrough, p.DeletionMark),
	}
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(palette.PaletteCatppuccinMocha)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
