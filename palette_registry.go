package marginx

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/marginx/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteJQDefault,
	"jq":               ansi.PaletteJQDefault,
	"catppuccin-mocha": ansi.PaletteCatppuccinMocha,
	"doom-dracula":     ansi.PaletteDoomDracula,
	"gruvbox-light":    ansi.PaletteGruvboxLight,
	"monokai-vibrant":  ansi.PaletteMonokaiVibrant,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"default-16":       ansi.PaletteDefault, // pslog classic
	"classic":          ansi.PaletteDefault, // pslog classic
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolvePalette maps a palette name to its ColorPalette. An empty name and
// the special name "none" disable colouring.
func resolvePalette(name string) (ColorPalette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == paletteNoneName {
		return ColorPalette{}, nil
	}
	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("marginx: unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return colorPaletteFromAnsi(ap), nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	brackets := ap.Brackets
	if brackets == "" {
		brackets = ap.Nil
	}
	punct := ap.Punctuation
	if punct == "" {
		punct = brackets
	}
	return ColorPalette{
		Key:         ap.Key,
		String:      ap.String,
		Number:      ap.Num,
		True:        ap.Bool,
		False:       ap.Bool,
		Null:        ap.Nil,
		Brackets:    brackets,
		Punctuation: punct,
	}
}
