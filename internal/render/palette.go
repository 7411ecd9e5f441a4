package render

import "pricing-bot/internal/theme"

// Palette holds the markers used for one theme.
type Palette struct {
	Icon        string
	Selected    string
	Unselected  string
	CardStripe  string
	CardPlain   string
	TableStripe string
}

var palettes = map[theme.Theme]Palette{
	theme.Light: {
		Icon:        "☀️",
		Selected:    "🔘",
		Unselected:  "⚪",
		CardStripe:  "🔹",
		CardPlain:   "▫️",
		TableStripe: "·",
	},
	theme.Dark: {
		Icon:        "🌙",
		Selected:    "🔘",
		Unselected:  "⚫",
		CardStripe:  "▪️",
		CardPlain:   "▫️",
		TableStripe: "▪",
	},
}

// PaletteFor falls back to the light palette for unknown themes.
func PaletteFor(t theme.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[theme.Light]
}

// stripe alternates the card markers.

func (p Palette) stripe(i int) string {
	if i%2 == 0 {
		return p.CardStripe
	}
	return p.CardPlain
}
