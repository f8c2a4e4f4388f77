package clock

import (
	"strings"
)

// GlyphHeight is the number of terminal rows each glyph occupies.
const GlyphHeight = 5

// font maps each clock rune to its block glyph, one string per row.
// Digits are six cells wide, the colon two.
var font = map[rune][GlyphHeight]string{
	'0': {
		" ████ ",
		"█    █",
		"█    █",
		"█    █",
		" ████ ",
	},
	'1': {
		"  ██  ",
		" ███  ",
		"  ██  ",
		"  ██  ",
		"██████",
	},
	'2': {
		" ████ ",
		"█    █",
		"   ██ ",
		"  █   ",
		"██████",
	},
	'3': {
		"█████ ",
		"     █",
		" ████ ",
		"     █",
		"█████ ",
	},
	'4': {
		"█    █",
		"█    █",
		"██████",
		"     █",
		"     █",
	},
	'5': {
		"██████",
		"█     ",
		"█████ ",
		"     █",
		"█████ ",
	},
	'6': {
		" ████ ",
		"█     ",
		"█████ ",
		"█    █",
		" ████ ",
	},
	'7': {
		"██████",
		"    █ ",
		"   █  ",
		"  █   ",
		"  █   ",
	},
	'8': {
		" ████ ",
		"█    █",
		" ████ ",
		"█    █",
		" ████ ",
	},
	'9': {
		" ████ ",
		"█    █",
		" █████",
		"     █",
		" ████ ",
	},
	':': {
		"  ",
		"██",
		"  ",
		"██",
		"  ",
	},
}

// blank is rendered for runes outside the font.
var blank = [GlyphHeight]string{
	"      ",
	"      ",
	"      ",
	"      ",
	"      ",
}

// Render draws text as large segment digits, one glyph per rune, with a
// one-column gap between glyphs. The result is GlyphHeight lines joined
// by newlines; every line has the same display width.
func Render(text string) string {
	rows := make([]string, GlyphHeight)
	for i := 0; i < GlyphHeight; i++ {
		parts := make([]string, 0, len(text))
		for _, r := range text {
			glyph, ok := font[r]
			if !ok {
				glyph = blank
			}
			parts = append(parts, glyph[i])
		}
		rows[i] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
