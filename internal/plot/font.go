package plot

import (
	"image/color"
	"math"
	"unicode/utf8"
)

const (
	glyphCols    = 5
	glyphRows    = 7
	glyphAdvance = 6
)

// glyphs holds 5x7 bitmaps, one row per byte, most significant of the low
// five bits on the left.
var glyphs = map[rune][glyphRows]uint8{
	'0': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'2': {0b01110, 0b10001, 0b00001, 0b00110, 0b01000, 0b10000, 0b11111},
	'3': {0b11111, 0b00010, 0b00100, 0b00110, 0b00001, 0b10001, 0b01110},
	'4': {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110},
	'6': {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
	'8': {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100},
	'.': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b01100, 0b01100},
	'-': {0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000},
	'K': {0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001},
	'M': {0b10001, 0b11011, 0b10101, 0b10001, 0b10001, 0b10001, 0b10001},
	'e': {0b00000, 0b01110, 0b10001, 0b11111, 0b10000, 0b10001, 0b01110},
	':': {0b00000, 0b01100, 0b01100, 0b00000, 0b01100, 0b01100, 0b00000},
	'S': {0b01110, 0b10001, 0b10000, 0b01110, 0b00001, 0b10001, 0b01110},
	'u': {0b00000, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01111},
	'b': {0b10000, 0b10000, 0b11110, 0b10001, 0b10001, 0b10001, 0b11110},
	'p': {0b00000, 0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000},
	'l': {0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'o': {0b00000, 0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	't': {0b00100, 0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00011},
}

// DrawChar draws one glyph with its top-left corner at (x, y). Each lit bit
// becomes a square block of int(max(scale, 1)) pixels. Unsupported
// characters, space included, draw nothing.
func (c *Canvas) DrawChar(x, y int, ch rune, col color.RGBA, scale float64) {
	pattern, ok := glyphs[ch]
	if !ok {
		return
	}
	block := int(math.Max(scale, 1))

	for row, bits := range pattern {
		for colIdx := 0; colIdx < glyphCols; colIdx++ {
			if (bits>>(glyphCols-1-colIdx))&1 == 0 {
				continue
			}
			for dy := 0; dy < block; dy++ {
				for dx := 0; dx < block; dx++ {
					c.Set(x+colIdx*block+dx, y+row*block+dy, col)
				}
			}
		}
	}
}

// DrawText draws text left to right with a fixed advance of int(6*scale)
func (c *Canvas) DrawText(x, y int, text string, col color.RGBA, scale float64) {
	advance := charAdvance(scale)
	i := 0
	for _, ch := range text {
		c.DrawChar(x+i*advance, y, ch, col, scale)
		i++
	}
}

// TextWidth returns the advance width of text at scale
func TextWidth(text string, scale float64) int {
	return utf8.RuneCountInString(text) * charAdvance(scale)
}

func charAdvance(scale float64) int {
	return int(glyphAdvance * scale)
}

func charHeight(scale float64) int {
	return int(glyphRows * scale)
}
