package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// parseHexColor parses a color in the form #rrggbb. Returns the stock blue
// if the parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x3c, 0x78, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// tintImage builds a translucent overlay tile used for hover and selection
// highlights.
func tintImage(size int, col color.RGBA, alpha uint8) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(color.RGBA{R: col.R, G: col.G, B: col.B, A: alpha})
	return img
}

// outlineImage builds a 1px hollow rectangle texture stretched by the
// caller to marquee size.
func outlinePixel(col color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(col)
	return img
}
