package render

import "image/color"

// Palette returns the default colors indexed by cell state: a dark dead
// cell, two bright rotations, and three warm reflections.
func Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0x10, G: 0x10, B: 0x14, A: 0xff}, // 0: dead
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // 1: rotation 120
		{R: 0x7f, G: 0xd4, B: 0xff, A: 0xff}, // 2: rotation 240
		{R: 0xff, G: 0xb3, B: 0x47, A: 0xff}, // 3: reflection 0
		{R: 0xff, G: 0x5c, B: 0x8a, A: 0xff}, // 4: reflection 1
		{R: 0x9d, G: 0x6b, B: 0xff, A: 0xff}, // 5: reflection 2
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
