package seed

import (
	"image"
	"image/color"
	"image/draw"
)

const avatarSize = 256

// avatar describes one bundled portrait.
type avatar struct {
	name string
	bg   color.RGBA
	skin color.RGBA
	hair color.RGBA
	long bool
}

var avatars = []avatar{
	{"man_1", color.RGBA{0x4a, 0x6f, 0xa5, 0xff}, color.RGBA{0xf1, 0xc2, 0x9e, 0xff}, color.RGBA{0x3b, 0x2a, 0x1d, 0xff}, false},
	{"man_2", color.RGBA{0x2e, 0x8b, 0x57, 0xff}, color.RGBA{0xd9, 0xa0, 0x7a, 0xff}, color.RGBA{0x1c, 0x1c, 0x1c, 0xff}, false},
	{"man_3", color.RGBA{0x8b, 0x45, 0x13, 0xff}, color.RGBA{0xa8, 0x6b, 0x4b, 0xff}, color.RGBA{0x0f, 0x0f, 0x0f, 0xff}, false},
	{"man_4", color.RGBA{0x70, 0x80, 0x90, 0xff}, color.RGBA{0xf5, 0xd0, 0xb5, 0xff}, color.RGBA{0xb8, 0x86, 0x0b, 0xff}, false},
	{"man_5", color.RGBA{0x55, 0x3c, 0x7b, 0xff}, color.RGBA{0x8d, 0x55, 0x24, 0xff}, color.RGBA{0x2b, 0x1b, 0x0e, 0xff}, false},
	{"man_6", color.RGBA{0xb2, 0x22, 0x22, 0xff}, color.RGBA{0xea, 0xc0, 0x86, 0xff}, color.RGBA{0x80, 0x80, 0x80, 0xff}, false},
	{"woman_1", color.RGBA{0xdb, 0x70, 0x93, 0xff}, color.RGBA{0xf3, 0xcf, 0xb3, 0xff}, color.RGBA{0x8b, 0x5a, 0x2b, 0xff}, true},
	{"woman_2", color.RGBA{0x46, 0x82, 0xb4, 0xff}, color.RGBA{0xc6, 0x86, 0x42, 0xff}, color.RGBA{0x1a, 0x11, 0x0b, 0xff}, true},
	{"woman_3", color.RGBA{0xda, 0xa5, 0x20, 0xff}, color.RGBA{0xff, 0xdb, 0xac, 0xff}, color.RGBA{0xa5, 0x2a, 0x2a, 0xff}, true},
	{"woman_4", color.RGBA{0x20, 0xb2, 0xaa, 0xff}, color.RGBA{0x9c, 0x66, 0x44, 0xff}, color.RGBA{0x25, 0x17, 0x0d, 0xff}, true},
	{"woman_5", color.RGBA{0x93, 0x70, 0xdb, 0xff}, color.RGBA{0xe8, 0xbe, 0xac, 0xff}, color.RGBA{0xf0, 0xe6, 0x8c, 0xff}, true},
}

// render paints a flat head-and-shoulders portrait.
func (a avatar) render() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: a.bg}, image.Point{}, draw.Src)

	c := avatarSize / 2
	if a.long {
		fillEllipse(img, c, c-10, 70, 95, a.hair)
	}
	fillEllipse(img, c, avatarSize+20, 100, 80, darken(a.bg))
	fillEllipse(img, c, c-20, 55, 65, a.skin)
	fillEllipse(img, c, c-70, 58, 28, a.hair)
	return img
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.RGBA) {
	b := img.Bounds()
	for y := max(cy-ry, b.Min.Y); y < min(cy+ry, b.Max.Y); y++ {
		for x := max(cx-rx, b.Min.X); x < min(cx+rx, b.Max.X); x++ {
			dx, dy := float64(x-cx)/float64(rx), float64(y-cy)/float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
