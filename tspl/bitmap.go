package tspl

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// lumaThreshold separates ink from background when collapsing an icon to
// one bit per dot. Mid-gray and darker prints as black.
const lumaThreshold = 0x80

// Rasterize scales an image to the requested dot dimensions and converts
// it to the TSPL BITMAP payload: one bit per dot, rows padded to whole
// bytes, 0 = black (TSPL convention). It returns the payload and the row
// stride in bytes.
func Rasterize(src image.Image, widthDots, heightDots int) (data []byte, widthBytes int) {
	if widthDots < 1 {
		widthDots = 1
	}
	if heightDots < 1 {
		heightDots = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, widthDots, heightDots))
	xdraw.Draw(scaled, scaled.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	widthBytes = (widthDots + 7) / 8
	data = make([]byte, widthBytes*heightDots)

	for y := 0; y < heightDots; y++ {
		for x := 0; x < widthDots; x++ {
			c := color.GrayModel.Convert(scaled.At(x, y)).(color.Gray)
			idx := y*widthBytes + x/8
			bit := byte(0x80 >> (x % 8))
			if c.Y >= lumaThreshold {
				// White stays a set bit; ink clears it.
				data[idx] |= bit
			}
		}
	}
	return data, widthBytes
}
