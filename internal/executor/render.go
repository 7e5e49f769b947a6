package executor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const frameSize = 240

// writeMockFrame renders the placeholder screenshot for one step: a flat
// grey frame labelled with the step ordinal.
func writeMockFrame(path string, ordinal int) error {
	img := image.NewRGBA(image.Rect(0, 0, frameSize, frameSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: 220}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(40, 130),
	}
	d.DrawString(fmt.Sprintf("Step %d", ordinal))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
