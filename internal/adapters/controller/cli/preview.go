package cli

import (
	"fmt"
	"image"
	"io"
)

// writePreview draws a thumbnail as terminal block characters, two columns
// per pixel to keep the aspect ratio roughly square.
func writePreview(w io.Writer, img image.Image) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isDark(img, x, y) {
				fmt.Fprint(w, "██")
			} else {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	luminance := 299*r + 587*g + 114*b // scaled by 1000
	return luminance < 1000*0x8000
}
