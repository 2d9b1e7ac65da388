package service

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadPreview reads a generated image back from disk and returns a thumbnail
// bounded by maxWidth x maxHeight. SVG files are rasterized first.
func LoadPreview(path string, maxWidth, maxHeight uint) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preview image: %w", err)
	}
	defer file.Close()

	var img image.Image
	if strings.ToLower(filepath.Ext(path)) == ".svg" {
		icon, err := oksvg.ReadIconStream(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse svg: %w", err)
		}

		width := int(icon.ViewBox.W)
		height := int(icon.ViewBox.H)
		if width <= 0 || height <= 0 {
			width, height = 256, 256
		}

		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
		icon.SetTarget(0, 0, float64(width), float64(height))
		icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
		img = rgba
	} else {
		img, _, err = image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode preview image: %w", err)
		}
	}

	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3), nil
}
