// Package qr renders QR matrices as flat two-color images in PNG, JPEG or SVG.
package qr

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"

	"github.com/Sympa1/qr-code-gen/pkg/colorx"
)

const (
	// ModuleSize is the rendered edge length of one QR module in pixels.
	ModuleSize = 10
	// QuietZone is the blank margin around the matrix, in modules.
	QuietZone = 2

	jpegQuality = 95
)

type Config struct {
	Content    string
	Foreground color.Color
	Background color.Color
}

// Dimension returns the pixel edge length of the rendered image for a
// matrix of the given module count.
func Dimension(moduleCount int) int {
	return (moduleCount + 2*QuietZone) * ModuleSize
}

// modules encodes the content with the smallest QR version that fits at
// error correction level Medium and returns the raw module matrix.
func (c *Config) modules() ([][]bool, error) {
	code, err := qrcode.New(c.Content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	code.DisableBorder = true
	return code.Bitmap(), nil
}

// Size returns the pixel edge length the rendered image will have for the
// configured content.
func (c *Config) Size() (int, error) {
	matrix, err := c.modules()
	if err != nil {
		return 0, err
	}
	return Dimension(len(matrix)), nil
}

// RenderPNG encodes the content and returns the finished PNG bytes.
func (c *Config) RenderPNG() ([]byte, error) {
	dc, err := c.draw()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderJPEG encodes the content and returns the finished JPEG bytes.
func (c *Config) RenderJPEG() ([]byte, error) {
	dc, err := c.draw()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG encodes the content and returns a self-contained SVG document.
// One <rect> per dark module, pixel-aligned with the raster renderers so
// all three formats share the same dimension rule.
func (c *Config) RenderSVG() ([]byte, error) {
	matrix, err := c.modules()
	if err != nil {
		return nil, err
	}
	dim := Dimension(len(matrix))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		dim, dim, dim, dim,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`,
		dim, dim, colorx.Hex(c.Background)))

	fill := colorx.Hex(c.Foreground)
	for y, row := range matrix {
		for x, dark := range row {
			if dark {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
					(x+QuietZone)*ModuleSize, (y+QuietZone)*ModuleSize, ModuleSize, ModuleSize, fill))
			}
		}
	}

	sb.WriteString(`</svg>`)
	return []byte(sb.String()), nil
}

// draw renders the matrix onto a gg canvas: background cleared first, then
// every dark module as a filled square offset by the quiet zone.
func (c *Config) draw() (*gg.Context, error) {
	matrix, err := c.modules()
	if err != nil {
		return nil, err
	}

	dim := Dimension(len(matrix))
	dc := gg.NewContext(dim, dim)

	dc.SetColor(c.Background)
	dc.Clear()

	dc.SetColor(c.Foreground)
	for y, row := range matrix {
		for x, dark := range row {
			if dark {
				dc.DrawRectangle(
					float64((x+QuietZone)*ModuleSize),
					float64((y+QuietZone)*ModuleSize),
					ModuleSize,
					ModuleSize,
				)
			}
		}
	}
	dc.Fill()

	return dc, nil
}
