// Package ogimage draws the social share card shown when the site is linked.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/venra/site/content"
)

// Share cards use the Open Graph recommended size.
const (
	Width   = 1200
	Height  = 630
	Quality = 85
)

var (
	background = color.RGBA{R: 5, G: 150, B: 105, A: 255}
	accent     = color.RGBA{R: 4, G: 120, B: 87, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	muted      = color.RGBA{R: 209, G: 250, B: 229, A: 255}
)

// Card is the text printed on the share card.
type Card struct {
	Brand    string
	Title    string
	Subtitle string
}

// FromSite builds the card from the landing page hero.
func FromSite(site *content.Site) Card {
	return Card{Brand: "Venra", Title: site.Hero.Title, Subtitle: site.Hero.Subtitle}
}

// Render draws the card and encodes it as WebP.
func Render(card Card) ([]byte, error) {
	img := Draw(card)
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

// Draw lays out the card on a Width x Height canvas.
func Draw(card Card) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	// Footer band
	band := image.Rect(0, Height-90, Width, Height)
	draw.Draw(img, band, &image.Uniform{accent}, image.Point{}, draw.Src)

	y := 90
	y = drawLines(img, []string{card.Brand}, 80, y, 4, white)
	y = drawLines(img, wrap(card.Title, 34), 80, y+40, 4, white)
	drawLines(img, wrap(card.Subtitle, 60), 80, y+30, 2, muted)
	return img
}

// drawLines draws each line with the 7x13 bitmap face scaled up by scale and
// returns the y below the last line.
func drawLines(dst *image.RGBA, lines []string, x, y, scale int, c color.Color) int {
	face := basicfont.Face7x13
	for _, line := range lines {
		if line == "" {
			continue
		}
		w := utf8.RuneCountInString(line) * face.Width
		h := face.Height
		small := image.NewRGBA(image.Rect(0, 0, w, h))
		d := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		d.DrawString(line)

		target := image.Rect(x, y, x+w*scale, y+h*scale).Intersect(dst.Bounds())
		xdraw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), xdraw.Over, nil)
		y += h*scale + scale*4
	}
	return y
}

// wrap breaks text into lines of at most width bytes on word boundaries.
func wrap(text string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
