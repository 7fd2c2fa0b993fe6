package stick

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/frayle/stickpad/internal/joystick"
)

// Axis hint icons drawn under the knob.
//
//go:embed icons/arrows-all.svg
var iconArrowsAllSVG string

//go:embed icons/arrows-x.svg
var iconArrowsXSVG string

//go:embed icons/arrows-y.svg
var iconArrowsYSVG string

// svgRenderSize is the resolution icons are rasterized at before scaling
// down to the stick radius.
const svgRenderSize = 128

// Gradient alpha at the center and the edge of the stick circle.
const (
	gradientCenterAlpha = 255
	gradientEdgeAlpha   = 224
)

// Palette holds the colors of one stick widget.
type Palette struct {
	// Base fills the stick circle (radial gradient from center to edge).
	Base color.RGBA
	// Knob fills the draggable knob.
	Knob color.RGBA
	// Hint tints the axis arrow icons.
	Hint color.RGBA
}

// DefaultPalette returns the reference color scheme.
func DefaultPalette() Palette {
	return Palette{
		Base: color.RGBA{R: 0x00, G: 0x4d, B: 0x99, A: 0xff},
		Knob: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Hint: color.RGBA{R: 0xcc, G: 0xdd, B: 0xee, A: 0xff},
	}
}

// ParseHexColor parses a "#rrggbb" string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q must be in #rrggbb form", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q must be in #rrggbb form", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// renderer rasterizes the stick widget. The gradient base and the scaled
// axis icons are rebuilt on resize and reused across frames.
type renderer struct {
	palette Palette
	base    *image.RGBA
	icons   map[joystick.Mode]image.Image
}

func newRenderer(palette Palette) *renderer {
	return &renderer{palette: palette}
}

// rebuild regenerates the cached gradient base and icons for new bounds.
func (r *renderer) rebuild(width, height, centerX, centerY, radius int) {
	r.base = image.NewRGBA(image.Rect(0, 0, width, height))
	r.icons = map[joystick.Mode]image.Image{}
	if radius <= 0 {
		return
	}

	r.paintGradient(centerX, centerY, radius)

	for mode, svg := range map[joystick.Mode]string{
		joystick.AllAxis:   iconArrowsAllSVG,
		joystick.XAxisOnly: iconArrowsXSVG,
		joystick.YAxisOnly: iconArrowsYSVG,
	} {
		src := renderSVGIcon(svg, svgRenderSize, r.palette.Hint)
		scaled := image.NewRGBA(image.Rect(0, 0, radius, radius))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)
		r.icons[mode] = scaled
	}
}

// paintGradient fills the stick circle with a radial gradient of the base
// color, fading from full alpha at the center to a softer edge.
func (r *renderer) paintGradient(centerX, centerY, radius int) {
	bounds := r.base.Bounds()
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			if !(image.Pt(x, y).In(bounds)) {
				continue
			}
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			dist := math.Hypot(dx, dy)
			if dist > float64(radius) {
				continue
			}
			t := dist / float64(radius)
			alpha := gradientCenterAlpha + t*(gradientEdgeAlpha-gradientCenterAlpha)
			r.base.Set(x, y, color.NRGBA{
				R: r.palette.Base.R,
				G: r.palette.Base.G,
				B: r.palette.Base.B,
				A: uint8(alpha),
			})
		}
	}
}

// compose draws the current frame: cached base, axis hint icon, knob.
func (r *renderer) compose(ctrl *joystick.Controller) *image.RGBA {
	frame := image.NewRGBA(r.base.Bounds())
	draw.Copy(frame, image.Point{}, r.base, r.base.Bounds(), draw.Src, nil)

	if icon, ok := r.icons[ctrl.Mode()]; ok {
		cx, cy := ctrl.Center()
		size := icon.Bounds().Dx()
		target := image.Rect(cx-size/2, cy-size/2, cx-size/2+size, cy-size/2+size)
		draw.Draw(frame, target, icon, icon.Bounds().Min, draw.Over)
	}

	kx, ky := ctrl.KnobPosition()
	fillCircle(frame, kx, ky, ctrl.KnobRadius(), r.palette.Knob)
	return frame
}

// fillCircle paints a solid circle clipped to the image bounds.
func fillCircle(img *image.RGBA, centerX, centerY, radius int, c color.Color) {
	bounds := img.Bounds()
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			if !(image.Pt(x, y).In(bounds)) {
				continue
			}
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}

// renderSVGIcon renders an SVG string to an image with the given size and
// color.
func renderSVGIcon(svgContent string, size int, iconColor color.Color) image.Image {
	r, g, b, _ := iconColor.RGBA()
	hexColor := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	svgContent = strings.ReplaceAll(svgContent, "currentColor", hexColor)

	icon, err := oksvg.ReadIconStream(strings.NewReader(svgContent))
	if err != nil {
		log.Printf("Failed to parse SVG: %v", err)
		return image.NewRGBA(image.Rect(0, 0, size, size))
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.SetTarget(0, 0, float64(size), float64(size))

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img
}
