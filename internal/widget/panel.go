package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Panel lays widgets out inside a window, routes pointer events to them,
// and composites their images into a single frame.
//
// Pointer routing uses grab semantics: the widget under a press receives
// the press and then every move and the release of that drag, even when the
// pointer leaves its bounds. Moves without a preceding press go to the
// widget under the pointer.
type Panel struct {
	entries    []entry
	width      int
	height     int
	background color.Color

	// grabbed is the widget owning the current drag, nil outside a drag.
	grabbed *entry
}

type entry struct {
	widget Widget
	region Region
	bounds image.Rectangle
}

// NewPanel creates an empty panel with the given fill color for space not
// covered by any widget.
func NewPanel(background color.Color) *Panel {
	return &Panel{background: background}
}

// Add registers a widget at a normalized region. Widgets are hit-tested in
// registration order, so overlapping regions favor the earliest widget.
func (p *Panel) Add(w Widget, region Region) error {
	if w == nil {
		return fmt.Errorf("widget is required")
	}
	for _, e := range p.entries {
		if e.widget.ID() == w.ID() {
			return fmt.Errorf("widget %q already registered", w.ID())
		}
	}
	p.entries = append(p.entries, entry{widget: w, region: region})
	if p.width > 0 && p.height > 0 {
		e := &p.entries[len(p.entries)-1]
		e.bounds = e.region.scale(p.width, p.height)
		e.widget.Resize(e.bounds.Dx(), e.bounds.Dy())
	}
	return nil
}

// Resize recomputes every widget's pixel bounds for a new window size.
func (p *Panel) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	for i := range p.entries {
		e := &p.entries[i]
		e.bounds = e.region.scale(width, height)
		e.widget.Resize(e.bounds.Dx(), e.bounds.Dy())
	}
}

// PointerDown routes a press to the widget under the window-relative point
// and grabs the pointer for it.
func (p *Panel) PointerDown(x, y int) {
	e := p.entryAt(x, y)
	if e == nil {
		p.grabbed = nil
		return
	}
	p.grabbed = e
	e.widget.HandlePointerDown(PointerEvent{
		X:       x - e.bounds.Min.X,
		Y:       y - e.bounds.Min.Y,
		Primary: true,
	})
}

// PointerMove routes motion to the grabbed widget, or to the widget under
// the pointer when no drag is active.
func (p *Panel) PointerMove(x, y int, primary bool) {
	e := p.grabbed
	if e == nil {
		e = p.entryAt(x, y)
	}
	if e == nil {
		return
	}
	e.widget.HandlePointerMove(PointerEvent{
		X:       x - e.bounds.Min.X,
		Y:       y - e.bounds.Min.Y,
		Primary: primary,
	})
}

// PointerUp routes the release to the grabbed widget and ends the grab.
func (p *Panel) PointerUp(x, y int) {
	e := p.grabbed
	p.grabbed = nil
	if e == nil {
		return
	}
	e.widget.HandlePointerUp(PointerEvent{
		X: x - e.bounds.Min.X,
		Y: y - e.bounds.Min.Y,
	})
}

// Render composites every widget image into a window-sized frame.
func (p *Panel) Render() *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{p.background}, image.Point{}, draw.Src)

	for i := range p.entries {
		e := &p.entries[i]
		img := e.widget.Render()
		if img == nil {
			continue
		}
		draw.Draw(frame, e.bounds, img, img.Bounds().Min, draw.Over)
	}
	return frame
}

// Widgets returns the registered widgets in registration order.
func (p *Panel) Widgets() []Widget {
	out := make([]Widget, len(p.entries))
	for i := range p.entries {
		out[i] = p.entries[i].widget
	}
	return out
}

// Bounds returns the pixel bounds assigned to a widget, and whether the
// widget is registered.
func (p *Panel) Bounds(id string) (image.Rectangle, bool) {
	for i := range p.entries {
		if p.entries[i].widget.ID() == id {
			return p.entries[i].bounds, true
		}
	}
	return image.Rectangle{}, false
}

// entryAt returns the first entry whose bounds contain the point.
func (p *Panel) entryAt(x, y int) *entry {
	pt := image.Pt(x, y)
	for i := range p.entries {
		if pt.In(p.entries[i].bounds) {
			return &p.entries[i]
		}
	}
	return nil
}
