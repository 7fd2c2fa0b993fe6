// Package widget defines the interface for pointer-driven screen widgets
// and the panel that hosts them inside a window.
package widget

import "image"

// Widget is a rectangular screen element that consumes pointer events and
// renders itself to an image. Event coordinates are widget-local, with the
// origin at the widget's top-left corner.
type Widget interface {
	// ID returns a unique identifier for this widget instance.
	ID() string

	// Resize informs the widget of its new pixel bounds.
	Resize(width, height int)

	// HandlePointerDown processes a press inside the widget.
	HandlePointerDown(ev PointerEvent)

	// HandlePointerMove processes pointer motion while the widget holds the
	// pointer grab.
	HandlePointerMove(ev PointerEvent)

	// HandlePointerUp processes the release ending the grab.
	HandlePointerUp(ev PointerEvent)

	// Render returns the widget's current image, sized to its bounds.
	Render() image.Image
}

// PointerEvent carries a widget-local pointer position and button state.
type PointerEvent struct {
	// X, Y are the pointer position relative to the widget origin.
	X int
	Y int

	// Primary is true while the primary (left) button is held.
	Primary bool
}

// Region is a normalized rectangle describing a widget's share of the
// window, each coordinate in the 0..1 range. It scales to pixel bounds
// whenever the window resizes.
type Region struct {
	X float64
	Y float64
	W float64
	H float64
}

// scale converts the normalized region to pixel bounds for a window size.
func (r Region) scale(width, height int) image.Rectangle {
	x0 := int(r.X * float64(width))
	y0 := int(r.Y * float64(height))
	x1 := int((r.X + r.W) * float64(width))
	y1 := int((r.Y + r.H) * float64(height))
	return image.Rect(x0, y0, x1, y1)
}
