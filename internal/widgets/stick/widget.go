// Package stick provides the joystick widget: the joystick controller core
// wired to a rasterizer and exposed through the panel widget interface.
package stick

import (
	"image"

	"github.com/frayle/stickpad/internal/joystick"
	"github.com/frayle/stickpad/internal/widget"
)

// Options configures a new stick widget.
type Options struct {
	// Mode is the axis restriction, AllAxis by default.
	Mode joystick.Mode
	// Sticky disables the back-to-zero release behavior.
	Sticky bool
	// Palette overrides the reference colors when non-zero.
	Palette Palette
}

// Widget is an on-screen joystick implementing widget.Widget. Frames are
// cached and regenerated only after the controller requests a redraw.
type Widget struct {
	id   string
	ctrl *joystick.Controller
	ren  *renderer

	frame *image.RGBA
	dirty bool

	pressed      func()
	valueChanged func(x, y int8)
}

var _ widget.Widget = (*Widget)(nil)

// New creates a stick widget with the given identifier.
func New(id string, opts Options) *Widget {
	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}

	w := &Widget{
		id:   id,
		ctrl: joystick.New(),
		ren:  newRenderer(palette),
	}
	w.ctrl.SetMode(opts.Mode)
	w.ctrl.SetBackToZero(!opts.Sticky)
	w.ctrl.SetRedrawFunc(func() { w.dirty = true })
	w.ctrl.SetPressedFunc(func() {
		if w.pressed != nil {
			w.pressed()
		}
	})
	w.ctrl.SetValueChangedFunc(func(x, y int8) {
		if w.valueChanged != nil {
			w.valueChanged(x, y)
		}
	})
	return w
}

// ID returns the widget identifier.
func (w *Widget) ID() string {
	return w.id
}

// Resize updates controller geometry and rebuilds the cached base image.
func (w *Widget) Resize(width, height int) {
	w.ctrl.Resize(width, height)
	cx, cy := w.ctrl.Center()
	w.ren.rebuild(width, height, cx, cy, w.ctrl.StickRadius())
	w.dirty = true
}

// HandlePointerDown forwards a press to the controller.
func (w *Widget) HandlePointerDown(ev widget.PointerEvent) {
	w.ctrl.PointerDown(ev.X, ev.Y)
}

// HandlePointerMove forwards a drag to the controller.
func (w *Widget) HandlePointerMove(ev widget.PointerEvent) {
	w.ctrl.PointerMove(ev.X, ev.Y, ev.Primary)
}

// HandlePointerUp forwards the release to the controller.
func (w *Widget) HandlePointerUp(widget.PointerEvent) {
	w.ctrl.PointerUp()
}

// Render returns the current frame, regenerating it only when the
// controller has requested a redraw since the last call.
func (w *Widget) Render() image.Image {
	if w.frame == nil || w.dirty {
		w.frame = w.ren.compose(w.ctrl)
		w.dirty = false
	}
	return w.frame
}

// Value returns the current axis output values.
func (w *Widget) Value() (x, y int8) {
	return w.ctrl.X(), w.ctrl.Y()
}

// Controller exposes the underlying joystick controller for hosts that
// reconfigure the stick at runtime.
func (w *Widget) Controller() *joystick.Controller {
	return w.ctrl
}

// SetPressedFunc registers an observer for knob presses.
func (w *Widget) SetPressedFunc(fn func()) {
	w.pressed = fn
}

// SetValueChangedFunc registers an observer for axis value reports.
func (w *Widget) SetValueChangedFunc(fn func(x, y int8)) {
	w.valueChanged = fn
}
