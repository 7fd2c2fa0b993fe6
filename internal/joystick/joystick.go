// Package joystick implements the state and geometry of a virtual joystick
// control: pointer hit testing, drag clamping, axis restriction, and the
// back-to-zero release behavior. It owns no window or rendering machinery;
// a host widget feeds it pointer and resize events and reads back geometry
// for drawing.
package joystick

import "math"

// Controller models a single on-screen joystick. The stick circle (radius R)
// bounds the travel of the knob (radius R/2); the knob follows the pointer
// while the primary button is held, clamped to the stick circle.
//
// The X/Y output values reproduce an electromechanical joystick controller:
// each axis is a single byte. Raw center-relative pointer coordinates are
// truncated to int8, so values wrap outside [-128, 127].
//
// A Controller is not safe for concurrent use; the host is expected to
// deliver events from a single UI loop, in order.
type Controller struct {
	width  int
	height int

	stickRadius int
	knobRadius  int
	knobX       int
	knobY       int

	x int8
	y int8

	mode       Mode
	backToZero bool

	pressed      func()
	valueChanged func(x, y int8)
	redraw       func()
}

// New returns a controller in AllAxis mode with back-to-zero enabled.
// Geometry is zero until the first Resize.
func New() *Controller {
	return &Controller{
		mode:       AllAxis,
		backToZero: true,
	}
}

// SetPressedFunc registers the callback fired when a pointer-down lands on
// the knob.
func (c *Controller) SetPressedFunc(fn func()) {
	c.pressed = fn
}

// SetValueChangedFunc registers the callback fired on every processed
// pointer move, carrying the byte output values.
func (c *Controller) SetValueChangedFunc(fn func(x, y int8)) {
	c.valueChanged = fn
}

// SetRedrawFunc registers the host's repaint-request primitive.
func (c *Controller) SetRedrawFunc(fn func()) {
	c.redraw = fn
}

// Resize sets the widget bounds, recomputes both radii, and recenters the
// knob. The stick radius is min(w,h)/2 - min(w,h)/6 and the knob radius is
// always half of it; the divisions truncate.
func (c *Controller) Resize(width, height int) {
	c.width = width
	c.height = height

	side := width
	if height < side {
		side = height
	}
	c.stickRadius = side/2 - side/6
	c.knobRadius = c.stickRadius / 2

	c.knobX = width / 2
	c.knobY = height / 2
}

// PointerDown handles a press at widget-relative coordinates. A press inside
// the knob fires the pressed callback; every press requests a redraw.
func (c *Controller) PointerDown(px, py int) {
	x := px - c.width/2
	y := py - c.height/2

	if x*x+y*y <= c.knobRadius*c.knobRadius {
		c.firePressed()
	}

	c.requestRedraw()
}

// PointerMove handles a drag to widget-relative coordinates. Moves without
// the primary button held are inert. The knob position is updated according
// to the current mode; the reported output values are the raw
// center-relative coordinates, not the clamped knob position.
func (c *Controller) PointerMove(px, py int, primaryHeld bool) {
	if !primaryHeld {
		return
	}

	x := px - c.width/2
	y := py - c.height/2

	switch c.mode {
	case AllAxis:
		c.moveAllAxis(px, py, x, y)
	case XAxisOnly:
		c.moveXAxis(px, x)
	case YAxisOnly:
		c.moveYAxis(py, y)
	case NoAxis:
		// Frozen: the knob never moves, but values are still reported below.
	}

	c.x = int8(x)
	c.y = int8(y)
	c.fireValueChanged(c.x, c.y)

	c.requestRedraw()
}

// moveAllAxis places the knob at the pointer when inside the stick circle,
// otherwise clamps it onto the circle boundary along the pointer direction.
func (c *Controller) moveAllAxis(px, py, x, y int) {
	r := c.stickRadius
	if x*x+y*y <= r*r {
		c.knobX = px
		c.knobY = py
		return
	}

	dist := math.Hypot(float64(x), float64(y))
	if dist == 0 {
		// Degenerate geometry (zero radius with the pointer dead center);
		// avoid dividing by zero and leave the knob at rest.
		c.knobX = c.width / 2
		c.knobY = c.height / 2
		return
	}

	angle := math.Acos(float64(x) / dist)
	if y > 0 {
		angle = angle + (math.Pi-angle)*2
	}
	// The widget coordinate system grows downward, so flip the angle.
	angle = -angle

	c.knobX = int(float64(r)*math.Cos(angle) + float64(c.width/2))
	c.knobY = int(float64(r)*math.Sin(angle) + float64(c.height/2))
}

// moveXAxis tracks the pointer horizontally, clamped to the stick circle,
// with the knob pinned to the vertical center.
func (c *Controller) moveXAxis(px, x int) {
	r := c.stickRadius
	switch {
	case x > -r && x < r:
		c.knobX = px
	case x > 0:
		c.knobX = c.width/2 + r
	default:
		c.knobX = c.width/2 - r
	}
	c.knobY = c.height / 2
}

// moveYAxis tracks the pointer vertically, clamped to the stick circle,
// with the knob pinned to the horizontal center.
func (c *Controller) moveYAxis(py, y int) {
	r := c.stickRadius
	switch {
	case y > -r && y < r:
		c.knobY = py
	case y > 0:
		c.knobY = c.height/2 + r
	default:
		c.knobY = c.height/2 - r
	}
	c.knobX = c.width / 2
}

// PointerUp handles the release. With back-to-zero enabled the knob snaps
// to the center; otherwise the position is sticky.
func (c *Controller) PointerUp() {
	if !c.backToZero {
		return
	}
	c.knobX = c.width / 2
	c.knobY = c.height / 2
	c.requestRedraw()
}

// X returns the current X-axis output value.
func (c *Controller) X() int8 {
	return c.x
}

// SetX overrides the X-axis output value directly, bypassing pointer logic.
func (c *Controller) SetX(x int8) {
	if x == c.x {
		return
	}
	c.x = x
	c.requestRedraw()
}

// Y returns the current Y-axis output value.
func (c *Controller) Y() int8 {
	return c.y
}

// SetY overrides the Y-axis output value directly, bypassing pointer logic.
func (c *Controller) SetY(y int8) {
	if y == c.y {
		return
	}
	c.y = y
	c.requestRedraw()
}

// Mode returns the current axis restriction.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode changes the axis restriction and requests a redraw.
func (c *Controller) SetMode(mode Mode) {
	c.mode = mode
	c.requestRedraw()
}

// BackToZero reports whether the knob returns to center on release.
func (c *Controller) BackToZero() bool {
	return c.backToZero
}

// SetBackToZero enables or disables the return-to-center release behavior.
func (c *Controller) SetBackToZero(enable bool) {
	c.backToZero = enable
}

// Size returns the widget bounds set by the last Resize.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// Center returns the widget center point.
func (c *Controller) Center() (x, y int) {
	return c.width / 2, c.height / 2
}

// StickRadius returns the radius of the travel boundary circle.
func (c *Controller) StickRadius() int {
	return c.stickRadius
}

// KnobRadius returns the radius of the draggable knob.
func (c *Controller) KnobRadius() int {
	return c.knobRadius
}

// KnobPosition returns the knob center in widget coordinates.
func (c *Controller) KnobPosition() (x, y int) {
	return c.knobX, c.knobY
}

func (c *Controller) firePressed() {
	if c.pressed != nil {
		c.pressed()
	}
}

func (c *Controller) fireValueChanged(x, y int8) {
	if c.valueChanged != nil {
		c.valueChanged(x, y)
	}
}

func (c *Controller) requestRedraw() {
	if c.redraw != nil {
		c.redraw()
	}
}
