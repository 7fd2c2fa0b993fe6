package stick

import (
	"image/color"
	"testing"

	"github.com/frayle/stickpad/internal/joystick"
	"github.com/frayle/stickpad/internal/widget"
)

// TestParseHexColor verifies round-tripping of #rrggbb strings.
func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#004d99")
	if err != nil {
		t.Fatalf("expected #004d99 to parse, got error %v", err)
	}
	want := color.RGBA{R: 0x00, G: 0x4d, B: 0x99, A: 0xff}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	for _, bad := range []string{"", "004d99", "#04d99", "#gg4d99", "#004d99ff"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

// TestWidgetDefaults verifies the options applied by New.
func TestWidgetDefaults(t *testing.T) {
	w := New("left", Options{})
	if w.ID() != "left" {
		t.Fatalf("expected id left, got %q", w.ID())
	}
	if w.Controller().Mode() != joystick.AllAxis {
		t.Fatalf("expected AllAxis by default, got %v", w.Controller().Mode())
	}
	if !w.Controller().BackToZero() {
		t.Fatal("expected back-to-zero by default")
	}

	sticky := New("right", Options{Mode: joystick.XAxisOnly, Sticky: true})
	if sticky.Controller().Mode() != joystick.XAxisOnly {
		t.Fatalf("expected XAxisOnly, got %v", sticky.Controller().Mode())
	}
	if sticky.Controller().BackToZero() {
		t.Fatal("expected sticky widget to keep its position on release")
	}
}

// TestWidgetRenderKnobAndGradient checks the composed frame has the knob
// color at the center and the gradient base color inside the stick circle.
func TestWidgetRenderKnobAndGradient(t *testing.T) {
	w := New("stick", Options{})
	w.Resize(300, 300)

	frame := w.Render()
	pal := DefaultPalette()

	// Knob sits at the center after a resize.
	if got := color.RGBAModel.Convert(frame.At(150, 150)); got != pal.Knob {
		t.Fatalf("expected knob color at center, got %#v", got)
	}

	// Stick radius is 100, knob radius 50: (150, 75) is inside the
	// gradient circle but outside both the knob and the hint icon.
	r, g, b, a := frame.At(150, 75).RGBA()
	if a == 0 {
		t.Fatal("expected gradient pixel inside the stick circle to be painted")
	}
	if b>>8 <= r>>8 || b>>8 <= g>>8 {
		t.Fatalf("expected blue-dominant gradient pixel, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}

	// Corners are outside the circle and stay transparent.
	if _, _, _, a := frame.At(2, 2).RGBA(); a != 0 {
		t.Fatalf("expected transparent corner, got alpha %d", a)
	}
}

// TestWidgetRenderCaching verifies frames are reused until the controller
// requests a redraw.
func TestWidgetRenderCaching(t *testing.T) {
	w := New("stick", Options{})
	w.Resize(300, 300)

	first := w.Render()
	if w.Render() != first {
		t.Fatal("expected cached frame to be reused without a redraw request")
	}

	w.HandlePointerDown(widget.PointerEvent{X: 150, Y: 150, Primary: true})
	if w.Render() == first {
		t.Fatal("expected a fresh frame after a pointer event")
	}
}

// TestWidgetPointerFlow drives a press-drag-release through the widget
// interface and checks values and observer callbacks.
func TestWidgetPointerFlow(t *testing.T) {
	w := New("stick", Options{})
	w.Resize(300, 300)

	var pressed int
	var values [][2]int8
	w.SetPressedFunc(func() { pressed++ })
	w.SetValueChangedFunc(func(x, y int8) { values = append(values, [2]int8{x, y}) })

	w.HandlePointerDown(widget.PointerEvent{X: 150, Y: 150, Primary: true})
	if pressed != 1 {
		t.Fatalf("expected 1 press, got %d", pressed)
	}

	w.HandlePointerMove(widget.PointerEvent{X: 190, Y: 150, Primary: true})
	if x, y := w.Value(); x != 40 || y != 0 {
		t.Fatalf("expected value (40, 0), got (%d, %d)", x, y)
	}
	if len(values) != 1 || values[0] != [2]int8{40, 0} {
		t.Fatalf("expected one value report (40, 0), got %#v", values)
	}

	w.HandlePointerUp(widget.PointerEvent{})
	if kx, ky := w.Controller().KnobPosition(); kx != 150 || ky != 150 {
		t.Fatalf("expected knob back at center, got (%d, %d)", kx, ky)
	}
}
