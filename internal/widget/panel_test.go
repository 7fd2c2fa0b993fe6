package widget

import (
	"image"
	"image/color"
	"testing"
)

// fakeWidget records the events a panel delivers to it.
type fakeWidget struct {
	id     string
	w, h   int
	downs  []PointerEvent
	moves  []PointerEvent
	ups    []PointerEvent
	render image.Image
}

func (f *fakeWidget) ID() string { return f.id }

func (f *fakeWidget) Resize(w, h int) { f.w, f.h = w, h }

func (f *fakeWidget) HandlePointerDown(ev PointerEvent) { f.downs = append(f.downs, ev) }

func (f *fakeWidget) HandlePointerMove(ev PointerEvent) { f.moves = append(f.moves, ev) }

func (f *fakeWidget) HandlePointerUp(ev PointerEvent) { f.ups = append(f.ups, ev) }

func (f *fakeWidget) Render() image.Image { return f.render }

// TestPanel_ResizeScalesRegions verifies normalized regions become pixel
// bounds and widgets learn their sizes.
func TestPanel_ResizeScalesRegions(t *testing.T) {
	p := NewPanel(color.Black)
	left := &fakeWidget{id: "left"}
	right := &fakeWidget{id: "right"}
	if err := p.Add(left, Region{X: 0, Y: 0, W: 0.5, H: 1}); err != nil {
		t.Fatalf("add left: %v", err)
	}
	if err := p.Add(right, Region{X: 0.5, Y: 0, W: 0.5, H: 1}); err != nil {
		t.Fatalf("add right: %v", err)
	}

	p.Resize(800, 400)

	if left.w != 400 || left.h != 400 {
		t.Fatalf("expected left widget 400x400, got %dx%d", left.w, left.h)
	}
	bounds, ok := p.Bounds("right")
	if !ok || bounds != image.Rect(400, 0, 800, 400) {
		t.Fatalf("expected right bounds (400,0)-(800,400), got %v ok=%v", bounds, ok)
	}
}

// TestPanel_AddAfterResizeSizesWidget verifies late registration still
// receives current bounds.
func TestPanel_AddAfterResizeSizesWidget(t *testing.T) {
	p := NewPanel(color.Black)
	p.Resize(600, 300)

	w := &fakeWidget{id: "late"}
	if err := p.Add(w, Region{X: 0, Y: 0, W: 1, H: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if w.w != 600 || w.h != 300 {
		t.Fatalf("expected late widget 600x300, got %dx%d", w.w, w.h)
	}
}

// TestPanel_RejectsDuplicateIDs verifies two widgets cannot share an ID.
func TestPanel_RejectsDuplicateIDs(t *testing.T) {
	p := NewPanel(color.Black)
	if err := p.Add(&fakeWidget{id: "stick"}, Region{W: 1, H: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := p.Add(&fakeWidget{id: "stick"}, Region{W: 1, H: 1}); err == nil {
		t.Fatalf("expected duplicate ID error")
	}
}

// TestPanel_RoutesEventsToWidgetUnderPointer verifies down events reach the
// correct widget in local coordinates.
func TestPanel_RoutesEventsToWidgetUnderPointer(t *testing.T) {
	p := NewPanel(color.Black)
	left := &fakeWidget{id: "left"}
	right := &fakeWidget{id: "right"}
	p.Add(left, Region{X: 0, Y: 0, W: 0.5, H: 1})
	p.Add(right, Region{X: 0.5, Y: 0, W: 0.5, H: 1})
	p.Resize(800, 400)

	p.PointerDown(500, 120)
	if len(left.downs) != 0 {
		t.Fatalf("expected no events on left, got %#v", left.downs)
	}
	if len(right.downs) != 1 || right.downs[0].X != 100 || right.downs[0].Y != 120 {
		t.Fatalf("expected right down at (100,120), got %#v", right.downs)
	}
}

// TestPanel_GrabKeepsDragOnOneWidget verifies moves and the release follow
// the pressed widget even after the pointer crosses into a neighbor.
func TestPanel_GrabKeepsDragOnOneWidget(t *testing.T) {
	p := NewPanel(color.Black)
	left := &fakeWidget{id: "left"}
	right := &fakeWidget{id: "right"}
	p.Add(left, Region{X: 0, Y: 0, W: 0.5, H: 1})
	p.Add(right, Region{X: 0.5, Y: 0, W: 0.5, H: 1})
	p.Resize(800, 400)

	p.PointerDown(100, 100)
	p.PointerMove(600, 100, true) // pointer now over the right widget
	p.PointerUp(600, 100)

	if len(left.moves) != 1 || left.moves[0].X != 600 {
		t.Fatalf("expected grabbed left move at x=600, got %#v", left.moves)
	}
	if len(left.ups) != 1 {
		t.Fatalf("expected left release, got %#v", left.ups)
	}
	if len(right.moves) != 0 || len(right.ups) != 0 {
		t.Fatalf("expected no events on right, got %#v / %#v", right.moves, right.ups)
	}

	// After the release the grab is gone: hover moves route by position.
	p.PointerMove(600, 100, false)
	if len(right.moves) != 1 {
		t.Fatalf("expected hover move on right after release, got %#v", right.moves)
	}
}

// TestPanel_PressOutsideAnyWidgetIsIgnored verifies misses neither panic nor
// leave a stale grab.
func TestPanel_PressOutsideAnyWidgetIsIgnored(t *testing.T) {
	p := NewPanel(color.Black)
	w := &fakeWidget{id: "stick"}
	p.Add(w, Region{X: 0, Y: 0, W: 0.5, H: 1})
	p.Resize(800, 400)

	p.PointerDown(700, 100) // right half is empty
	p.PointerUp(700, 100)
	if len(w.downs) != 0 || len(w.ups) != 0 {
		t.Fatalf("expected no events, got %#v / %#v", w.downs, w.ups)
	}
}

// TestPanel_RenderComposites verifies widget images land at their bounds
// over the background fill.
func TestPanel_RenderComposites(t *testing.T) {
	p := NewPanel(color.RGBA{0, 0, 51, 255})
	w := &fakeWidget{id: "stick"}
	p.Add(w, Region{X: 0.5, Y: 0, W: 0.5, H: 1})
	p.Resize(200, 100)

	tile := image.NewRGBA(image.Rect(0, 0, 100, 100))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			tile.Set(x, y, red)
		}
	}
	w.render = tile

	frame := p.Render()
	if got := frame.RGBAAt(150, 50); got != red {
		t.Fatalf("expected widget pixel %v at (150,50), got %v", red, got)
	}
	if got := frame.RGBAAt(20, 50); got != (color.RGBA{0, 0, 51, 255}) {
		t.Fatalf("expected background pixel at (20,50), got %v", got)
	}
}
