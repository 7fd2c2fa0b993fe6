// Package ui hosts a widget panel inside an Ebitengine window and translates
// mouse input into the panel's pointer events.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/frayle/stickpad/internal/widget"
)

// ValueSource exposes the live output values of a widget for the on-screen
// readout.
type ValueSource interface {
	ID() string
	Value() (x, y int8)
}

// Options configures a Window.
type Options struct {
	Title  string
	Width  int
	Height int
	// ShowValues prints each value source's current output in the
	// top-left corner.
	ShowValues bool
	Resizable  bool
}

// Window drives a panel from the Ebitengine game loop. It implements
// ebiten.Game; Run blocks until the window is closed.
type Window struct {
	panel   *widget.Panel
	opts    Options
	sources []ValueSource

	prevCursorX int
	prevCursorY int
	stopCh      chan struct{}
}

// New creates a window hosting the given panel.
func New(panel *widget.Panel, opts Options) *Window {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if opts.Title == "" {
		opts.Title = "stickpad"
	}
	return &Window{
		panel:  panel,
		opts:   opts,
		stopCh: make(chan struct{}),
	}
}

// AddValueSource registers a widget for the on-screen value readout.
func (w *Window) AddValueSource(src ValueSource) {
	w.sources = append(w.sources, src)
}

// Stop asks the game loop to terminate on its next update.
func (w *Window) Stop() {
	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
}

// Run opens the window and blocks in the game loop. This must be called from
// the main goroutine on macOS due to Cocoa threading requirements.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	if w.opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	w.panel.Resize(w.opts.Width, w.opts.Height)

	return ebiten.RunGame(w)
}

// Update polls mouse state and forwards pointer events to the panel.
func (w *Window) Update() error {
	select {
	case <-w.stopCh:
		return ebiten.Termination
	default:
	}

	w.handleInput()
	return nil
}

func (w *Window) handleInput() {
	mx, my := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.panel.PointerDown(mx, my)
	}

	// The widgets expect one move event per pointer position change, not
	// one per frame.
	if mx != w.prevCursorX || my != w.prevCursorY {
		w.panel.PointerMove(mx, my, held)
		w.prevCursorX = mx
		w.prevCursorY = my
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.panel.PointerUp(mx, my)
	}
}

// Draw composites the panel and the optional value readout.
func (w *Window) Draw(screen *ebiten.Image) {
	frame := ebiten.NewImageFromImage(w.panel.Render())
	screen.DrawImage(frame, &ebiten.DrawImageOptions{})

	if w.opts.ShowValues {
		for i, src := range w.sources {
			x, y := src.Value()
			line := fmt.Sprintf("%s: x=%d y=%d", src.ID(), x, y)
			ebitenutil.DebugPrintAt(screen, line, 8, 8+16*i)
		}
	}
}

// Layout propagates window resizes to the panel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.panel.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
