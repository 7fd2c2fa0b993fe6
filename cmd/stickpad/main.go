package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frayle/stickpad/internal/config"
	"github.com/frayle/stickpad/internal/joystick"
	"github.com/frayle/stickpad/internal/ui"
	"github.com/frayle/stickpad/internal/widget"
	"github.com/frayle/stickpad/internal/widgets/stick"
)

var rootCmd = &cobra.Command{
	Use:   "stickpad",
	Short: "On-screen joystick pad",
	RunE:  runGUI,
}

func main() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	log.Println("=== Stickpad ===")
	log.Println("Close window or press Ctrl+C to exit")

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\nReceived shutdown signal")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	window, err := buildWindow(cfg)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		window.Stop()
	}()

	// Run GUI on main thread (required for macOS)
	if err := window.Run(); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// buildWindow assembles the widget panel and window from configuration.
func buildWindow(cfg *config.Config) (*ui.Window, error) {
	panel := widget.NewPanel(color.RGBA{R: 30, G: 30, B: 30, A: 255})
	window := ui.New(panel, ui.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Resizable:  cfg.Window.Resizable,
		ShowValues: cfg.Window.ShowValues,
	})

	for _, sc := range cfg.Sticks {
		opts, err := stickOptions(sc)
		if err != nil {
			return nil, fmt.Errorf("stick %q: %w", sc.ID, err)
		}

		w := stick.New(sc.ID, opts)
		id := sc.ID
		w.SetValueChangedFunc(func(x, y int8) {
			log.Printf("%s: x=%d y=%d", id, x, y)
		})

		region := widget.Region{X: sc.Region.X, Y: sc.Region.Y, W: sc.Region.W, H: sc.Region.H}
		if err := panel.Add(w, region); err != nil {
			return nil, err
		}
		window.AddValueSource(w)
	}

	return window, nil
}

// stickOptions translates one stick's config entry into widget options.
func stickOptions(sc config.StickConfig) (stick.Options, error) {
	mode, err := joystick.ParseMode(sc.Mode)
	if err != nil {
		return stick.Options{}, err
	}

	palette := stick.DefaultPalette()
	if sc.BaseColor != "" {
		if palette.Base, err = stick.ParseHexColor(sc.BaseColor); err != nil {
			return stick.Options{}, err
		}
	}
	if sc.KnobColor != "" {
		if palette.Knob, err = stick.ParseHexColor(sc.KnobColor); err != nil {
			return stick.Options{}, err
		}
	}
	if sc.HintColor != "" {
		if palette.Hint, err = stick.ParseHexColor(sc.HintColor); err != nil {
			return stick.Options{}, err
		}
	}

	return stick.Options{
		Mode:    mode,
		Sticky:  sc.Sticky,
		Palette: palette,
	}, nil
}
