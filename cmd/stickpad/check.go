package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frayle/stickpad/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the config file and report the effective settings",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Stickpad Check ===")
	fmt.Println()

	allOK := true

	// Config file
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n", configPath)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("  Status: found")
	} else {
		fmt.Println("  Status: not found (defaults in effect)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Load error: %v\n", err)
		allOK = false
	}
	fmt.Println()

	if cfg != nil {
		fmt.Println("Window:")
		fmt.Printf("  Title: %s\n", cfg.Window.Title)
		fmt.Printf("  Size: %dx%d\n", cfg.Window.Width, cfg.Window.Height)
		fmt.Printf("  Show values: %v\n", cfg.Window.ShowValues)
		fmt.Println()

		fmt.Printf("Sticks: %d\n", len(cfg.Sticks))
		for _, s := range cfg.Sticks {
			release := "back to zero"
			if s.Sticky {
				release = "sticky"
			}
			fmt.Printf("  %s: mode=%s, %s\n", s.ID, s.Mode, release)
		}
		fmt.Println()
	}

	if allOK {
		fmt.Println("All checks passed.")
	} else {
		fmt.Println("Some checks failed. Run 'stickpad setup' to configure.")
	}

	return nil
}
