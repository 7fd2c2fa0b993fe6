package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frayle/stickpad/internal/config"
	"github.com/frayle/stickpad/internal/joystick"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: write the config file",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== Stickpad Setup ===")
	fmt.Println()

	// Load existing config as defaults
	existing, err := config.Load()
	if err != nil {
		existing = config.Default()
	}

	cfg := config.Default()

	fmt.Println("-- Window --")
	cfg.Window.Title = prompt(reader, "Window title", existing.Window.Title)
	cfg.Window.Width = promptInt(reader, "Window width", existing.Window.Width)
	cfg.Window.Height = promptInt(reader, "Window height", existing.Window.Height)
	cfg.Window.ShowValues = promptBool(reader, "Show axis values", existing.Window.ShowValues)
	fmt.Println()

	fmt.Println("-- Stick --")
	stick := &cfg.Sticks[0]
	for {
		mode := prompt(reader, "Axis mode (all, x, y, none)", existing.Sticks[0].Mode)
		if _, err := joystick.ParseMode(mode); err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		stick.Mode = mode
		break
	}
	stick.Sticky = promptBool(reader, "Keep knob position on release", existing.Sticks[0].Sticky)
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.WriteConfigFile(cfg); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Printf("Config written to %s\n", config.DefaultConfigPath())
	fmt.Println("Setup complete!")
	return nil
}

// prompt asks for a value with an optional default.
func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return line
}

// promptInt asks for an integer, re-asking until the input parses.
func promptInt(reader *bufio.Reader, label string, defaultVal int) int {
	for {
		line := prompt(reader, label, strconv.Itoa(defaultVal))
		v, err := strconv.Atoi(line)
		if err != nil || v <= 0 {
			fmt.Println("  Please enter a positive number")
			continue
		}
		return v
	}
}

// promptBool asks a yes/no question.
func promptBool(reader *bufio.Reader, label string, defaultVal bool) bool {
	def := "n"
	if defaultVal {
		def = "y"
	}
	for {
		switch strings.ToLower(prompt(reader, label+" (y/n)", def)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Println("  Please answer y or n")
	}
}
