package joystick

import "fmt"

// Mode restricts which axes the knob may travel along.
// It is a closed set of four values with no flag algebra; NoAxis is a
// frozen mode of its own, not an empty combination of the axis modes.
type Mode uint8

const (
	// AllAxis allows free travel within the stick circle. It is the zero
	// value, so unconfigured sticks travel freely.
	AllAxis Mode = iota
	// XAxisOnly allows horizontal travel only.
	XAxisOnly
	// YAxisOnly allows vertical travel only.
	YAxisOnly
	// NoAxis freezes the knob: pointer drags never move it.
	NoAxis
)

// String returns the mode's config-file spelling.
func (m Mode) String() string {
	switch m {
	case NoAxis:
		return "none"
	case XAxisOnly:
		return "x"
	case YAxisOnly:
		return "y"
	case AllAxis:
		return "all"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a config-file spelling into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "none":
		return NoAxis, nil
	case "x":
		return XAxisOnly, nil
	case "y":
		return YAxisOnly, nil
	case "all":
		return AllAxis, nil
	default:
		return 0, fmt.Errorf("unknown joystick mode %q", s)
	}
}
