package joystick

import "testing"

// TestParseMode_RoundTrips verifies every mode parses from its own spelling.
func TestParseMode_RoundTrips(t *testing.T) {
	for _, mode := range []Mode{NoAxis, XAxisOnly, YAxisOnly, AllAxis} {
		parsed, err := ParseMode(mode.String())
		if err != nil {
			t.Fatalf("mode %v: unexpected error %v", mode, err)
		}
		if parsed != mode {
			t.Fatalf("expected %v, got %v", mode, parsed)
		}
	}
}

// TestParseMode_RejectsUnknown verifies unknown spellings fail.
func TestParseMode_RejectsUnknown(t *testing.T) {
	if _, err := ParseMode("diagonal"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := ParseMode(""); err == nil {
		t.Fatalf("expected error for empty mode")
	}
}

// TestMode_StringOutOfRange verifies out-of-range values stringify without
// panicking.
func TestMode_StringOutOfRange(t *testing.T) {
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Fatalf("expected Mode(9), got %q", s)
	}
}
