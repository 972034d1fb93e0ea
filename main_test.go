package main

import "testing"

func TestStartupFPS(t *testing.T) {
	tests := []struct {
		flagValue int
		saved     int
		expected  int
	}{
		{0, 24, 24}, // zero keeps the saved default
		{12, 24, 12},
		{60, 24, 60},
		{0, 30, 30},
	}

	for _, test := range tests {
		if got := startupFPS(test.flagValue, test.saved); got != test.expected {
			t.Errorf("startupFPS(%d, %d) = %d, expected %d",
				test.flagValue, test.saved, got, test.expected)
		}
	}
}
