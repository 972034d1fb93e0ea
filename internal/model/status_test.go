package model

import "testing"

func TestPlayStatus_String(t *testing.T) {
	tests := []struct {
		status   PlayStatus
		expected string
	}{
		{PlayStatusIdle, "Idle"},
		{PlayStatusStopped, "Stopped"},
		{PlayStatusPlaying, "Playing"},
	}

	for _, test := range tests {
		if result := test.status.String(); result != test.expected {
			t.Errorf("String() for %v = %s, expected %s", test.status, result, test.expected)
		}
	}
}

func TestPlayStatus_HasAnimation(t *testing.T) {
	tests := []struct {
		status   PlayStatus
		expected bool
	}{
		{PlayStatusIdle, false},
		{PlayStatusStopped, true},
		{PlayStatusPlaying, true},
	}

	for _, test := range tests {
		if result := test.status.HasAnimation(); result != test.expected {
			t.Errorf("HasAnimation() for %s = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPlayStatus_IsPlaying(t *testing.T) {
	if PlayStatusPlaying.IsPlaying() != true {
		t.Error("Expected Playing status to report IsPlaying")
	}
	if PlayStatusStopped.IsPlaying() {
		t.Error("Stopped status must not report IsPlaying")
	}
	if PlayStatusIdle.IsPlaying() {
		t.Error("Idle status must not report IsPlaying")
	}
}
