package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsUsableWithoutInit(t *testing.T) {
	if Log == nil || Sugar == nil {
		t.Fatal("logger must be usable before Init")
	}

	// Must not panic
	Sugar.Debugf("pre-init message %d", 1)
	Sync()
}

func TestInitWritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "viewer.log")

	if err := Init("debug", logFile); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Sugar.Infof("hello from test")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"},
		{"", "info"},
	}

	for _, test := range tests {
		if lvl := parseLevel(test.in); lvl.String() != test.expected {
			t.Errorf("parseLevel(%q) = %s, expected %s", test.in, lvl, test.expected)
		}
	}
}
