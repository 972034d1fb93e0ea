package platform

import (
	"path/filepath"
	"testing"
)

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestCheckFile_Relative(t *testing.T) {
	// checkFile must reject missing relative paths too
	if _, err := checkFile("no-such-frame.png"); err == nil {
		t.Error("Expected error for missing relative path")
	}
}
