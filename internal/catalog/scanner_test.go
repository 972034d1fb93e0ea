package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFrames creates an animation directory with the given frame file names
func writeFrames(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0644); err != nil {
			t.Fatalf("failed to write frame %s: %v", name, err)
		}
	}
}

func TestListCharacters(t *testing.T) {
	root := t.TempDir()
	writeFrames(t, filepath.Join(root, "char1", "walk"), "0001.png")
	writeFrames(t, filepath.Join(root, "char2", "run"), "0001.png")

	// A stray file at root level must not appear as a character
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	scanner := NewScanner(root)
	characters, err := scanner.ListCharacters()
	if err != nil {
		t.Fatalf("ListCharacters() failed: %v", err)
	}

	if len(characters) != 2 {
		t.Fatalf("Expected 2 characters, got %d", len(characters))
	}
	if characters[0].Name != "char1" || characters[1].Name != "char2" {
		t.Errorf("Expected [char1 char2], got [%s %s]", characters[0].Name, characters[1].Name)
	}
}

func TestListCharacters_MissingRoot(t *testing.T) {
	scanner := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := scanner.ListCharacters()
	if err == nil {
		t.Fatal("Expected error for missing root")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}
}

func TestListCharacters_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(root, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewScanner(root).ListCharacters()
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError for file root, got %v", err)
	}
}

func TestListAnimations(t *testing.T) {
	root := t.TempDir()
	writeFrames(t, filepath.Join(root, "char1", "idle"), "0001.png")
	writeFrames(t, filepath.Join(root, "char1", "walk"), "0001.png")

	animations, err := NewScanner(root).ListAnimations("char1")
	if err != nil {
		t.Fatalf("ListAnimations() failed: %v", err)
	}

	if len(animations) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(animations))
	}
	if animations[0].Name != "idle" || animations[1].Name != "walk" {
		t.Errorf("Expected [idle walk], got [%s %s]", animations[0].Name, animations[1].Name)
	}
	if animations[0].Character != "char1" {
		t.Errorf("Expected character char1, got %s", animations[0].Character)
	}
}

func TestListAnimations_MissingCharacter(t *testing.T) {
	root := t.TempDir()

	_, err := NewScanner(root).ListAnimations("ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestListFrames(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "char1", "walk")
	writeFrames(t, dir, "frame002.png", "frame001.png", "frame003.png", "meta.json")

	seq, err := NewScanner(root).ListFrames("char1", "walk")
	if err != nil {
		t.Fatalf("ListFrames() failed: %v", err)
	}

	if seq.Len() != 3 {
		t.Fatalf("Expected 3 frames, got %d", seq.Len())
	}

	expected := []string{"frame001.png", "frame002.png", "frame003.png"}
	for i, name := range expected {
		if got := filepath.Base(seq.Frame(i)); got != name {
			t.Errorf("Frame %d = %s, expected %s", i, got, name)
		}
	}
}

func TestListFrames_NestedFramesDir(t *testing.T) {
	root := t.TempDir()
	animDir := filepath.Join(root, "char1", "walk")
	writeFrames(t, filepath.Join(animDir, FramesSubdir), "0001.png", "0002.png")

	seq, err := NewScanner(root).ListFrames("char1", "walk")
	if err != nil {
		t.Fatalf("ListFrames() failed: %v", err)
	}

	if seq.Len() != 2 {
		t.Fatalf("Expected 2 frames from nested dir, got %d", seq.Len())
	}
	if filepath.Dir(seq.Frame(0)) != filepath.Join(animDir, FramesSubdir) {
		t.Errorf("Expected frames from %s, got %s", FramesSubdir, seq.Frame(0))
	}
}

func TestListFrames_NumericOrder(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "char1", "walk")

	// Lexicographic order would put frame10 before frame2
	writeFrames(t, dir, "frame10.png", "frame2.png", "frame1.png")

	seq, err := NewScanner(root).ListFrames("char1", "walk")
	if err != nil {
		t.Fatalf("ListFrames() failed: %v", err)
	}

	expected := []string{"frame1.png", "frame2.png", "frame10.png"}
	for i, name := range expected {
		if got := filepath.Base(seq.Frame(i)); got != name {
			t.Errorf("Frame %d = %s, expected %s", i, got, name)
		}
	}
}

func TestListFrames_EmptyAnimation(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "char1", "empty")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	_, err := NewScanner(root).ListFrames("char1", "empty")
	if err == nil {
		t.Fatal("Expected error for empty animation")
	}

	var empty *EmptyAnimationError
	if !errors.As(err, &empty) {
		t.Errorf("Expected EmptyAnimationError, got %T: %v", err, err)
	}
}

func TestListFrames_MissingAnimation(t *testing.T) {
	root := t.TempDir()
	writeFrames(t, filepath.Join(root, "char1", "walk"), "0001.png")

	_, err := NewScanner(root).ListFrames("char1", "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}
