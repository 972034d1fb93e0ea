package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/frame-player/internal/catalog"
	"github.com/ytget/frame-player/internal/model"
	"github.com/ytget/frame-player/internal/playback"
)

// writeAnimation creates root/character/animation with n numbered png frames
func writeAnimation(t *testing.T, root, character, animation string, n int) {
	t.Helper()
	dir := filepath.Join(root, character, animation)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}
	for i := 1; i <= n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("frame%03d.png", i))
		if err := os.WriteFile(name, []byte("png"), 0644); err != nil {
			t.Fatalf("failed to write frame %s: %v", name, err)
		}
	}
}

func newTestRootUI(t *testing.T, root string) (*RootUI, *playback.Player) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")

	player := playback.NewPlayer()
	return NewRootUI(window, app, catalog.NewScanner(root), player), player
}

func TestRootUI_StartupSelectsFirstAnimation(t *testing.T) {
	root := t.TempDir()
	writeAnimation(t, root, "hero", "walk", 3)

	ui, player := newTestRootUI(t, root)

	if player.Status() != model.PlayStatusStopped {
		t.Errorf("status after startup = %s, expected Stopped", player.Status())
	}
	if got := filepath.Base(ui.currentFramePath); got != "frame001.png" {
		t.Errorf("displayed frame = %s, expected frame001.png", got)
	}
	if ui.characterSelect.Selected != "hero" || ui.animationSelect.Selected != "walk" {
		t.Errorf("selection = %s/%s, expected hero/walk",
			ui.characterSelect.Selected, ui.animationSelect.Selected)
	}
}

func TestRootUI_FrameChangeUpdatesPathAndCounter(t *testing.T) {
	root := t.TempDir()
	writeAnimation(t, root, "hero", "walk", 3)

	ui, player := newTestRootUI(t, root)

	player.StepForward()

	if got := filepath.Base(ui.currentFramePath); got != "frame002.png" {
		t.Errorf("displayed frame after step = %s, expected frame002.png", got)
	}
	if !strings.Contains(ui.frameCounter.Text, "frame002.png") {
		t.Errorf("frame counter %q does not name the current file", ui.frameCounter.Text)
	}
	if !strings.Contains(ui.frameCounter.Text, "2/3") {
		t.Errorf("frame counter %q missing position 2/3", ui.frameCounter.Text)
	}
}

func TestRootUI_FrameCallbackFromAnotherGoroutine(t *testing.T) {
	root := t.TempDir()
	writeAnimation(t, root, "hero", "walk", 3)

	ui, player := newTestRootUI(t, root)

	// During playback frame callbacks arrive on the timer goroutine; the path
	// the reveal and open handlers read must be published through the same
	// dispatch as the widget updates
	done := make(chan struct{})
	go func() {
		defer close(done)
		player.StepForward()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the frame callback")
	}

	if got := filepath.Base(ui.currentFramePath); got != "frame002.png" {
		t.Errorf("displayed frame = %s, expected frame002.png", got)
	}
}

func TestRootUI_EmptyAnimationRevertsSelection(t *testing.T) {
	root := t.TempDir()
	writeAnimation(t, root, "hero", "idle", 2)
	if err := os.MkdirAll(filepath.Join(root, "hero", "walk"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	ui, player := newTestRootUI(t, root)

	// Startup selected "idle"; picking the empty "walk" must fail and revert
	ui.animationSelect.SetSelected("walk")

	if ui.animationSelect.Selected != "idle" {
		t.Errorf("selection = %s, expected revert to idle", ui.animationSelect.Selected)
	}
	if player.Status() != model.PlayStatusStopped || player.FrameCount() != 2 {
		t.Errorf("previous animation no longer loaded: status=%s frames=%d",
			player.Status(), player.FrameCount())
	}
}
