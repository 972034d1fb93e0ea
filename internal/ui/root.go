package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/frame-player/internal/catalog"
	"github.com/ytget/frame-player/internal/config"
	"github.com/ytget/frame-player/internal/logger"
	"github.com/ytget/frame-player/internal/model"
	"github.com/ytget/frame-player/internal/platform"
	"github.com/ytget/frame-player/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	scanner      *catalog.Scanner
	player       playback.Controller

	// Catalog selection state; indices refer to the last valid selection
	characters     []model.Character
	animations     []model.Animation
	characterIndex int
	animationIndex int
	suppressSelect bool // guards Select callbacks during programmatic updates

	currentFramePath string

	// Widgets
	characterSelect *widget.Select
	animationSelect *widget.Select
	frameImage      *canvas.Image
	frameCounter    *widget.Label
	statusLabel     *widget.Label
	playBtn         *widget.Button
	revealBtn       *widget.Button
	loopCheck       *widget.Check
	fpsSlider       *widget.Slider
	fpsLabel        *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, scanner *catalog.Scanner, player playback.Controller) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:         window,
		app:            app,
		settings:       settings,
		localization:   localization,
		scanner:        scanner,
		player:         player,
		characterIndex: -1,
		animationIndex: -1,
	}

	// Playback drives the display through these callbacks
	ui.player.SetFrameCallback(ui.onFrameChange)
	ui.player.SetStatusCallback(ui.onStatusChange)

	ui.setupUI()
	ui.createMenu()
	ui.bindKeyboard()
	ui.loadCatalog()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Left panel: catalog browser
	browserLabel := widget.NewLabelWithStyle(ui.localization.GetText(KeyBrowser), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.characterSelect = widget.NewSelect(nil, ui.onCharacterSelected)
	ui.animationSelect = widget.NewSelect(nil, ui.onAnimationSelected)

	shortcutsTitle := widget.NewLabelWithStyle(ui.localization.GetText(KeyShortcutsTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	shortcutsBody := widget.NewLabelWithStyle(ui.localization.GetText(KeyShortcutsBody), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})

	left := container.NewVBox(
		browserLabel,
		widget.NewLabel(ui.localization.GetText(KeyCharacter)),
		ui.characterSelect,
		widget.NewLabel(ui.localization.GetText(KeyAnimation)),
		ui.animationSelect,
		widget.NewSeparator(),
		shortcutsTitle,
		shortcutsBody,
	)

	// Right panel: viewer and transport controls
	viewerLabel := widget.NewLabelWithStyle(ui.localization.GetText(KeyViewer), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.playBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlay), ui.onPlayClick)
	firstBtn := widget.NewButton(IconFirst, func() { ui.applyAction(ActionSeekFirst) })
	prevBtn := widget.NewButton(IconPrev, func() { ui.applyAction(ActionStepBackward) })
	nextBtn := widget.NewButton(IconNext, func() { ui.applyAction(ActionStepForward) })
	lastBtn := widget.NewButton(IconLast, func() { ui.applyAction(ActionSeekLast) })

	ui.loopCheck = widget.NewCheck(ui.localization.GetText(KeyLoop), ui.onLoopChanged)
	ui.loopCheck.SetChecked(ui.player.Loop())

	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyRevealFrame), ui.onRevealFrame)

	controls := container.NewHBox(ui.playBtn, firstBtn, prevBtn, nextBtn, lastBtn, ui.loopCheck, ui.revealBtn)

	// FPS row: slider with a numeric readout
	ui.fpsSlider = widget.NewSlider(playback.MinFPS, playback.MaxFPS)
	ui.fpsSlider.Step = 1
	ui.fpsSlider.SetValue(float64(ui.player.FPS()))
	ui.fpsSlider.OnChanged = ui.onFPSChanged

	ui.fpsLabel = widget.NewLabel(fmt.Sprintf("%d", ui.player.FPS()))

	// Fixed-width readout so the slider does not resize between 9 and 10 fps
	fpsValueCell := container.NewGridWrap(fyne.NewSize(FPSLabelWidth, ui.fpsLabel.MinSize().Height), ui.fpsLabel)
	fpsRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeyFPS)), fpsValueCell, ui.fpsSlider)

	// Frame display
	ui.frameImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.frameImage.SetMinSize(fyne.NewSize(FrameMinWidth, FrameMinHeight))

	// Status bar
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.frameCounter = widget.NewLabel(DashPlaceholder)
	statusBar := container.NewBorder(nil, nil, nil, ui.frameCounter, ui.statusLabel)

	right := container.NewBorder(
		container.NewVBox(viewerLabel, controls, fpsRow), // top
		statusBar,     // bottom
		nil,           // left
		nil,           // right
		ui.frameImage, // center
	)

	split := container.NewHSplit(left, right)
	split.SetOffset(BrowserSplitOffset)

	ui.window.SetContent(split)

	logger.Sugar.Debugf("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFrame), ui.onOpenFrame)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealFrame), ui.onRevealFrame)
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, revealItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// bindKeyboard routes canvas key events through the action table
func (ui *RootUI) bindKeyboard() {
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		ui.applyAction(ActionForKey(ev.Name))
	})
	ui.window.Canvas().SetOnTypedRune(func(r rune) {
		ui.applyAction(ActionForRune(r))
	})
}

// loadCatalog scans the root directory and selects the first character
func (ui *RootUI) loadCatalog() {
	characters, err := ui.scanner.ListCharacters()
	if err != nil {
		ui.showError(ui.localization.GetText(KeyScanFailed) + ": " + err.Error())
		return
	}

	if len(characters) == 0 {
		ui.showError(ui.localization.GetText(KeyNoCharacters))
		return
	}

	ui.characters = characters
	names := make([]string, len(characters))
	for i, c := range characters {
		names[i] = c.Name
	}
	ui.characterSelect.Options = names
	ui.characterSelect.Refresh()

	ui.updateStatus(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyLoadedCharacters), len(characters)))

	// Auto-select the first character; selection cascades to the first animation
	ui.characterSelect.SetSelectedIndex(0)
}

// onCharacterSelected handles character selection
func (ui *RootUI) onCharacterSelected(name string) {
	if ui.suppressSelect {
		return
	}

	index := ui.findCharacter(name)
	if index < 0 {
		return
	}

	animations, err := ui.scanner.ListAnimations(name)
	if err != nil {
		logger.Sugar.Warnf("listing animations for %s failed: %v", name, err)
		ui.showError(ui.localization.GetText(KeyScanFailed) + ": " + err.Error())
		ui.revertCharacterSelection()
		return
	}

	// Commit only after the scan succeeded so a failure keeps the previous
	// selection fully usable
	ui.characterIndex = index
	ui.animationIndex = -1
	ui.animations = animations
	ui.player.Clear()

	names := make([]string, len(animations))
	for i, a := range animations {
		names[i] = a.Name
	}

	ui.suppressSelect = true
	ui.animationSelect.Options = names
	ui.animationSelect.ClearSelected()
	ui.suppressSelect = false
	ui.animationSelect.Refresh()

	logger.Sugar.Infof("selected character %s: %d animations", name, len(animations))

	if len(animations) > 0 {
		ui.animationSelect.SetSelectedIndex(0)
	} else {
		ui.clearFrameDisplay()
	}
}

// onAnimationSelected handles animation selection
func (ui *RootUI) onAnimationSelected(name string) {
	if ui.suppressSelect {
		return
	}

	index := ui.findAnimation(name)
	if index < 0 || ui.characterIndex < 0 {
		return
	}

	character := ui.characters[ui.characterIndex].Name
	seq, err := ui.scanner.ListFrames(character, name)
	if err != nil {
		logger.Sugar.Warnf("loading frames for %s/%s failed: %v", character, name, err)

		var empty *catalog.EmptyAnimationError
		if errors.As(err, &empty) {
			ui.showError(ui.localization.GetText(KeyEmptyAnimation) + ": " + name)
		} else {
			ui.showError(ui.localization.GetText(KeyScanFailed) + ": " + err.Error())
		}

		ui.revertAnimationSelection()
		return
	}

	ui.animationIndex = index
	ui.player.Load(seq)

	ui.updateStatus(ui.localization.GetText(KeyLoadedAnimation) + ": " + name)

	if ui.settings.GetAutoReveal() {
		ui.onRevealFrame()
	}
}

// revertCharacterSelection restores the select widget to the last valid character
func (ui *RootUI) revertCharacterSelection() {
	ui.suppressSelect = true
	if ui.characterIndex >= 0 && ui.characterIndex < len(ui.characters) {
		ui.characterSelect.SetSelectedIndex(ui.characterIndex)
	} else {
		ui.characterSelect.ClearSelected()
	}
	ui.suppressSelect = false
}

// revertAnimationSelection restores the select widget to the last valid animation
func (ui *RootUI) revertAnimationSelection() {
	ui.suppressSelect = true
	if ui.animationIndex >= 0 && ui.animationIndex < len(ui.animations) {
		ui.animationSelect.SetSelectedIndex(ui.animationIndex)
	} else {
		ui.animationSelect.ClearSelected()
	}
	ui.suppressSelect = false
}

// findCharacter returns the index of a character by name, -1 when unknown
func (ui *RootUI) findCharacter(name string) int {
	for i, c := range ui.characters {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// findAnimation returns the index of an animation by name, -1 when unknown
func (ui *RootUI) findAnimation(name string) int {
	for i, a := range ui.animations {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// onPlayClick handles the play/pause button
func (ui *RootUI) onPlayClick() {
	ui.applyAction(ActionTogglePlay)
}

// onLoopChanged handles the loop checkbox
func (ui *RootUI) onLoopChanged(checked bool) {
	ui.player.SetLoop(checked)
}

// onFPSChanged handles the fps slider
func (ui *RootUI) onFPSChanged(value float64) {
	ui.player.SetFPS(int(value))
	ui.fpsLabel.SetText(fmt.Sprintf("%d", ui.player.FPS()))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Re-apply saved defaults to the running player
		ui.player.SetFPS(ui.settings.GetDefaultFPS())
		ui.player.SetLoop(ui.settings.GetDefaultLoop())
		ui.fpsSlider.SetValue(float64(ui.player.FPS()))
		ui.loopCheck.SetChecked(ui.player.Loop())
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates user-visible texts after a language change
func (ui *RootUI) refreshUITexts() {
	ui.refreshPlayButton(ui.player.Status())
	ui.loopCheck.Text = ui.localization.GetText(KeyLoop)
	ui.loopCheck.Refresh()
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyRevealFrame))
}

// onRevealFrame reveals the currently displayed frame in the file manager
func (ui *RootUI) onRevealFrame() {
	if ui.currentFramePath == "" {
		ui.showError(ui.localization.GetText(KeyNoAnimation))
		return
	}

	if err := platform.OpenFileInManager(ui.currentFramePath); err != nil {
		logger.Sugar.Warnf("reveal failed for %s: %v", ui.currentFramePath, err)
		ui.showError(ui.localization.GetText(KeyRevealFailed) + ": " + err.Error())
	}
}

// onOpenFrame opens the currently displayed frame in the default image viewer
func (ui *RootUI) onOpenFrame() {
	if ui.currentFramePath == "" {
		ui.showError(ui.localization.GetText(KeyNoAnimation))
		return
	}

	if err := platform.OpenFileWithDefaultApp(ui.currentFramePath); err != nil {
		logger.Sugar.Warnf("open failed for %s: %v", ui.currentFramePath, err)
		ui.showError(ui.localization.GetText(KeyOpenFailed) + ": " + err.Error())
	}
}

// applyAction executes one mapped input action. Manual frame navigation
// pauses playback first: stepping through frames interrupts autoplay.
func (ui *RootUI) applyAction(action Action) {
	if action == ActionNone {
		return
	}

	logger.Sugar.Debugf("action: %s", action)

	switch action {
	case ActionTogglePlay:
		if err := ui.player.TogglePlayPause(); err != nil {
			ui.showError(ui.localization.GetText(KeyNoAnimation))
		}
	case ActionStepBackward:
		ui.player.Pause()
		ui.player.StepBackward()
	case ActionStepForward:
		ui.player.Pause()
		ui.player.StepForward()
	case ActionSeekFirst:
		ui.player.Pause()
		ui.player.SeekFirst()
	case ActionSeekLast:
		ui.player.Pause()
		ui.player.SeekLast()
	case ActionPrevCharacter:
		ui.cycleCharacter(-1)
	case ActionNextCharacter:
		ui.cycleCharacter(1)
	case ActionPrevAnimation:
		ui.cycleAnimation(-1)
	case ActionNextAnimation:
		ui.cycleAnimation(1)
	case ActionFPSUp:
		ui.fpsSlider.SetValue(float64(ui.player.FPS() + 1))
	case ActionFPSDown:
		ui.fpsSlider.SetValue(float64(ui.player.FPS() - 1))
	case ActionQuit:
		logger.Sugar.Infof("quit requested")
		ui.app.Quit()
	}
}

// cycleCharacter selects the previous/next character, wrapping at the ends
func (ui *RootUI) cycleCharacter(delta int) {
	if len(ui.characters) == 0 || ui.characterIndex < 0 {
		return
	}
	index := (ui.characterIndex + delta + len(ui.characters)) % len(ui.characters)
	ui.characterSelect.SetSelectedIndex(index)
}

// cycleAnimation selects the previous/next animation, wrapping at the ends
func (ui *RootUI) cycleAnimation(delta int) {
	if len(ui.animations) == 0 || ui.animationIndex < 0 {
		return
	}
	index := (ui.animationIndex + delta + len(ui.animations)) % len(ui.animations)
	ui.animationSelect.SetSelectedIndex(index)
}

// onFrameChange handles frame updates from the playback engine. It may be
// called from the timer goroutine, so all widget updates go through fyne.Do.
func (ui *RootUI) onFrameChange(path string, index, total int) {
	fyne.Do(func() {
		// currentFramePath is read by the reveal/open handlers on this same
		// goroutine, so the write must happen here too
		ui.currentFramePath = path
		ui.frameImage.File = path
		ui.frameImage.Refresh()
		counter := fmt.Sprintf(ui.localization.GetText(KeyFrame)+" "+FrameCounterFormat, index+1, total)
		ui.frameCounter.SetText(filepath.Base(path) + IconSeparator + counter)
	})
}

// onStatusChange handles playback status transitions
func (ui *RootUI) onStatusChange(status model.PlayStatus) {
	fyne.Do(func() {
		ui.refreshPlayButton(status)

		switch status {
		case model.PlayStatusPlaying:
			ui.statusLabel.SetText(ui.localization.GetText(KeyPlaying))
		case model.PlayStatusStopped:
			// A stop on the final frame of a non-looping animation is the
			// natural end of playback
			if !ui.player.Loop() && ui.player.FrameCount() > 0 && ui.player.Index() == ui.player.FrameCount()-1 {
				ui.statusLabel.SetText(ui.localization.GetText(KeyFinished))
			} else {
				ui.statusLabel.SetText(ui.localization.GetText(KeyPaused))
			}
		case model.PlayStatusIdle:
			ui.statusLabel.SetText(ui.localization.GetText(KeySelectAnimation))
		}
	})
}

// refreshPlayButton syncs the play/pause button with the playback status
func (ui *RootUI) refreshPlayButton(status model.PlayStatus) {
	if status.IsPlaying() {
		ui.playBtn.SetText(IconPause + " " + ui.localization.GetText(KeyPause))
	} else {
		ui.playBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlay))
	}
}

// clearFrameDisplay blanks the viewer when no animation is available
func (ui *RootUI) clearFrameDisplay() {
	ui.currentFramePath = ""
	ui.frameImage.File = ""
	ui.frameImage.Refresh()
	ui.frameCounter.SetText(DashPlaceholder)
	ui.statusLabel.SetText(ui.localization.GetText(KeySelectAnimation))
}

// showError reports an error in the status bar and as a popup; the app stays
// usable afterwards
func (ui *RootUI) showError(message string) {
	logger.Sugar.Warnf("ui error: %s", message)
	ui.updateStatus(message)
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// updateStatus updates the status bar
func (ui *RootUI) updateStatus(message string) {
	ui.statusLabel.SetText(message)
}
