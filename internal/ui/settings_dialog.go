package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/frame-player/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	fpsEntry       *widget.Entry
	loopCheck      *widget.Check
	revealCheck    *widget.Check
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is
// invoked after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.fpsEntry = widget.NewEntry()
	sd.fpsEntry.SetPlaceHolder("1-60")

	sd.loopCheck = widget.NewCheck(sd.localization.GetText(KeyDefaultLoop), nil)
	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultFPS)),
		sd.fpsEntry,
		sd.loopCheck,
		sd.revealCheck,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fpsEntry.SetText(strconv.Itoa(sd.settings.GetDefaultFPS()))
	sd.loopCheck.SetChecked(sd.settings.GetDefaultLoop())
	sd.revealCheck.SetChecked(sd.settings.GetAutoReveal())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if fps, err := strconv.Atoi(sd.fpsEntry.Text); err == nil {
		sd.settings.SetDefaultFPS(fps)
	}

	sd.settings.SetDefaultLoop(sd.loopCheck.Checked)
	sd.settings.SetAutoReveal(sd.revealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
