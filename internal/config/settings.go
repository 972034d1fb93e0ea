package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/frame-player/internal/playback"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultFPS  = "default_fps"
	KeyDefaultLoop = "default_loop"
	KeyLanguage    = "app_language"
	KeyAutoReveal  = "auto_reveal_frame"
)

// Default values
const (
	DefaultFPS        = playback.DefaultFPS
	DefaultLoop       = true
	DefaultLanguage   = "system"
	DefaultAutoReveal = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultFPS returns the configured startup frame rate
func (s *Settings) GetDefaultFPS() int {
	value := s.app.Preferences().Int(KeyDefaultFPS)
	if value <= 0 {
		s.SetDefaultFPS(DefaultFPS)
		return DefaultFPS
	}
	if value > playback.MaxFPS {
		return playback.MaxFPS
	}
	return value
}

// SetDefaultFPS sets the startup frame rate, clamped to the playable range
func (s *Settings) SetDefaultFPS(fps int) {
	if fps < playback.MinFPS {
		fps = playback.MinFPS
	}
	if fps > playback.MaxFPS {
		fps = playback.MaxFPS
	}
	s.app.Preferences().SetInt(KeyDefaultFPS, fps)
}

// GetDefaultLoop returns whether playback loops by default
func (s *Settings) GetDefaultLoop() bool {
	return s.app.Preferences().BoolWithFallback(KeyDefaultLoop, DefaultLoop)
}

// SetDefaultLoop sets whether playback loops by default
func (s *Settings) SetDefaultLoop(loop bool) {
	s.app.Preferences().SetBool(KeyDefaultLoop, loop)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoReveal returns whether the current frame is revealed in the file
// manager whenever an animation finishes loading
func (s *Settings) GetAutoReveal() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReveal, DefaultAutoReveal)
}

// SetAutoReveal sets the auto-reveal behavior
func (s *Settings) SetAutoReveal(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoReveal, autoReveal)
}
