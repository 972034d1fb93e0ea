package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyCharacter        = "character"
	KeyAnimation        = "animation"
	KeyBrowser          = "browser"
	KeyViewer           = "viewer"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyLoop             = "loop"
	KeyFPS              = "fps"
	KeyFrame            = "frame"
	KeyReady            = "ready"
	KeyPlaying          = "playing"
	KeyPaused           = "paused"
	KeyFinished         = "finished"
	KeySelectAnimation  = "select_animation"
	KeyNoAnimation      = "no_animation"
	KeyEmptyAnimation   = "empty_animation"
	KeyScanFailed       = "scan_failed"
	KeyNoCharacters     = "no_characters"
	KeyRevealFrame      = "reveal_frame"
	KeyRevealFailed     = "reveal_failed"
	KeyOpenFrame        = "open_frame"
	KeyOpenFailed       = "open_failed"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDefaultFPS       = "default_fps"
	KeyDefaultLoop      = "default_loop"
	KeyAutoReveal       = "auto_reveal"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyShortcutsTitle   = "shortcuts_title"
	KeyShortcutsBody    = "shortcuts_body"
	KeyLoadedAnimation  = "loaded_animation"
	KeyLoadedCharacters = "loaded_characters"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyCharacter:        "Character:",
		KeyAnimation:        "Animation:",
		KeyBrowser:          "File Browser",
		KeyViewer:           "Animation Viewer",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyLoop:             "Loop",
		KeyFPS:              "FPS:",
		KeyFrame:            "Frame",
		KeyReady:            "Ready",
		KeyPlaying:          "Playing",
		KeyPaused:           "Paused",
		KeyFinished:         "Animation finished",
		KeySelectAnimation:  "Select an animation to play",
		KeyNoAnimation:      "No animation selected",
		KeyEmptyAnimation:   "No frames found in animation",
		KeyScanFailed:       "Failed to scan directory",
		KeyNoCharacters:     "No characters found in directory",
		KeyRevealFrame:      "Reveal Frame",
		KeyRevealFailed:     "Error revealing frame",
		KeyOpenFrame:        "Open Frame",
		KeyOpenFailed:       "Error opening frame",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDefaultFPS:       "Default FPS",
		KeyDefaultLoop:      "Loop by default",
		KeyAutoReveal:       "Reveal frame on load",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyShortcutsTitle:   "Keyboard Shortcuts",
		KeyShortcutsBody:    "Space/P — Play/Pause\n← → — Prev/Next frame\nHome/End — First/Last frame\nW/S — Prev/Next character\nA/D — Prev/Next animation\n↑ ↓ — FPS up/down\nQ/Esc — Quit",
		KeyLoadedAnimation:  "Loaded animation",
		KeyLoadedCharacters: "Loaded characters",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyCharacter:        "Персонаж:",
		KeyAnimation:        "Анимация:",
		KeyBrowser:          "Браузер файлов",
		KeyViewer:           "Просмотр анимации",
		KeyPlay:             "Играть",
		KeyPause:            "Пауза",
		KeyLoop:             "Цикл",
		KeyFPS:              "FPS:",
		KeyFrame:            "Кадр",
		KeyReady:            "Готово",
		KeyPlaying:          "Воспроизведение",
		KeyPaused:           "Пауза",
		KeyFinished:         "Анимация завершена",
		KeySelectAnimation:  "Выберите анимацию",
		KeyNoAnimation:      "Анимация не выбрана",
		KeyEmptyAnimation:   "В анимации нет кадров",
		KeyScanFailed:       "Не удалось прочитать каталог",
		KeyNoCharacters:     "Персонажи не найдены",
		KeyRevealFrame:      "Показать файл",
		KeyRevealFailed:     "Не удалось показать файл",
		KeyOpenFrame:        "Открыть кадр",
		KeyOpenFailed:       "Не удалось открыть кадр",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDefaultFPS:       "FPS по умолчанию",
		KeyDefaultLoop:      "Цикл по умолчанию",
		KeyAutoReveal:       "Показывать кадр при загрузке",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены!",
		KeyShortcutsTitle:   "Горячие клавиши",
		KeyShortcutsBody:    "Space/P — Играть/Пауза\n← → — Пред./след. кадр\nHome/End — Первый/последний кадр\nW/S — Пред./след. персонаж\nA/D — Пред./след. анимация\n↑ ↓ — FPS выше/ниже\nQ/Esc — Выход",
		KeyLoadedAnimation:  "Загружена анимация",
		KeyLoadedCharacters: "Загружены персонажи",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyCharacter:        "Personagem:",
		KeyAnimation:        "Animação:",
		KeyBrowser:          "Navegador de arquivos",
		KeyViewer:           "Visualizador de animação",
		KeyPlay:             "Reproduzir",
		KeyPause:            "Pausar",
		KeyLoop:             "Repetir",
		KeyFPS:              "FPS:",
		KeyFrame:            "Quadro",
		KeyReady:            "Pronto",
		KeyPlaying:          "Reproduzindo",
		KeyPaused:           "Pausado",
		KeyFinished:         "Animação concluída",
		KeySelectAnimation:  "Selecione uma animação",
		KeyNoAnimation:      "Nenhuma animação selecionada",
		KeyEmptyAnimation:   "Nenhum quadro na animação",
		KeyScanFailed:       "Falha ao ler o diretório",
		KeyNoCharacters:     "Nenhum personagem encontrado",
		KeyRevealFrame:      "Mostrar arquivo",
		KeyRevealFailed:     "Erro ao mostrar arquivo",
		KeyOpenFrame:        "Abrir quadro",
		KeyOpenFailed:       "Erro ao abrir quadro",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyDefaultFPS:       "FPS padrão",
		KeyDefaultLoop:      "Repetir por padrão",
		KeyAutoReveal:       "Mostrar quadro ao carregar",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas!",
		KeyShortcutsTitle:   "Atalhos de teclado",
		KeyShortcutsBody:    "Space/P — Reproduzir/Pausar\n← → — Quadro ant./seg.\nHome/End — Primeiro/último quadro\nW/S — Personagem ant./seg.\nA/D — Animação ant./seg.\n↑ ↓ — FPS mais/menos\nQ/Esc — Sair",
		KeyLoadedAnimation:  "Animação carregada",
		KeyLoadedCharacters: "Personagens carregados",
	}
}
