package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyPlay) != "Play" {
		t.Errorf("Expected 'Play', got %s", l.GetText(KeyPlay))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyPlay) != "Играть" {
		t.Errorf("Expected Russian 'Play' translation, got %s", l.GetText(KeyPlay))
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language must not change current, got %s", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_FallbackToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	// Every key present in English must resolve to something in any language
	for key := range l.texts["en"] {
		if text := l.GetText(key); text == "" {
			t.Errorf("Key %s resolved to empty text", key)
		}
	}
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("definitely_missing"); got != "definitely_missing" {
		t.Errorf("Unknown key must fall back to itself, got %s", got)
	}
}

func TestLocalization_AllLanguagesCoverEnglishKeys(t *testing.T) {
	l := NewLocalization()

	for lang, texts := range l.texts {
		if lang == "en" {
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
