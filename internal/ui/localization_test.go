package ui

import "testing"

func TestLocalization_AllLanguagesHaveAllKeys(t *testing.T) {
	l := NewLocalization()
	english := l.texts[LangEnglish]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Fatalf("language %s has no texts", code)
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	if got := l.GetText(KeyNavArchive); got != "Архив" {
		t.Errorf("GetText(ru) = %q", got)
	}

	l.texts["ru"] = map[string]string{}
	if got := l.GetText(KeyNavArchive); got != "Archive" {
		t.Errorf("english fallback = %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("key fallback = %q", got)
	}
}

func TestLocalization_UnknownLanguageKeepsCurrent(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")
	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "pt" {
		t.Errorf("GetCurrentLanguage() = %q, want pt", got)
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()
	if got := l.Format(KeyCharacters, 42); got != "42 characters" {
		t.Errorf("Format() = %q", got)
	}
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
		ok     bool
	}{
		{"pt_BR.UTF-8", "pt", true},
		{"ru_RU.UTF-8", "ru", true},
		{"en_GB", "en", true},
		{"ru_RU@euro", "ru", true},
		{"C", "", false},
		{"POSIX", "", false},
		{"", "", false},
		{"ja_JP.UTF-8", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := matchLocale(tt.locale)
			if ok != tt.ok || got != tt.want {
				t.Errorf("matchLocale(%q) = %q, %v; want %q, %v", tt.locale, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSetLanguage_System(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ru_RU.UTF-8")

	l := NewLocalization()
	l.SetLanguage(LangSystem)
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("system language = %q, want ru", got)
	}
}
