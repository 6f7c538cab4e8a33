package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Default is written back
	if app.Preferences().String(KeyExportDir) != dir {
		t.Error("Default export directory should be persisted")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestExportScale(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	scale := settings.GetExportScale()
	if scale != DefaultExportScale {
		t.Errorf("Expected default export scale %d, got %d", DefaultExportScale, scale)
	}

	// Test setting custom value
	settings.SetExportScale(2)
	if got := settings.GetExportScale(); got != 2 {
		t.Errorf("Expected export scale 2, got %d", got)
	}

	// Test boundary values
	settings.SetExportScale(0) // Should be clamped to 1
	if settings.GetExportScale() != MinExportScale {
		t.Error("Export scale should be clamped to minimum 1")
	}

	settings.SetExportScale(20) // Should be clamped to 8
	if settings.GetExportScale() != MaxExportScale {
		t.Error("Export scale should be clamped to maximum 8")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestLastPresetID(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if id := settings.GetLastPresetID(); id != "" {
		t.Errorf("Expected no last preset, got %q", id)
	}

	settings.SetLastPresetID("latin")
	if id := settings.GetLastPresetID(); id != "latin" {
		t.Errorf("Expected last preset 'latin', got %q", id)
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnExport() != DefaultAutoRevealExport {
		t.Error("Auto-reveal should default to off")
	}

	settings.SetAutoRevealOnExport(true)
	if !settings.GetAutoRevealOnExport() {
		t.Error("Auto-reveal should be on after enabling it")
	}
}

func TestFilePaths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPresetFile() != "" || settings.GetScriptFont() != "" {
		t.Error("Optional file paths should default to empty")
	}

	settings.SetPresetFile("/home/me/presets.toml")
	settings.SetScriptFont("/home/me/NotoNastaliqUrdu.ttf")

	if settings.GetPresetFile() != "/home/me/presets.toml" {
		t.Errorf("Unexpected preset file %q", settings.GetPresetFile())
	}
	if settings.GetScriptFont() != "/home/me/NotoNastaliqUrdu.ttf" {
		t.Errorf("Unexpected script font %q", settings.GetScriptFont())
	}
}

func TestGetExportScaleOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetExportScaleOptions()
	found := false
	for _, o := range options {
		if o < MinExportScale || o > MaxExportScale {
			t.Errorf("Scale option %d outside supported range", o)
		}
		if o == DefaultExportScale {
			found = true
		}
	}
	if !found {
		t.Error("Default export scale should be one of the options")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
