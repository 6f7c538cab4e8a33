package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/muse/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyExportScale      = "export_scale"
	KeyLanguage         = "app_language"
	KeyLastPreset       = "last_preset_id"
	KeyAutoRevealExport = "auto_reveal_on_export"
	KeyPresetFile       = "user_preset_file"
	KeyScriptFont       = "script_font_path"
)

// Default values
const (
	DefaultExportScale      = 4
	MinExportScale          = 1
	MaxExportScale          = 8
	DefaultLanguage         = "system"
	DefaultAutoRevealExport = false
	FallbackExportDir       = "/tmp/muse"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory images and ledgers are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetExportScale returns the pixel ratio used for exported images
func (s *Settings) GetExportScale() int {
	value := s.app.Preferences().Int(KeyExportScale)
	if value <= 0 {
		s.SetExportScale(DefaultExportScale)
		return DefaultExportScale
	}
	return value
}

// SetExportScale sets the export pixel ratio, clamped to the supported range
func (s *Settings) SetExportScale(scale int) {
	if scale < MinExportScale {
		scale = MinExportScale
	}
	if scale > MaxExportScale {
		scale = MaxExportScale
	}
	s.app.Preferences().SetInt(KeyExportScale, scale)
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

// GetLastPresetID returns the preset selected in the previous session, or ""
func (s *Settings) GetLastPresetID() string {
	return s.app.Preferences().String(KeyLastPreset)
}

// SetLastPresetID remembers the selected preset
func (s *Settings) SetLastPresetID(id string) {
	s.app.Preferences().SetString(KeyLastPreset, id)
}

// GetAutoRevealOnExport returns whether to reveal exported files in the file manager
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether to reveal exported files
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}

// GetPresetFile returns the path of the user preset file, or ""
func (s *Settings) GetPresetFile() string {
	return s.app.Preferences().String(KeyPresetFile)
}

// SetPresetFile sets the user preset file; it is read on next start
func (s *Settings) SetPresetFile(path string) {
	s.app.Preferences().SetString(KeyPresetFile, path)
}

// GetScriptFont returns the font file used for Urdu presets, or ""
func (s *Settings) GetScriptFont() string {
	return s.app.Preferences().String(KeyScriptFont)
}

// SetScriptFont sets the font file used for Urdu presets; it is read on next start
func (s *Settings) SetScriptFont(path string) {
	s.app.Preferences().SetString(KeyScriptFont, path)
}

// GetExportScaleOptions returns the pixel ratios offered in settings
func (s *Settings) GetExportScaleOptions() []int {
	return []int{1, 2, 3, 4, 6, 8}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
