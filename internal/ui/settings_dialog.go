package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/config"
)

// SettingsChange describes what a saved settings dialog changed
type SettingsChange struct {
	ExportDir       bool
	ExportScale     bool
	Language        bool
	RestartRequired bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// UI components
	exportDirEntry   *widget.Entry
	scaleSelect      *widget.Select
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
	presetFileEntry  *widget.Entry
	scriptFontEntry  *widget.Entry
	languageByLabel  map[string]string
	languageLabelFor map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsChange)) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Export scale
	scaleOptions := []string{}
	for _, scale := range sd.settings.GetExportScaleOptions() {
		scaleOptions = append(scaleOptions, strconv.Itoa(scale)+"x")
	}
	sd.scaleSelect = widget.NewSelect(scaleOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	// Language selection, shown by display name
	sd.languageByLabel = make(map[string]string)
	sd.languageLabelFor = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		sd.languageLabelFor[code] = label
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Files read at startup
	sd.presetFileEntry = widget.NewEntry()
	sd.presetFileEntry.SetPlaceHolder("presets.toml")
	presetRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(l.GetText(KeyBrowse), func() { sd.onBrowseFile(sd.presetFileEntry, ".toml") }),
		sd.presetFileEntry)

	sd.scriptFontEntry = widget.NewEntry()
	sd.scriptFontEntry.SetPlaceHolder("NotoNastaliqUrdu-Regular.ttf")
	fontRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(l.GetText(KeyBrowse), func() { sd.onBrowseFile(sd.scriptFontEntry, ".ttf", ".otf") }),
		sd.scriptFontEntry)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDataSection)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(l.GetText(KeyExportScale)+":"),
		sd.scaleSelect,

		sd.autoRevealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyPresetFile)+":"),
		presetRow,

		widget.NewLabel(l.GetText(KeyScriptFont)+":"),
		fontRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.scaleSelect.SetSelected(strconv.Itoa(sd.settings.GetExportScale()) + "x")
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
	sd.languageSelect.SetSelected(sd.languageLabelFor[sd.settings.GetLanguage()])
	sd.presetFileEntry.SetText(sd.settings.GetPresetFile())
	sd.scriptFontEntry.SetText(sd.settings.GetScriptFont())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseFile lets the user pick a file for entry
func (sd *SettingsDialog) onBrowseFile(entry *widget.Entry, extensions ...string) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		entry.SetText(rc.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the dialog values to settings and reports what changed
func (sd *SettingsDialog) apply() SettingsChange {
	var change SettingsChange

	if dir := sd.exportDirEntry.Text; dir != "" && dir != sd.settings.GetExportDirectory() {
		sd.settings.SetExportDirectory(dir)
		change.ExportDir = true
	}

	if sd.scaleSelect.Selected != "" {
		scaleStr := sd.scaleSelect.Selected[:len(sd.scaleSelect.Selected)-1]
		if scale, err := strconv.Atoi(scaleStr); err == nil && scale != sd.settings.GetExportScale() {
			sd.settings.SetExportScale(scale)
			change.ExportScale = true
		}
	}

	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		change.Language = true
	}

	if sd.presetFileEntry.Text != sd.settings.GetPresetFile() {
		sd.settings.SetPresetFile(sd.presetFileEntry.Text)
		change.RestartRequired = true
	}
	if sd.scriptFontEntry.Text != sd.settings.GetScriptFont() {
		sd.settings.SetScriptFont(sd.scriptFontEntry.Text)
		change.RestartRequired = true
	}

	if sd.onSaved != nil {
		sd.onSaved(change)
	}
	return change
}
