package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/compose"
	"github.com/ytget/muse/internal/config"
	"github.com/ytget/muse/internal/export"
	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/platform"
	"github.com/ytget/muse/internal/preset"
	"github.com/ytget/muse/internal/render"
)

// ScriptFonts reports whether the script font for Urdu presets is available
type ScriptFonts interface {
	HasScriptFont() bool
}

// Services are the collaborators the UI routes user actions to
type Services struct {
	Catalog  *preset.Catalog
	Store    *history.Store
	Renderer render.CardRenderer
	Fonts    ScriptFonts
	Composer compose.Composer
	Exporter export.Exporter
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	navigator    *Navigator

	catalog  *preset.Catalog
	store    *history.Store
	renderer render.CardRenderer
	fonts    ScriptFonts
	composer compose.Composer
	exporter export.Exporter

	// Navigation bar
	archiveBtn     *widget.Button
	scriptoriumBtn *widget.Button
	settingsBtn    *widget.Button
	newBtn         *widget.Button
	navButtons     map[model.View]*widget.Button
	viewContainer  *fyne.Container
	home           *homeView
	create         *createView
	settingsScreen *settingsView

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationGen       uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc Services) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		navigator:    NewNavigator(),
		catalog:      svc.Catalog,
		store:        svc.Store,
		renderer:     svc.Renderer,
		fonts:        svc.Fonts,
		composer:     svc.Composer,
		exporter:     svc.Exporter,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	if err := ui.store.LoadErr(); err != nil {
		ui.showNotification(localization.GetText(KeyHistoryUnreadable))
	}
	return ui
}

// Navigator returns the view state holder
func (ui *RootUI) Navigator() *Navigator {
	return ui.navigator
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.archiveBtn = widget.NewButton("", func() { ui.navigate(model.ViewHome) })
	ui.scriptoriumBtn = widget.NewButton("", func() { ui.navigate(model.ViewCreate) })
	ui.settingsBtn = widget.NewButton("", func() { ui.navigate(model.ViewSettings) })
	ui.newBtn = widget.NewButton("", ui.onNewManuscript)
	ui.newBtn.Importance = widget.HighImportance
	ui.navButtons = map[model.View]*widget.Button{
		model.ViewHome:     ui.archiveBtn,
		model.ViewCreate:   ui.scriptoriumBtn,
		model.ViewSettings: ui.settingsBtn,
	}

	navBar := container.NewBorder(nil, nil,
		container.NewHBox(ui.archiveBtn, ui.scriptoriumBtn, ui.settingsBtn),
		ui.newBtn,
	)

	// Notification panel under the navigation bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(navBar, widget.NewSeparator(), ui.notificationContainer)

	ui.home = newHomeView(ui)
	ui.create = newCreateView(ui)
	ui.settingsScreen = newSettingsView(ui)
	ui.viewContainer = container.NewStack()

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.viewContainer))

	ui.navigator.SetOnChange(ui.showView)
	ui.refreshNavTexts()
	ui.showView(ui.navigator.Current())

	log.Printf("ui setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	newItem := fyne.NewMenuItem(ui.localization.GetText(KeyNewManuscript), ui.onNewManuscript)

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
		fyne.NewMenu(ui.localization.GetText(KeyFile), newItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// SetCatalog swaps the preset catalog, e.g. after the user preset file changed.
// It must run on the UI goroutine.
func (ui *RootUI) SetCatalog(catalog *preset.Catalog) {
	ui.catalog = catalog
	ui.create.reloadPresets()
	ui.home.list.Refresh()
}

// navigate switches screens; unknown views are logged and ignored
func (ui *RootUI) navigate(v model.View) {
	if err := ui.navigator.Navigate(v); err != nil {
		log.Printf("navigation failed: %v", err)
	}
}

// showView swaps the visible screen and refreshes its data
func (ui *RootUI) showView(v model.View) {
	var screen fyne.CanvasObject
	switch v {
	case model.ViewCreate:
		ui.create.show()
		screen = ui.create.content
	case model.ViewSettings:
		ui.settingsScreen.show()
		screen = ui.settingsScreen.content
	default:
		ui.home.show(ui.store.Entries())
		screen = ui.home.content
	}

	for view, btn := range ui.navButtons {
		if view == v {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}

	ui.viewContainer.Objects = []fyne.CanvasObject{screen}
	ui.viewContainer.Refresh()
}

func (ui *RootUI) onNewManuscript() {
	ui.navigate(model.ViewCreate)
	ui.create.reset()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.refreshNavTexts()
	ui.home.refreshTexts()
	ui.create.refreshTexts()
	ui.settingsScreen.refreshTexts()
}

func (ui *RootUI) refreshNavTexts() {
	ui.archiveBtn.SetText(ui.localization.GetText(KeyNavArchive))
	ui.scriptoriumBtn.SetText(ui.localization.GetText(KeyNavScriptorium))
	ui.settingsBtn.SetText(ui.localization.GetText(KeySettings))
	ui.newBtn.SetText(IconQuill + " " + ui.localization.GetText(KeyNewManuscript))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved pushes changed settings into the running services
func (ui *RootUI) onSettingsSaved(change SettingsChange) {
	if change.ExportDir {
		dir := ui.settings.GetExportDirectory()
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("failed to create export directory %s: %v", dir, err)
		}
		ui.exporter.SetExportDirectory(dir)
	}
	if change.ExportScale {
		ui.composer.SetScale(float64(ui.settings.GetExportScale()))
	}
	if change.Language {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
	if change.RestartRequired {
		ui.showNotification(ui.localization.GetText(KeyRestartRequired))
	}
	ui.showView(ui.navigator.Current())
}

// onDownloadCard writes the stored image of a card to the export directory
func (ui *RootUI) onDownloadCard(card model.SavedCard) {
	path, err := ui.exporter.SaveCardImage(card, time.Now())
	if errors.Is(err, export.ErrNoImage) {
		dialog.ShowInformation(ui.localization.GetText(KeyDownload), ui.localization.GetText(KeyNoImage), ui.window)
		return
	}
	if err != nil {
		log.Printf("failed to save image of card %s: %v", card.ID, err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.showNotification(ui.localization.Format(KeyImageSaved, path))
	if ui.settings.GetAutoRevealOnExport() {
		ui.reveal(path)
	}
}

// onDeleteCard removes a card from the archive
func (ui *RootUI) onDeleteCard(card model.SavedCard) {
	entries := ui.store.Remove(card.ID)
	log.Printf("card %s removed, %d left", card.ID, len(entries))
	ui.home.show(entries)
}

// incinerate erases the whole archive
func (ui *RootUI) incinerate() {
	entries := ui.store.Clear()
	log.Printf("archive cleared")
	ui.home.show(entries)
}

// reveal opens the system file manager at path
func (ui *RootUI) reveal(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("failed to reveal %s: %v", path, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// showNotification displays a message under the navigation bar for a few seconds
func (ui *RootUI) showNotification(message string) {
	ui.notificationGen++
	gen := ui.notificationGen

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if gen == ui.notificationGen {
				ui.notificationContainer.Hide()
			}
		})
	})
}
