package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/export"
)

// settingsView holds archive maintenance and a shortcut to preferences
type settingsView struct {
	ui *RootUI

	titleLabel      *widget.Label
	dataLabel       *widget.Label
	ledgerBtn       *widget.Button
	ledgerHint      *widget.Label
	incinerateBtn   *widget.Button
	incinerateHint  *widget.Label
	prefsBtn        *widget.Button
	dirLabel        *widget.Label
	philosophyTitle *widget.Label
	philosophy      *widget.Label
	content         fyne.CanvasObject
}

func newSettingsView(ui *RootUI) *settingsView {
	sv := &settingsView{ui: ui}

	sv.titleLabel = widget.NewLabel("")
	sv.titleLabel.Alignment = fyne.TextAlignCenter
	sv.titleLabel.TextStyle = fyne.TextStyle{Bold: true, Italic: true}

	sv.dataLabel = widget.NewLabel("")
	sv.dataLabel.TextStyle = fyne.TextStyle{Bold: true}

	sv.ledgerBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), sv.onExportLedger)
	sv.ledgerHint = widget.NewLabel("")
	sv.ledgerHint.Wrapping = fyne.TextWrapWord
	sv.ledgerHint.Importance = widget.LowImportance

	sv.incinerateBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), sv.onIncinerate)
	sv.incinerateBtn.Importance = widget.DangerImportance
	sv.incinerateHint = widget.NewLabel("")
	sv.incinerateHint.Wrapping = fyne.TextWrapWord
	sv.incinerateHint.Importance = widget.LowImportance

	sv.prefsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	sv.dirLabel = widget.NewLabel("")
	sv.dirLabel.Importance = widget.LowImportance
	sv.dirLabel.Truncation = fyne.TextTruncateEllipsis

	sv.philosophyTitle = widget.NewLabel("")
	sv.philosophyTitle.TextStyle = fyne.TextStyle{Bold: true}
	sv.philosophy = widget.NewLabel("")
	sv.philosophy.Wrapping = fyne.TextWrapWord
	sv.philosophy.Alignment = fyne.TextAlignCenter
	sv.philosophy.TextStyle = fyne.TextStyle{Italic: true}

	body := container.NewVBox(
		sv.titleLabel,
		widget.NewSeparator(),
		sv.dataLabel,
		sv.ledgerBtn,
		sv.ledgerHint,
		sv.incinerateBtn,
		sv.incinerateHint,
		widget.NewSeparator(),
		sv.prefsBtn,
		sv.dirLabel,
		widget.NewSeparator(),
		sv.philosophyTitle,
		sv.philosophy,
	)
	sv.content = container.NewVScroll(container.NewPadded(body))

	sv.refreshTexts()
	return sv
}

// show is called every time the view becomes active
func (sv *settingsView) show() {
	sv.dirLabel.SetText(IconFolder + " " + sv.ui.exporter.ExportDirectory())
}

func (sv *settingsView) refreshTexts() {
	l := sv.ui.localization
	sv.titleLabel.SetText(l.GetText(KeyAtelier))
	sv.dataLabel.SetText(l.GetText(KeyDataSection))
	sv.ledgerBtn.SetText(l.GetText(KeyExportLedger))
	sv.ledgerHint.SetText(l.GetText(KeyLedgerHint))
	sv.incinerateBtn.SetText(l.GetText(KeyIncinerate))
	sv.incinerateHint.SetText(l.GetText(KeyIncinerateHint))
	sv.prefsBtn.SetText(l.GetText(KeyPreferences))
	sv.philosophyTitle.SetText(l.GetText(KeyPhilosophyTitle))
	sv.philosophy.SetText(l.GetText(KeyPhilosophy))
	sv.show()
}

// onExportLedger writes the whole history as JSON; an empty archive is refused
func (sv *settingsView) onExportLedger() {
	l := sv.ui.localization
	path, err := sv.ui.exporter.ExportLedger(sv.ui.store.Entries(), time.Now())
	if errors.Is(err, export.ErrEmptyLedger) {
		dialog.ShowInformation(l.GetText(KeyExportLedger), l.GetText(KeyLedgerEmpty), sv.ui.window)
		return
	}
	if err != nil {
		log.Printf("failed to export ledger: %v", err)
		dialog.ShowError(err, sv.ui.window)
		return
	}

	sv.ui.showNotification(l.Format(KeyLedgerExported, path))
	if sv.ui.settings.GetAutoRevealOnExport() {
		sv.ui.reveal(path)
	}
}

// onIncinerate erases the archive after confirmation
func (sv *settingsView) onIncinerate() {
	l := sv.ui.localization
	dialog.ShowConfirm(l.GetText(KeyIncinerate), l.GetText(KeyIncinerateConfirm), func(confirmed bool) {
		if !confirmed {
			return
		}
		sv.ui.incinerate()
		dialog.ShowInformation(l.GetText(KeyIncinerate), l.GetText(KeyIncinerated), sv.ui.window)
	}, sv.ui.window)
}
