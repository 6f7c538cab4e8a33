package ui

import (
	"context"
	"errors"
	"image"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/compose"
	"github.com/ytget/muse/internal/fontfit"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/platform"
	"github.com/ytget/muse/internal/render"
)

// createView is the scriptorium: an editor, a collection picker and a live preview
type createView struct {
	ui *RootUI

	selected model.Preset

	editor        *widget.Entry
	charLabel     *widget.Label
	collectionBox *fyne.Container
	collectionLbl *widget.Label
	presetButtons map[string]*widget.Button
	descLabel     *widget.Label
	scriptNotice  *widget.Label
	saveBtn       *widget.Button
	successLabel  *widget.Label
	openBtn       *widget.Button
	lastImage     string
	preview       *canvas.Image
	previewTitle  *widget.Label
	resLabel      *widget.Label
	originLabel   *widget.Label
	content       fyne.CanvasObject

	previewTimer *time.Timer
	previewGen   uint64
	noticeGen    uint64
}

func newCreateView(ui *RootUI) *createView {
	cv := &createView{
		ui:            ui,
		selected:      ui.catalog.Resolve(ui.settings.GetLastPresetID()),
		presetButtons: make(map[string]*widget.Button),
	}

	cv.editor = widget.NewMultiLineEntry()
	cv.editor.Wrapping = fyne.TextWrapWord
	cv.editor.SetMinRowsVisible(8)
	cv.editor.OnChanged = func(string) { cv.onContentChanged() }

	cv.charLabel = widget.NewLabel("")
	cv.charLabel.Importance = widget.LowImportance

	cv.collectionLbl = widget.NewLabel("")
	cv.collectionLbl.TextStyle = fyne.TextStyle{Bold: true}
	cv.collectionBox = container.NewAdaptiveGrid(3)
	cv.buildPresetButtons()

	cv.descLabel = widget.NewLabel("")
	cv.descLabel.Wrapping = fyne.TextWrapWord
	cv.descLabel.TextStyle = fyne.TextStyle{Italic: true}

	cv.scriptNotice = widget.NewLabel("")
	cv.scriptNotice.Wrapping = fyne.TextWrapWord
	cv.scriptNotice.Importance = widget.WarningImportance
	cv.scriptNotice.Hide()

	cv.saveBtn = widget.NewButton("", cv.onSave)
	cv.saveBtn.Importance = widget.HighImportance

	cv.successLabel = widget.NewLabel("")
	cv.successLabel.Alignment = fyne.TextAlignCenter
	cv.successLabel.TextStyle = fyne.TextStyle{Italic: true}
	cv.successLabel.Hide()

	cv.openBtn = widget.NewButtonWithIcon("", theme.FileImageIcon(), cv.onOpenImage)
	cv.openBtn.Importance = widget.LowImportance
	cv.openBtn.Hide()

	cv.preview = canvas.NewImageFromImage(nil)
	cv.preview.FillMode = canvas.ImageFillContain
	cv.preview.ScaleMode = canvas.ImageScaleSmooth
	cv.preview.SetMinSize(fyne.NewSize(PreviewWidth, PreviewHeight))

	cv.previewTitle = widget.NewLabel("")
	cv.previewTitle.TextStyle = fyne.TextStyle{Bold: true}
	cv.resLabel = widget.NewLabel("")
	cv.resLabel.Importance = widget.LowImportance
	cv.originLabel = widget.NewLabel("")
	cv.originLabel.Importance = widget.LowImportance
	cv.originLabel.Truncation = fyne.TextTruncateEllipsis

	editorPane := container.NewVBox(
		cv.charLabel,
		container.NewGridWrap(fyne.NewSize(PreviewWidth, EditorMinHeight), cv.editor),
		widget.NewSeparator(),
		cv.collectionLbl,
		cv.collectionBox,
		cv.descLabel,
		cv.scriptNotice,
		widget.NewSeparator(),
		cv.saveBtn,
		cv.successLabel,
		cv.openBtn,
	)
	previewPane := container.NewVBox(
		container.NewBorder(nil, nil, cv.previewTitle, cv.resLabel),
		container.NewCenter(cv.preview),
		cv.originLabel,
	)

	cv.content = sideBySide(editorPane, previewPane)

	cv.refreshTexts()
	cv.markSelected()
	return cv
}

// show is called every time the view becomes active
func (cv *createView) show() {
	cv.refreshResolution()
	cv.refreshScriptNotice()
	cv.updateSaveState()
	if cv.preview.Image == nil {
		cv.schedulePreview()
	}
}

// reset clears the editor for a new manuscript
func (cv *createView) reset() {
	cv.editor.SetText("")
	cv.ui.window.Canvas().Focus(cv.editor)
}

func (cv *createView) refreshTexts() {
	l := cv.ui.localization
	cv.editor.SetPlaceHolder(render.Placeholder)
	cv.previewTitle.SetText(l.GetText(KeyPreview))
	cv.updateCharCount()
	cv.updateSaveState()
	cv.successLabel.SetText(l.GetText(KeyDocumentedHint))
	cv.openBtn.SetText(l.GetText(KeyOpenImage))
	cv.collectionLbl.SetText(l.GetText(KeyCollection))
	cv.refreshResolution()
	cv.refreshPresetInfo()
}

func (cv *createView) refreshResolution() {
	scale := cv.ui.settings.GetExportScale()
	size := render.Size(float64(scale))
	cv.resLabel.SetText(cv.ui.localization.Format(KeyResolution, scale, size.X, size.Y))
}

func (cv *createView) refreshPresetInfo() {
	p := cv.selected
	cv.descLabel.SetText(p.Description)
	cv.originLabel.SetText(strings.Join([]string{
		cv.ui.localization.GetText(KeyExportFormat),
		p.Language,
		p.Name,
		p.ID,
	}, MiddleDotSeparator))
	cv.refreshScriptNotice()
}

// refreshScriptNotice warns that Urdu presets render without glyphs until a
// script font is configured
func (cv *createView) refreshScriptNotice() {
	fonts := cv.ui.fonts
	if cv.selected.Font == model.FontUrdu && (fonts == nil || !fonts.HasScriptFont()) {
		cv.scriptNotice.SetText(cv.ui.localization.GetText(KeyScriptFontMissing))
		cv.scriptNotice.Show()
		return
	}
	cv.scriptNotice.Hide()
}

func (cv *createView) onContentChanged() {
	cv.openBtn.Hide()
	cv.updateCharCount()
	cv.updateSaveState()
	cv.schedulePreview()
}

func (cv *createView) updateCharCount() {
	cv.charLabel.SetText(cv.ui.localization.Format(KeyCharacters, fontfit.PlainLength(cv.editor.Text)))
}

// updateSaveState disables the save button for empty content and while a run is in flight
func (cv *createView) updateSaveState() {
	l := cv.ui.localization
	if cv.ui.composer.Busy() {
		cv.saveBtn.SetText(l.GetText(KeyDocumenting))
		cv.saveBtn.Disable()
		return
	}
	cv.saveBtn.SetText(l.GetText(KeyDocumentAndSave))
	if strings.TrimSpace(fontfit.StripMarkup(cv.editor.Text)) == "" {
		cv.saveBtn.Disable()
	} else {
		cv.saveBtn.Enable()
	}
}

// buildPresetButtons fills the picker with the visible presets of the catalog
func (cv *createView) buildPresetButtons() {
	cv.collectionBox.RemoveAll()
	cv.presetButtons = make(map[string]*widget.Button)
	for _, p := range cv.ui.catalog.Visible() {
		p := p
		btn := widget.NewButton(p.Name, func() { cv.selectPreset(p) })
		cv.presetButtons[p.ID] = btn
		cv.collectionBox.Add(btn)
	}
}

// reloadPresets rebuilds the picker after the catalog changed, keeping the
// selection when the preset still exists
func (cv *createView) reloadPresets() {
	cv.selected = cv.ui.catalog.Resolve(cv.selected.ID)
	cv.buildPresetButtons()
	cv.markSelected()
	cv.refreshPresetInfo()
	cv.schedulePreview()
}

func (cv *createView) selectPreset(p model.Preset) {
	cv.selected = p
	cv.ui.settings.SetLastPresetID(p.ID)
	cv.markSelected()
	cv.refreshPresetInfo()
	cv.schedulePreview()
}

func (cv *createView) markSelected() {
	for id, btn := range cv.presetButtons {
		if id == cv.selected.ID {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// schedulePreview re-renders the preview once typing pauses
func (cv *createView) schedulePreview() {
	cv.previewGen++
	gen := cv.previewGen
	content := cv.editor.Text
	preset := cv.selected

	if cv.previewTimer != nil {
		cv.previewTimer.Stop()
	}
	cv.previewTimer = time.AfterFunc(PreviewDebounce, func() {
		cv.renderPreview(gen, content, preset)
	})
}

func (cv *createView) renderPreview(gen uint64, content string, preset model.Preset) {
	img, err := cv.ui.renderer.Render(context.Background(), content, preset, PreviewScale)
	if err != nil {
		log.Printf("failed to render preview: %v", err)
		return
	}
	fyne.Do(func() {
		if gen != cv.previewGen {
			return
		}
		cv.setPreview(img)
	})
}

func (cv *createView) setPreview(img image.Image) {
	cv.preview.Image = img
	cv.preview.Refresh()
}

// onSave renders the card at export scale, records it and writes the image
func (cv *createView) onSave() {
	content := cv.editor.Text
	preset := cv.selected

	cv.saveBtn.SetText(cv.ui.localization.GetText(KeyDocumenting))
	cv.saveBtn.Disable()

	go func() {
		result, err := cv.ui.composer.GenerateAndSave(context.Background(), content, preset, time.Now())
		fyne.Do(func() {
			cv.onSaved(result, err)
		})
	}()
}

func (cv *createView) onSaved(result *compose.Result, err error) {
	defer cv.updateSaveState()
	l := cv.ui.localization

	switch {
	case errors.Is(err, compose.ErrBusy):
		return
	case errors.Is(err, compose.ErrEmptyContent):
		cv.ui.showNotification(l.GetText(KeyNothingToSave))
		return
	case err != nil && result == nil:
		log.Printf("failed to generate and save card: %v", err)
		cv.ui.showNotification(l.GetText(KeyRenderFailed))
		return
	case err != nil:
		// recorded in history, file write failed
		log.Printf("failed to save card image: %v", err)
		cv.ui.showNotification(err.Error())
		return
	}

	cv.showSuccess()
	cv.lastImage = result.ImagePath
	cv.openBtn.Show()
	if cv.ui.settings.GetAutoRevealOnExport() {
		cv.ui.reveal(result.ImagePath)
	}
}

// onOpenImage opens the last saved image with the default viewer
func (cv *createView) onOpenImage() {
	if cv.lastImage == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(cv.lastImage); err != nil {
		log.Printf("failed to open %s: %v", cv.lastImage, err)
		cv.ui.showNotification(cv.ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// showSuccess shows the documented notice for a few seconds
func (cv *createView) showSuccess() {
	cv.noticeGen++
	gen := cv.noticeGen
	cv.successLabel.Show()
	time.AfterFunc(SuccessNoticeDuration, func() {
		fyne.Do(func() {
			if gen == cv.noticeGen {
				cv.successLabel.Hide()
			}
		})
	})
}
