package ui

import (
	"bytes"
	"html"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/fontfit"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/render"
)

// Excerpt length shown next to the thumbnail
const ExcerptRunes = 140

// CardRow shows one saved card in the archive list
type CardRow struct {
	widget.BaseWidget

	card         model.SavedCard
	localization *Localization

	// UI components
	thumb        *canvas.Image
	noThumb      *widget.Label
	swatch       *canvas.Rectangle
	folioLabel   *widget.Label
	dateLabel    *widget.Label
	presetLabel  *widget.Label
	excerptLabel *widget.Label

	downloadBtn *widget.Button
	deleteBtn   *widget.Button

	// Callbacks
	onDownload func(card model.SavedCard)
	onDelete   func(card model.SavedCard)
}

// NewCardRow creates an empty card row; call Update to fill it
func NewCardRow(localization *Localization) *CardRow {
	cr := &CardRow{localization: localization}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *CardRow) SetCallbacks(onDownload, onDelete func(card model.SavedCard)) {
	cr.onDownload = onDownload
	cr.onDelete = onDelete
}

// Update fills the row with card, the preset it was made with and its decoded image
func (cr *CardRow) Update(card model.SavedCard, preset model.Preset, thumb image.Image) {
	cr.card = card

	cr.folioLabel.SetText(FolioPrefix + card.FolioNumber())
	date := card.DisplayDate()
	if date == "" {
		date = DashPlaceholder
	}
	cr.dateLabel.SetText(date)
	cr.presetLabel.SetText(preset.Name + MiddleDotSeparator + preset.Language)
	cr.excerptLabel.SetText(Excerpt(card.Content, ExcerptRunes))
	cr.swatch.FillColor = preset.AccentColor()
	cr.swatch.Refresh()

	if thumb != nil {
		cr.thumb.Image = thumb
		cr.thumb.Show()
		cr.noThumb.Hide()
		cr.downloadBtn.Enable()
	} else {
		cr.thumb.Image = nil
		cr.thumb.Hide()
		cr.noThumb.Show()
		cr.downloadBtn.Disable()
	}
	cr.thumb.Refresh()
}

func (cr *CardRow) createUI() {
	cr.thumb = canvas.NewImageFromImage(nil)
	cr.thumb.FillMode = canvas.ImageFillContain
	cr.thumb.ScaleMode = canvas.ImageScaleSmooth
	cr.thumb.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))

	cr.noThumb = widget.NewLabel(cr.localization.GetText(KeyCardHasNoImageFile))
	cr.noThumb.Alignment = fyne.TextAlignCenter
	cr.noThumb.Wrapping = fyne.TextWrapWord
	cr.noThumb.Hide()

	cr.swatch = canvas.NewRectangle(color.Transparent)
	cr.swatch.SetMinSize(fyne.NewSize(SwatchWidth, ThumbnailSize))

	cr.folioLabel = widget.NewLabel("")
	cr.folioLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.dateLabel = widget.NewLabel("")
	cr.dateLabel.Importance = widget.LowImportance
	cr.presetLabel = widget.NewLabel("")
	cr.presetLabel.TextStyle = fyne.TextStyle{Italic: true}
	cr.presetLabel.Truncation = fyne.TextTruncateEllipsis
	cr.excerptLabel = widget.NewLabel("")
	cr.excerptLabel.Wrapping = fyne.TextWrapWord
	cr.excerptLabel.Truncation = fyne.TextTruncateEllipsis

	cr.downloadBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), func() {
		if cr.onDownload != nil {
			cr.onDownload(cr.card)
		}
	})
	cr.downloadBtn.Importance = widget.LowImportance

	cr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if cr.onDelete != nil {
			cr.onDelete(cr.card)
		}
	})
	cr.deleteBtn.Importance = widget.DangerImportance
}

// CreateRenderer creates the widget renderer
func (cr *CardRow) CreateRenderer() fyne.WidgetRenderer {
	thumbArea := container.NewStack(
		canvas.NewRectangle(color.Transparent),
		cr.thumb,
		container.NewCenter(cr.noThumb),
	)
	left := container.NewHBox(cr.swatch, container.NewGridWrap(fyne.NewSize(ThumbnailSize, ThumbnailSize), thumbArea))

	header := container.NewHBox(cr.folioLabel, cr.dateLabel)
	info := container.NewVBox(header, cr.presetLabel, cr.excerptLabel)
	actions := container.NewVBox(cr.downloadBtn, cr.deleteBtn)

	row := container.NewBorder(nil, widget.NewSeparator(), left, actions, info)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows tall enough for the thumbnail
func (cr *CardRow) MinSize() fyne.Size {
	size := cr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

var blockBreaks = strings.NewReplacer("</p>", "</p> ", "<br>", " ", "<br/>", " ")

// Excerpt returns the plain text of markup, whitespace collapsed and cut to limit runes
func Excerpt(markup string, limit int) string {
	text := html.UnescapeString(fontfit.StripMarkup(blockBreaks.Replace(markup)))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// decodeThumbnail decodes the PNG embedded in a card
func decodeThumbnail(card model.SavedCard) (image.Image, error) {
	data, err := render.DecodeDataURI(card.ImageData)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(data))
}
