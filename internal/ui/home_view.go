package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
)

// homeView lists the archive, newest first
type homeView struct {
	ui *RootUI

	entries history.Log
	thumbs  map[string]image.Image

	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	countLabel    *widget.Label
	list          *widget.List
	empty         *fyne.Container
	emptyLabel    *widget.Label
	enterBtn      *widget.Button
	body          *fyne.Container
	content       fyne.CanvasObject
}

func newHomeView(ui *RootUI) *homeView {
	hv := &homeView{
		ui:     ui,
		thumbs: make(map[string]image.Image),
	}

	hv.titleLabel = widget.NewLabel("")
	hv.titleLabel.Alignment = fyne.TextAlignCenter
	hv.titleLabel.TextStyle = fyne.TextStyle{Italic: true, Bold: true}
	hv.subtitleLabel = widget.NewLabel("")
	hv.subtitleLabel.Alignment = fyne.TextAlignCenter
	hv.subtitleLabel.Importance = widget.LowImportance
	hv.countLabel = widget.NewLabel("")
	hv.countLabel.Alignment = fyne.TextAlignCenter
	hv.countLabel.Importance = widget.LowImportance

	hv.list = widget.NewList(
		func() int { return len(hv.entries) },
		func() fyne.CanvasObject {
			row := NewCardRow(ui.localization)
			row.SetCallbacks(ui.onDownloadCard, ui.onDeleteCard)
			return row
		},
		hv.updateItem,
	)

	hv.emptyLabel = widget.NewLabel("")
	hv.emptyLabel.Alignment = fyne.TextAlignCenter
	hv.emptyLabel.TextStyle = fyne.TextStyle{Italic: true}
	hv.enterBtn = widget.NewButton("", func() { ui.navigate(model.ViewCreate) })
	hv.enterBtn.Importance = widget.LowImportance
	hv.empty = container.NewCenter(container.NewVBox(hv.emptyLabel, hv.enterBtn))

	hv.body = container.NewStack(hv.list, hv.empty)
	header := container.NewVBox(hv.titleLabel, hv.subtitleLabel, hv.countLabel, widget.NewSeparator())
	hv.content = container.NewBorder(header, nil, nil, nil, hv.body)

	hv.refreshTexts()
	return hv
}

// show replaces the listed entries
func (hv *homeView) show(entries history.Log) {
	hv.entries = entries
	hv.pruneThumbs()

	if len(entries) == 0 {
		hv.list.Hide()
		hv.empty.Show()
	} else {
		hv.empty.Hide()
		hv.list.Show()
	}
	hv.countLabel.SetText(hv.ui.localization.Format(KeyArchiveCount, len(entries)))
	hv.list.UnselectAll()
	hv.list.Refresh()
}

func (hv *homeView) refreshTexts() {
	l := hv.ui.localization
	hv.titleLabel.SetText(l.GetText(KeyLibraryTitle))
	hv.subtitleLabel.SetText(l.GetText(KeyLibrarySubtitle))
	hv.countLabel.SetText(l.Format(KeyArchiveCount, len(hv.entries)))
	hv.emptyLabel.SetText(l.GetText(KeyArchiveEmpty))
	hv.enterBtn.SetText(l.GetText(KeyEnterScriptorium))
	hv.list.Refresh()
}

func (hv *homeView) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(hv.entries) {
		return
	}
	row, ok := obj.(*CardRow)
	if !ok {
		return
	}
	card := hv.entries[id]
	row.Update(card, hv.ui.catalog.Resolve(card.PresetID), hv.thumbnail(card))
}

// thumbnail decodes a card image once and caches it by card id
func (hv *homeView) thumbnail(card model.SavedCard) image.Image {
	if !card.HasImage() {
		return nil
	}
	if img, ok := hv.thumbs[card.ID]; ok {
		return img
	}
	img, err := decodeThumbnail(card)
	if err != nil {
		log.Printf("failed to decode image of card %s: %v", card.ID, err)
	}
	hv.thumbs[card.ID] = img
	return img
}

// pruneThumbs drops cached images of cards no longer listed
func (hv *homeView) pruneThumbs() {
	keep := make(map[string]bool, len(hv.entries))
	for _, c := range hv.entries {
		keep[c.ID] = true
	}
	for id := range hv.thumbs {
		if !keep[id] {
			delete(hv.thumbs, id)
		}
	}
}
