package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/muse/internal/compose"
	"github.com/ytget/muse/internal/config"
	"github.com/ytget/muse/internal/export"
	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/platform"
	"github.com/ytget/muse/internal/preset"
	"github.com/ytget/muse/internal/render"
	"github.com/ytget/muse/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.muse"
	AppName = "Muse"

	WindowWidth  = 1100
	WindowHeight = 780
)

func main() {
	fmt.Printf("Muse v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewArchiveTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	catalog, err := preset.Load(settings.GetPresetFile())
	if err != nil {
		log.Printf("using built-in collections only: %v", err)
	}

	fonts := render.NewFontSet(settings.GetScriptFont())
	renderer := render.NewRenderer(fonts)
	if scriptFont := settings.GetScriptFont(); scriptFont != "" {
		go func() {
			if err := fonts.Ready(context.Background()); err == nil && !fonts.HasScriptFont() {
				log.Printf("script font %s unavailable, using default faces", scriptFont)
			}
		}()
	}

	store := history.NewStore(myApp.Preferences())
	entries := store.Load()
	log.Printf("loaded %d saved cards", len(entries))

	exporter := export.NewService(exportDir)
	composer := compose.NewService(renderer, store, exporter)
	composer.SetScale(float64(settings.GetExportScale()))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, ui.Services{
		Catalog:  catalog,
		Store:    store,
		Renderer: renderer,
		Fonts:    fonts,
		Composer: composer,
		Exporter: exporter,
	})

	// Pick up edits to the user preset file while running
	if presetFile := settings.GetPresetFile(); presetFile != "" {
		watcher, err := preset.NewWatcher(presetFile, preset.DefaultReloadDebounce, func(c *preset.Catalog) {
			fyne.Do(func() { rootUI.SetCatalog(c) })
		})
		if err == nil {
			err = watcher.Watch()
		}
		if err != nil {
			log.Printf("not watching preset file: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	myWindow.ShowAndRun()
}
