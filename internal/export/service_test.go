package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/render"
)

var fixedNow = time.Date(2025, 6, 10, 16, 0, 0, 123000000, time.UTC)

func TestNewService(t *testing.T) {
	service := NewService("/tmp/exports")

	if service.ExportDirectory() != "/tmp/exports" {
		t.Errorf("Expected dir to be '/tmp/exports', got '%s'", service.ExportDirectory())
	}

	service.SetExportDirectory("/elsewhere")
	if service.ExportDirectory() != "/elsewhere" {
		t.Errorf("Expected dir to be '/elsewhere', got '%s'", service.ExportDirectory())
	}
}

func TestFileNames(t *testing.T) {
	if got := ImageFileName(fixedNow); got != "muse_archive_1749571200123.png" {
		t.Errorf("ImageFileName() = %s", got)
	}

	if got := LedgerFileName(fixedNow); got != "muse_ledger_2025-06-10.json" {
		t.Errorf("LedgerFileName() = %s", got)
	}

	// date is taken in UTC
	late := time.Date(2025, 6, 10, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	if got := LedgerFileName(late); got != "muse_ledger_2025-06-11.json" {
		t.Errorf("LedgerFileName() in UTC-5 = %s", got)
	}
}

func TestExportLedger_Empty(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	path, err := service.ExportLedger(history.Log{}, fixedNow)
	if err != ErrEmptyLedger {
		t.Fatalf("Expected ErrEmptyLedger, got %v", err)
	}
	if path != "" {
		t.Errorf("Expected no path, got %s", path)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no files to be written, found %d", len(entries))
	}
}

func TestExportLedger_WritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	entries := history.Log{
		{ID: "a", Content: "<p>one</p>", PresetID: "greek", CreatedAt: "2025-06-10T15:00:00Z"},
		{ID: "b", Content: "<p>two</p>", PresetID: "latin", CreatedAt: "2025-06-09T15:00:00Z", ImageData: "data:image/png;base64,AA=="},
	}

	path, err := service.ExportLedger(entries, fixedNow)
	if err != nil {
		t.Fatalf("ExportLedger failed: %v", err)
	}
	if filepath.Base(path) != "muse_ledger_2025-06-10.json" {
		t.Errorf("Unexpected ledger name %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read ledger: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"a\"") {
		t.Errorf("Ledger should be pretty-printed, got %s", data)
	}

	var decoded []model.SavedCard
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Ledger is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].PresetID != "latin" {
		t.Errorf("Unexpected ledger content: %+v", decoded)
	}

	// second export on the same day does not overwrite the first
	second, err := service.ExportLedger(entries, fixedNow)
	if err != nil {
		t.Fatalf("Second export failed: %v", err)
	}
	if second == path {
		t.Error("Second export should get a distinct file name")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	service := NewService(filepath.Join(dir, "new"))

	pngData := []byte{0x89, 'P', 'N', 'G'}
	path, err := service.SaveImage(pngData, fixedNow)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if filepath.Base(path) != "muse_archive_1749571200123.png" {
		t.Errorf("Unexpected image name %s", filepath.Base(path))
	}

	data, _ := os.ReadFile(path)
	if string(data) != string(pngData) {
		t.Error("Saved image content mismatch")
	}

	if _, err := service.SaveImage(nil, fixedNow); err != ErrNoImage {
		t.Errorf("Expected ErrNoImage for empty data, got %v", err)
	}
}

func TestSaveCardImage(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	pngData := []byte("not really a png")
	card := model.SavedCard{ID: "a", ImageData: render.DataURI(pngData)}

	path, err := service.SaveCardImage(card, fixedNow)
	if err != nil {
		t.Fatalf("SaveCardImage failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != string(pngData) {
		t.Error("Saved card image content mismatch")
	}

	_, err = service.SaveCardImage(model.SavedCard{ID: "b"}, fixedNow)
	if err == nil || !strings.Contains(err.Error(), ErrNoImage.Error()) {
		t.Errorf("Expected ErrNoImage, got %v", err)
	}

	_, err = service.SaveImageDataURI("https://example.com/a.png", fixedNow)
	if err != render.ErrNotDataURI {
		t.Errorf("Expected ErrNotDataURI, got %v", err)
	}
}
