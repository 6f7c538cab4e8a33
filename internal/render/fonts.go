package render

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ytget/muse/internal/model"
)

// FontSet holds the parsed fonts used for cards. It is safe for concurrent use
// once Ready has returned; faces created from it are not.
type FontSet struct {
	ready chan struct{}
	err   error

	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font
	script     *opentype.Font
}

// NewFontSet starts loading fonts in the background. scriptFontPath may be empty.
func NewFontSet(scriptFontPath string) *FontSet {
	fs := &FontSet{ready: make(chan struct{})}
	go fs.load(scriptFontPath)
	return fs
}

// Ready blocks until all fonts are loaded or ctx is done
func (fs *FontSet) Ready(ctx context.Context) error {
	select {
	case <-fs.ready:
		return fs.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasScriptFont reports whether a script font was configured and parsed
func (fs *FontSet) HasScriptFont() bool {
	select {
	case <-fs.ready:
		return fs.script != nil
	default:
		return false
	}
}

func (fs *FontSet) load(scriptFontPath string) {
	defer close(fs.ready)

	sources := []struct {
		dst  **opentype.Font
		name string
		data []byte
	}{
		{&fs.regular, "goregular", goregular.TTF},
		{&fs.bold, "gobold", gobold.TTF},
		{&fs.italic, "goitalic", goitalic.TTF},
		{&fs.boldItalic, "gobolditalic", gobolditalic.TTF},
	}
	for _, src := range sources {
		f, err := opentype.Parse(src.data)
		if err != nil {
			fs.err = fmt.Errorf("failed to parse %s: %w", src.name, err)
			return
		}
		*src.dst = f
	}

	if scriptFontPath == "" {
		return
	}
	data, err := os.ReadFile(scriptFontPath)
	if err != nil {
		log.Printf("script font unavailable, using default face: %v", err)
		return
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Printf("script font %s could not be parsed, using default face: %v", scriptFontPath, err)
		return
	}
	fs.script = f
}

// pick returns the font for a family and style
func (fs *FontSet) pick(family model.FontFamily, bold, italic bool) *opentype.Font {
	if family == model.FontUrdu && fs.script != nil {
		return fs.script
	}
	switch {
	case bold && italic:
		return fs.boldItalic
	case bold:
		return fs.bold
	case italic:
		return fs.italic
	default:
		return fs.regular
	}
}

type faceKey struct {
	family model.FontFamily
	bold   bool
	italic bool
	size   int // 1/64 px
}

// faceCache creates faces lazily for a single render
type faceCache struct {
	fonts *FontSet
	faces map[faceKey]font.Face
}

func newFaceCache(fonts *FontSet) *faceCache {
	return &faceCache{fonts: fonts, faces: make(map[faceKey]font.Face)}
}

func (c *faceCache) face(family model.FontFamily, bold, italic bool, px float64) (font.Face, error) {
	key := faceKey{family: family, bold: bold, italic: italic, size: int(px * 64)}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(c.fonts.pick(family, bold, italic), &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	c.faces[key] = f
	return f, nil
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		f.Close()
	}
}
